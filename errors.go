package lazystream

import "errors"

// ErrEmptyStream is returned by First when the stream has no elements.
var ErrEmptyStream = errors.New("lazystream: stream is empty")
