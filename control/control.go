package control

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when the current field does not support
// the requested operation (e.g. reading data from a Null field).
var ErrInvalidOperation = Error.New("invalid operation")
