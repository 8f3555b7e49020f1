package classifier

import "errors"

// ErrNoClasses indicates the model artifact exposes no output-class list, so
// probabilities cannot be mapped back to occupation URIs. This is a startup
// configuration error, never a per-request one.
var ErrNoClasses = errors.New("classifier: model artifact has no classes")

// ErrDimensionMismatch indicates the feature vector length does not match the
// trained feature axis.
var ErrDimensionMismatch = errors.New("classifier: feature vector dimension mismatch")
