package testsession

import "errors"

// ErrNoCaller is an error that occurs when the file of a calling function
// cannot be determined, so no fixture root directory can be derived from it.
var ErrNoCaller = errors.New("caller file unknown")
