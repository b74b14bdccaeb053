package patrol

import "errors"

// ErrLoops is returned when the guard never leaves the unmodified lab.
var ErrLoops = errors.New("patrol: guard never leaves the lab")
