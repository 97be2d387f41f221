package shift

import "errors"

var ErrAssignmentNotFound = errors.New("Shift assignment not found")
