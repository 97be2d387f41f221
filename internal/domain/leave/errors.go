package leave

import "errors"

var (
	ErrRequestNotFound         = errors.New("Leave request not found")
	ErrRequestAlreadyProcessed = errors.New("Leave request already processed")
)
