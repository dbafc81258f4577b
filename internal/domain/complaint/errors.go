package complaint

import "errors"

var (
	ErrComplaintNotFound  = errors.New("complaint not found")
	ErrOpsIDNotRegistered = errors.New("ops id is not registered")
	ErrInvalidStatus      = errors.New("invalid complaint status")
	ErrInvalidType        = errors.New("invalid complaint type")
)
