package leave

import "errors"

var (
	ErrLeaveNotFound = errors.New("leave request not found")
	ErrInvalidRange  = errors.New("date_from must not be after date_to")
	ErrLeaveExists   = errors.New("a leave request already covers this date")
)
