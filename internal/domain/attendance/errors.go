package attendance

import "errors"

// The tracker has no domain failure modes beyond storage errors; this
// sentinel only backs the read surface.
var ErrAttendanceNotFound = errors.New("attendance record not found")
