package attendance

import "time"

type AttendanceResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	// RecommendedLeave is check_in plus the configured shift length.
	RecommendedLeave *string `json:"recommended_leave,omitempty"`
}

func ToResponse(a Attendance, shiftHours float64) AttendanceResponse {
	resp := AttendanceResponse{
		ID:     a.ID,
		UserID: a.UserID,
		Date:   a.Date.Format("2006-01-02"),
	}
	if a.CheckIn != nil {
		in := a.CheckIn.UTC().Format("15:04:05")
		resp.CheckIn = &in
		rec := a.CheckIn.UTC().Add(time.Duration(shiftHours * float64(time.Hour))).Format("15:04:05")
		resp.RecommendedLeave = &rec
	}
	if a.CheckOut != nil {
		out := a.CheckOut.UTC().Format("15:04:05")
		resp.CheckOut = &out
	}
	return resp
}
