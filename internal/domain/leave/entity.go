package leave

import "time"

type Type string

const (
	TypeRemote       Type = "remote"
	TypeSick         Type = "sick"
	TypePersonal     Type = "personal"
	TypeBusinessTrip Type = "business_trip"
	TypeVacation     Type = "vacation"
	TypeAdminLeave   Type = "admin_leave"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// TypeLabels and TypeMarks map stored tokens to display text and to the
// short codes used on the team calendar. Tokens are stable wire values.
var TypeLabels = map[Type]string{
	TypeRemote:       "Remote work",
	TypeSick:         "Sick leave",
	TypePersonal:     "Personal leave",
	TypeBusinessTrip: "Business trip",
	TypeVacation:     "Vacation",
	TypeAdminLeave:   "Administrative leave",
}

var TypeMarks = map[Type]string{
	TypeRemote:       "R",
	TypeSick:         "S",
	TypePersonal:     "P",
	TypeBusinessTrip: "BT",
	TypeVacation:     "V",
	TypeAdminLeave:   "AL",
}

var StatusLabels = map[Status]string{
	StatusPending:  "Pending",
	StatusApproved: "Approved",
	StatusRejected: "Rejected",
}

func (t Type) Valid() bool {
	_, ok := TypeLabels[t]
	return ok
}

type LeaveRequest struct {
	ID         string
	UserID     string
	Type       Type
	DateFrom   time.Time
	DateTo     time.Time
	Status     Status
	ApproverID *string
	Comment    string
	CreatedAt  time.Time

	// DTO / Join
	UserName *string
}

// Dates returns every calendar date in [DateFrom, DateTo].
func (r *LeaveRequest) Dates() []time.Time {
	var dates []time.Time
	for d := r.DateFrom; !d.After(r.DateTo); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
