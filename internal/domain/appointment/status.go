package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// InitialStatus is the status given to freshly booked appointments.
func InitialStatus() Status {
	return StatusConfirmed
}

// BlockingStatuses are the statuses that count toward conflict
// detection; cancelled and completed appointments free their slot.
func BlockingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), true
	}
	return "", false
}

// ===============================
// Transitions
// ===============================

// transitions is the single source of truth for the lifecycle:
// pending may be confirmed or cancelled, confirmed may be completed or
// cancelled, cancelled and completed are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a shop operator may move an
// appointment from one status to another.
func CanTransition(from, to Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
