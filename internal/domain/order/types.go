package order

type Status string

const (
	// StatusConfirmed means the order is accepted and awaiting pickup.
	StatusConfirmed Status = "confirmed"
	// StatusCompleted means the order was handed over.
	StatusCompleted Status = "completed"
	// StatusCanceled means the customer or shop canceled before pickup.
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}
