package order

// OrderStatus represents the workflow stage of an order record
type OrderStatus string

const (
	StatusSubmitted  OrderStatus = "submitted"
	StatusQuoted     OrderStatus = "quoted"
	StatusPaid       OrderStatus = "paid"
	StatusInProgress OrderStatus = "in_progress"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus represents the billing state, independent of OrderStatus
type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentNotRequired PaymentStatus = "not_required"
	PaymentPaid        PaymentStatus = "paid"
)

func (os OrderStatus) String() string {
	return string(os)
}

func (os OrderStatus) IsValid() bool {
	switch os {
	case StatusSubmitted, StatusQuoted, StatusPaid, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further transitions are allowed from this status
func (os OrderStatus) IsTerminal() bool {
	return os == StatusCompleted || os == StatusCancelled
}

// transitions maps each status to the statuses reachable from it.
// Staff with admin permission may bypass this table with a forced transition.
var transitions = map[OrderStatus][]OrderStatus{
	StatusSubmitted:  {StatusQuoted, StatusCancelled},
	StatusQuoted:     {StatusPaid, StatusInProgress, StatusCancelled},
	StatusPaid:       {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether moving from one status to another is allowed.
// quoted may skip directly to in_progress for services that do not charge
// (payment_status = not_required).
func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (ps PaymentStatus) String() string {
	return string(ps)
}

func (ps PaymentStatus) IsValid() bool {
	switch ps {
	case PaymentPending, PaymentNotRequired, PaymentPaid:
		return true
	default:
		return false
	}
}

// GetAllOrderStatuses returns all valid order statuses
func GetAllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusSubmitted,
		StatusQuoted,
		StatusPaid,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
	}
}
