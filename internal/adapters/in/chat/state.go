package chat

// State is the position of a user in the order conversation.
type State int

const (
	StateIdle State = iota
	StateAwaitingCustomerName
	StateAwaitingItem
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAwaitingCustomerName:
		return "AwaitingCustomerName"
	case StateAwaitingItem:
		return "AwaitingItem"
	default:
		return "Unknown"
	}
}
