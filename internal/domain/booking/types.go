package booking

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
	StatusPending   Status = "PENDING"
)

// Only a confirmed booking may move, and only to cancelled.
var transitions = map[Status][]Status{
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
	StatusPending:   {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}
