package match3

// Event is emitted by the controller to its observers.
type Event interface {
	event()
}

// ResolutionRequested is emitted once per resolved match, before its tokens
// leave the grid. Chain is 1 for matches made by the swap itself and grows
// by one per cascade round.
type ResolutionRequested struct {
	Match *Match
	Chain int
}

func (ResolutionRequested) event() {}

// SwapAccepted is emitted when a swap produced at least one match.
type SwapAccepted struct {
	A, B Coord
}

func (SwapAccepted) event() {}

// SwapRejected is emitted when a swap produced no match and is being reverted.
type SwapRejected struct {
	A, B Coord
}

func (SwapRejected) event() {}

// CascadeSettled is emitted when the board is stable again.
// Moves is the number of cells that have a match-making swap.
type CascadeSettled struct {
	Chains int
	Moves  int
}

func (CascadeSettled) event() {}

// DeadlockReached is emitted after CascadeSettled when no swap can make a match.
type DeadlockReached struct{}

func (DeadlockReached) event() {}

// FillExhausted is a diagnostic: no palette type avoided a match at At, so
// the cell was filled with Type anyway.
type FillExhausted struct {
	At   Coord
	Type TokenType
}

func (FillExhausted) event() {}

// Observer receives controller events.
type Observer interface {
	Notify(e Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(e Event)

// Notify implements Observer.
func (f ObserverFunc) Notify(e Event) {
	f(e)
}
