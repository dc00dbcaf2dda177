package models

// Roll is one pair of dice in a roll-off between two equally skilled participants
type Roll struct {
	// First is the value rolled for the first participant of the match
	First int

	// Second is the value rolled for the second participant of the match
	Second int
}

// Tied reports whether the roll decided nothing
func (r Roll) Tied() bool {
	return r.First == r.Second
}
