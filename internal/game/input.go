package game

// Input is the per-frame intent snapshot produced by the input collaborator.
// Direction flags are the OR of keyboard holds and touch-button holds. Fire is
// true when a fire key-down arrived since the previous snapshot or the touch
// fire flag was set; the collaborator clears the touch flag once read.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool
}
