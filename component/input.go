package component

// Input stores which movement keys are currently held.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}
