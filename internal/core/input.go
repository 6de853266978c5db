package core

// Intent is a semantic input event, abstracted from physical key presses or
// pointer events. The simulation only ever sees intents.
type Intent int

const (
	IntentNone          Intent = iota
	IntentStartCharge          // Space pressed / pointer down - begin charging a jump
	IntentReleaseCharge        // Space released / pointer up - jump with current momentum
	IntentPause                // P, Escape - toggle pause
	IntentStart                // Enter - start a new run from the menu
	IntentLobby                // B - leave a paused run for the menu
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentStartCharge:
		return "StartCharge"
	case IntentReleaseCharge:
		return "ReleaseCharge"
	case IntentPause:
		return "Pause"
	case IntentStart:
		return "Start"
	case IntentLobby:
		return "Lobby"
	default:
		return "Unknown"
	}
}

// InputFrame collects the intents raised between two simulation frames.
// Order is preserved: a press and release in the same frame must be applied
// in that order.
type InputFrame struct {
	Intents []Intent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Intents: make([]Intent, 0, 4)}
}

// Push appends an intent to the frame. IntentNone is dropped.
func (f *InputFrame) Push(i Intent) {
	if i == IntentNone {
		return
	}
	f.Intents = append(f.Intents, i)
}

// Has returns true if the given intent was raised this frame.
func (f InputFrame) Has(i Intent) bool {
	for _, got := range f.Intents {
		if got == i {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Intents = f.Intents[:0]
}
