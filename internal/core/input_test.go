package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Push(IntentStartCharge)
	f.Push(IntentNone)
	f.Push(IntentReleaseCharge)

	if len(f.Intents) != 2 {
		t.Fatalf("expected 2 intents (None dropped), got %d", len(f.Intents))
	}
	if f.Intents[0] != IntentStartCharge || f.Intents[1] != IntentReleaseCharge {
		t.Errorf("intents out of order: %v", f.Intents)
	}
	if !f.Has(IntentReleaseCharge) || f.Has(IntentPause) {
		t.Error("Has() reported wrong membership")
	}

	f.Clear()
	if len(f.Intents) != 0 || f.Has(IntentStartCharge) {
		t.Error("Clear() should empty the frame")
	}
}

func TestIntentString(t *testing.T) {
	tests := map[Intent]string{
		IntentStartCharge:   "StartCharge",
		IntentReleaseCharge: "ReleaseCharge",
		IntentPause:         "Pause",
		IntentStart:         "Start",
		IntentLobby:         "Lobby",
		Intent(99):          "Unknown",
	}
	for in, want := range tests {
		if got := in.String(); got != want {
			t.Errorf("Intent(%d).String() = %q, expected %q", in, got, want)
		}
	}
}
