package conversation

import "testing"

func TestStateValid(t *testing.T) {
	for _, state := range []State{StateAskName, StateMainMenu, StateAskCareer, StateShowMajors, StateAskCollege} {
		if !state.Valid() {
			t.Fatalf("expected %s to be valid", state)
		}
	}
	for _, state := range []State{"", "WEIRD", "main_menu"} {
		if state.Valid() {
			t.Fatalf("expected %q to be invalid", state)
		}
	}
}

func TestStateTag(t *testing.T) {
	if got := StateMainMenu.Tag(); got != "<br><strong>[MAIN_MENU]</strong>" {
		t.Fatalf("unexpected tag: %q", got)
	}
}
