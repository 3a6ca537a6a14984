package conversation

// State identifies a conversational state. The same value is persisted with
// each record and echoed to the client as a bracketed tag at the end of every
// response, e.g. "<strong>[MAIN_MENU]</strong>".
type State string

const (
	StateAskName    State = "ASK_NAME"
	StateMainMenu   State = "MAIN_MENU"
	StateAskCareer  State = "ASK_CAREER"
	StateShowMajors State = "SHOW_MAJORS"
	StateAskCollege State = "ASK_COLLEGE"
)

// Valid reports whether s is one of the known conversational states.
func (s State) Valid() bool {
	switch s {
	case StateAskName, StateMainMenu, StateAskCareer, StateShowMajors, StateAskCollege:
		return true
	}
	return false
}

// Tag renders the bracketed marker the frontend parses out of response text.
func (s State) Tag() string {
	return "<br><strong>[" + string(s) + "]</strong>"
}
