package tui

type state int

const (
	idleState state = iota
	loadingState
	successState
	errorState
	downloadingState
	completedState
	historyState
)

var stateNames = map[state]string{
	idleState:        "idle",
	loadingState:     "loading",
	successState:     "success",
	errorState:       "error",
	downloadingState: "downloading",
	completedState:   "completed",
	historyState:     "history",
}

func (s state) String() string {
	return stateNames[s]
}

// busy states wait for the video API and accept no input.
func (s state) busy() bool {
	return s == loadingState || s == downloadingState
}
