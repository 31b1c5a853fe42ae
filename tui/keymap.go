package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/tubegrab/tubegrab/color"
	"github.com/tubegrab/tubegrab/style"
)

type statefulKeymap struct {
	state state

	forceQuit,
	lookup, download,
	higherQuality, lowerQuality,
	acceptSuggestion,
	reset, abandon, dismiss,
	showHistory, openURL, remove,
	back,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		lookup: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "get video"),
		),
		download: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Violet)("enter"), style.Fg(color.Violet)("download mp4")),
		),
		higherQuality: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "higher quality"),
		),
		lowerQuality: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "lower quality"),
		),
		acceptSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		reset: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		abandon: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop waiting"),
		),
		dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		showHistory: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "history"),
		),
		openURL: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open again"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case idleState:
		return h(k.lookup, k.higherQuality, k.lowerQuality, k.showHistory),
			h(k.lookup, k.higherQuality, k.lowerQuality, k.acceptSuggestion, k.reset, k.showHistory, k.forceQuit)
	case successState:
		return to2(h(k.download, k.higherQuality, k.lowerQuality, k.reset))
	case loadingState, downloadingState:
		return to2(h(k.abandon, k.forceQuit))
	case errorState, completedState:
		return to2(h(k.dismiss, k.forceQuit))
	case historyState:
		return to2(h(k.openURL, k.remove, k.back))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		ForceQuit:            k.forceQuit,
	}
}
