package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/color"
	"github.com/tubegrab/tubegrab/constant"
	"github.com/tubegrab/tubegrab/downloader"
	"github.com/tubegrab/tubegrab/internal/ui"
	"github.com/tubegrab/tubegrab/key"
	"github.com/tubegrab/tubegrab/util"
	"github.com/tubegrab/tubegrab/video"
)

const completedLifetime = 3 * time.Second

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	spinnerC spinner.Model
	inputC   textinput.Model
	historyC list.Model
	helpC    help.Model

	quality video.Quality

	// found is the last lookup result, lookedUp the input it was made for.
	found    mo.Option[downloader.Result]
	lookedUp string
	opened   mo.Option[video.Variant]

	lastError error

	// clearTimer removes errors and the completed message.
	clearTimer ui.Timer
	// clearDelay and completedDelay are replaced in tests.
	clearDelay     func(video.ErrorKind) time.Duration
	completedDelay time.Duration

	// request identifies the call whose result is still wanted.
	request int

	searchSuggestion mo.Option[string]
	notice           ui.Notice

	width, height int

	options *Options
}

// setState switches state and keymap, and enables the form only when idle.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)

	if s.busy() {
		b.inputC.Blur()
	} else {
		b.inputC.Focus()
	}
}

// newState switches state and remembers the previous one for back navigation.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, downloadingState, errorState, completedState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

// formState is where the form returns to after an error or an abandoned call.
func (b *statefulBubble) formState() state {
	if b.found.IsPresent() {
		return successState
	}
	return idleState
}

// raiseError shows err and schedules its removal.
func (b *statefulBubble) raiseError(err error) tea.Cmd {
	b.lastError = err
	b.setState(errorState)
	return b.clearTimer.Arm(b.clearDelay(video.Kind(err)))
}

// clearError drops the error and returns to the form.
func (b *statefulBubble) clearError() {
	b.clearTimer.Cancel()
	b.lastError = nil
	b.setState(b.formState())
}

// reset forgets the current video and empties the form.
func (b *statefulBubble) reset() {
	b.clearTimer.Cancel()
	b.found = mo.None[downloader.Result]()
	b.opened = mo.None[video.Variant]()
	b.lookedUp = ""
	b.lastError = nil
	b.searchSuggestion = mo.None[string]()
	b.inputC.SetValue("")
	b.setState(idleState)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.historyC.SetSize(listWidth, listHeight)
	b.historyC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.inputC.Width = util.Max(b.width-lipgloss.Width(b.inputC.Prompt)-1, 10)
	b.helpC.Width = listWidth
}

func newBubble(options *Options) *statefulBubble {
	bubble := statefulBubble{
		statesHistory:  util.Stack[state]{},
		keymap:         newStatefulKeymap(),
		quality:        options.Quality,
		clearDelay:     video.ClearDelay,
		completedDelay: completedLifetime,
		options:        options,
	}

	if !bubble.quality.Valid() {
		bubble.quality = video.DefaultQuality
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(color.Violet)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("https://youtube.com/watch?v=... (v%s)", constant.Version)
	bubble.inputC.CharLimit = 200
	bubble.inputC.Prompt = viper.GetString(key.TUIInputPrompt)
	bubble.inputC.SetValue(options.URL)

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color.Violet).
		Foreground(color.Violet).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.historyC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.historyC.KeyMap = bubble.keymap.forList()
	bubble.historyC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
	bubble.historyC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return bubble.keymap.FullHelp()[0]
	}
	bubble.historyC.Title = "History"
	bubble.historyC.Styles.Title = lipgloss.NewStyle().Foreground(color.New("230")).Background(color.Indigo).Padding(0, 1)
	bubble.historyC.Styles.NoItems = paddingStyle
	bubble.historyC.SetStatusBarItemName("link", "links")
	bubble.historyC.SetShowPagination(false)
	bubble.historyC.SetFilteringEnabled(false)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(idleState)

	return &bubble
}
