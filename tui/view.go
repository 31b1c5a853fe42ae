package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/color"
	"github.com/tubegrab/tubegrab/icon"
	"github.com/tubegrab/tubegrab/key"
	"github.com/tubegrab/tubegrab/style"
	"github.com/tubegrab/tubegrab/video"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)

	selectedQualityStyle = style.Tag(color.New("230"), color.Violet)
	qualityStyle         = lipgloss.NewStyle().Padding(0, 1).Foreground(color.Gray)
	disabledStyle        = lipgloss.NewStyle().Faint(true)
)

func (b *statefulBubble) View() string {
	var output string

	if b.state == historyState {
		output = listExtraPaddingStyle.Render(b.historyC.View())
	} else {
		output = b.viewForm()
	}

	return b.notice.View(output)
}

func (b *statefulBubble) viewForm() string {
	lines := []string{
		style.Title("tubegrab"),
		"",
		style.Bold("Video URL"),
		b.viewInput(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok && b.state == idleState {
		lines = append(lines, style.Faint("tab "+suggestion))
	}

	lines = append(lines,
		"",
		style.Bold("Minimum quality"),
		b.viewQualities(),
		"",
	)

	switch b.state {
	case loadingState:
		lines = append(lines, b.spinnerC.View()+" Fetching video info...")
	case successState:
		lines = append(lines, b.viewVideo()...)
	case downloadingState:
		lines = append(lines, b.viewVideo()...)
		lines = append(lines, "", b.spinnerC.View()+" Generating link...")
	case completedState:
		lines = append(lines, b.viewCompleted()...)
	case errorState:
		lines = append(lines, b.viewError()...)
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewInput() string {
	if b.state.busy() {
		return disabledStyle.Render(b.inputC.View())
	}
	return b.inputC.View()
}

func (b *statefulBubble) viewQualities() string {
	labels := make([]string, len(video.Qualities))
	for i, q := range video.Qualities {
		switch {
		case q == b.quality && !b.state.busy():
			labels[i] = selectedQualityStyle(q.Label())
		case q == b.quality:
			labels[i] = disabledStyle.Render(selectedQualityStyle(q.Label()))
		default:
			labels[i] = qualityStyle.Render(q.Label())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

func (b *statefulBubble) viewVideo() []string {
	found, ok := b.found.Get()
	if !ok {
		return nil
	}

	meta := found.Metadata
	lines := []string{
		icon.Get(icon.Video) + " " + style.Truncate(b.width)(style.Bold(meta.DisplayTitle())),
		style.Faint(meta.DisplayAuthor()),
	}

	if thumb, ok := meta.Thumbnail.Get(); ok && viper.GetBool(key.TUIShowURLs) {
		lines = append(lines, style.Faint(style.Truncate(b.width)(thumb)))
	}

	return lines
}

func (b *statefulBubble) viewCompleted() []string {
	variant, ok := b.opened.Get()
	if !ok {
		return nil
	}

	message := "Download link opened"
	if b.options.Open == nil {
		message = "Download link ready"
	}

	lines := []string{
		style.SuccessTitle("Done") + " " + icon.Get(icon.Success) + " " + message + " (" + variant.Quality + ")",
	}

	if b.options.Open == nil || viper.GetBool(key.TUIShowURLs) {
		lines = append(lines, "", icon.Get(icon.Link)+" "+wrap.String(variant.URL, b.width))
	}

	return lines
}

func (b *statefulBubble) viewError() []string {
	if b.lastError == nil {
		return nil
	}

	errorStyle := lipgloss.NewStyle().Foreground(color.Crimson).Bold(true)
	return []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " " + wrap.String(errorStyle.Render(b.lastError.Error()), b.width),
	}
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
