package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/color"
	"github.com/tubegrab/tubegrab/constant"
	"github.com/tubegrab/tubegrab/icon"
	"github.com/tubegrab/tubegrab/key"
	"github.com/tubegrab/tubegrab/open"
	"github.com/tubegrab/tubegrab/rapidapi"
	"github.com/tubegrab/tubegrab/style"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd verifies that links can be opened and the API is configured.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that links can be opened and the API is configured",
	Run: func(cmd *cobra.Command, args []string) {
		ok := checkHandler()

		if creds := rapidapi.OptionsFromConfig().Credentials; !creds.Valid() {
			printProblem(
				"Missing API credentials",
				"Both api.host and the API key are required to look up videos.",
				constant.App+" auth set",
			)
			ok = false
		}

		if !ok {
			os.Exit(1)
		}

		fmt.Printf("%s everything is in place\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func checkHandler() bool {
	if !viper.GetBool(key.DownloadOpen) {
		return true
	}

	handler := viper.GetString(key.DownloadApp)
	if handler == "" {
		var supported bool
		handler, supported = open.Handler()
		if !supported {
			printProblem("Unsupported platform", fmt.Sprintf("Links cannot be opened on %s.", runtime.GOOS), "")
			return false
		}
	}

	if runtime.GOOS == constant.Darwin && handler != "open" {
		// apps are resolved by open -a, not through PATH
		handler = "open"
	}

	if _, err := exec.LookPath(handler); err != nil {
		printProblem(
			"Missing link handler",
			fmt.Sprintf("'%s' was not found in your PATH.", handler),
			installHint(handler),
		)
		return false
	}

	return true
}

func installHint(handler string) string {
	switch {
	case handler == "xdg-open" && runtime.GOOS == constant.Linux:
		return "sudo apt install xdg-utils"
	case handler == "termux-open-url":
		return "pkg install termux-tools"
	default:
		return ""
	}
}

func printProblem(title, body, suggestion string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	header := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s %s", icon.Get(icon.Fail), title))
	text := style.New().Foreground(color.White).Render(body)

	hint := ""
	if suggestion != "" {
		hint = fmt.Sprintf("\n\nTry running:\n  %s", style.New().Foreground(color.Yellow).Bold(true).Render(suggestion))
	}

	fmt.Println(box.Render(lipgloss.JoinVertical(lipgloss.Left, header, "\n", text, hint)))
}
