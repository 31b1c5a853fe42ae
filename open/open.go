// Package open hands URLs to the system's default handler, the terminal counterpart of opening a new browser tab.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tubegrab/tubegrab/constant"
)

// Start opens input with the default handler without waiting for it.
func Start(input string) error {
	return StartWith(input, "")
}

// StartWith opens input with app, or with the default handler when app is empty.
func StartWith(input, app string) error {
	cmd, ok := command(runtime.GOOS, input, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// Handler returns the executable used to open links on this platform.
func Handler() (string, bool) {
	cmd, ok := command(runtime.GOOS, "", "")
	if !ok {
		return "", false
	}
	return filepath.Base(cmd.Path), true
}

func command(goos, input, app string) (*exec.Cmd, bool) {
	if app != "" {
		return commandWith(goos, input, app)
	}

	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open-url", input), true
	default:
		return nil, false
	}
}

func commandWith(goos, input, app string) (*exec.Cmd, bool) {
	switch goos {
	case constant.Windows:
		// start treats & as a command separator in query strings.
		escaped := strings.ReplaceAll(input, "&", "^&")
		return exec.Command("cmd", "/C", "start", "", app, escaped), true
	case constant.Darwin:
		return exec.Command("open", "-a", app, input), true
	case constant.Linux, constant.Android:
		return exec.Command(app, input), true
	default:
		return nil, false
	}
}
