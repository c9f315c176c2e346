package tui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// BrowserCommand returns the command that opens url on goos, or nil when the
// platform has no known opener.
func BrowserCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", url) //nolint:gosec
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:gosec
	case "darwin":
		return exec.Command("open", url) //nolint:gosec
	default:
		return nil
	}
}

// OSOpenCmd allows mocking the open command.
var OSOpenCmd = func(url string) *exec.Cmd {
	return BrowserCommand(runtime.GOOS, url)
}

func openBrowser(url string) error {
	cmd := OSOpenCmd(url)
	if cmd == nil {
		return fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}
	return cmd.Start()
}
