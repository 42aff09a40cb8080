// Package notify shells out to the desktop for notifications and sound.
// Everything here is best-effort: a status bar timer must not fail because a
// notification daemon or audio player is missing.
package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// Send posts a desktop notification.
func Send(title, body string) {
	if _, err := exec.LookPath("notify-send"); err == nil {
		_ = exec.Command("notify-send", title, body).Run()
		return
	}
	if _, err := exec.LookPath("osascript"); err == nil {
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		_ = exec.Command("osascript", "-e", script).Run()
	}
}

// PlaySound plays the file at path with the first available player.
func PlaySound(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	for _, player := range []string{"paplay", "aplay", "afplay"} {
		if _, err := exec.LookPath(player); err == nil {
			_ = exec.Command(player, path).Run()
			return
		}
	}
}
