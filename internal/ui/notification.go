package ui

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// freedesktop icon theme names
const (
	IconDialogError = "dialog-error"
	IconDialogWarn  = "dialog-warning"

	UrgencyNormal   = "normal"
	UrgencyCritical = "critical"

	appName = "board2go"
)

func NotifyWarn(title, text string) {
	NotifySend(UrgencyNormal, title, text, IconDialogWarn)
}

func NotifyError(title, text string) {
	NotifySend(UrgencyCritical, title, text, IconDialogError)
}

// NotifySend shows a desktop notification in the session of the user owning
// the current X display. Headless boards simply skip it.
func NotifySend(urgency, title, text, icon string) {
	display, exists := os.LookupEnv("DISPLAY")
	if !exists {
		Debug("Skipping notification, no display: %s", title)
		return
	}

	user, err := findDisplayUser(display)
	if err != nil {
		Warning("Cannot send notification: %v", err)
		return
	}

	output, err := exec.Command("id", "-u", user).Output()
	userId := strings.TrimSpace(string(output))
	if err != nil || len(userId) <= 0 {
		Warning("Cannot send notification, unable to detect user id of %s", user)
		return
	}

	cmd := exec.Command("sudo", "-u", user,
		"DISPLAY="+display,
		"DBUS_SESSION_BUS_ADDRESS=unix:path=/run/user/"+userId+"/bus",
		"notify-send",
		"-a", appName,
		"-u", urgency,
		"-i", icon,
		title, text,
	)
	if err := cmd.Run(); err != nil {
		Error("Error sending notification: %v", err)
	}
}

func findDisplayUser(display string) (string, error) {
	output, err := exec.Command("who").Output()
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(string(output), "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 && strings.Contains(line, display) {
			return fields[0], nil
		}
	}
	return "", errors.New("no user found for display " + display)
}
