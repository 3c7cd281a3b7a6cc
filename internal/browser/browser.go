// Package browser opens the dashboard in the desktop's default browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Commander starts an external program
type Commander interface {
	Start(name string, args ...string) error
}

// ExecCommander starts programs with os/exec
type ExecCommander struct{}

// Start launches name without waiting for it to exit
func (ExecCommander) Start(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// launchers maps GOOS to the program and leading arguments that open a URL
var launchers = map[string][]string{
	"linux":   {"xdg-open"},
	"freebsd": {"xdg-open"},
	"darwin":  {"open"},
	"windows": {"rundll32", "url.dll,FileProtocolHandler"},
}

// Open opens rawURL on the current platform
func Open(rawURL string) error {
	return OpenWithCommander(rawURL, ExecCommander{}, runtime.GOOS)
}

// OpenWithCommander opens rawURL through c as it would on goos. Only
// absolute http and https URLs are accepted.
func OpenWithCommander(rawURL string, c Commander, goos string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open %q: not an http(s) url", rawURL)
	}

	launcher, ok := launchers[goos]
	if !ok {
		return fmt.Errorf("unsupported platform: %s", goos)
	}
	args := append(launcher[1:len(launcher):len(launcher)], u.String())
	return c.Start(launcher[0], args...)
}
