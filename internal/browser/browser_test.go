package browser

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

type recordingCommander struct {
	name string
	args []string
	err  error
}

func (c *recordingCommander) Start(name string, args ...string) error {
	c.name = name
	c.args = args
	return c.err
}

func TestOpenWithCommander(t *testing.T) {
	const dashboard = "http://localhost:8080/api/competitions"

	tests := []struct {
		goos string
		name string
		args []string
	}{
		{"linux", "xdg-open", []string{dashboard}},
		{"freebsd", "xdg-open", []string{dashboard}},
		{"darwin", "open", []string{dashboard}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", dashboard}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			c := &recordingCommander{}
			if err := OpenWithCommander(dashboard, c, tt.goos); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.name != tt.name || !slices.Equal(c.args, tt.args) {
				t.Errorf("expected %s %v, got %s %v", tt.name, tt.args, c.name, c.args)
			}
		})
	}
}

func TestOpenWithCommander_LauncherTableUnchanged(t *testing.T) {
	c := &recordingCommander{}
	OpenWithCommander("http://a.test", c, "windows")
	OpenWithCommander("http://b.test", c, "windows")
	if len(launchers["windows"]) != 2 {
		t.Errorf("launcher table was modified: %v", launchers["windows"])
	}
	if c.args[1] != "http://b.test" {
		t.Errorf("unexpected args %v", c.args)
	}
}

func TestOpenWithCommander_Rejects(t *testing.T) {
	tests := []struct {
		name string
		url  string
		goos string
		want string
	}{
		{"unsupported platform", "http://localhost", "plan9", "unsupported platform"},
		{"file scheme", "file:///etc/passwd", "linux", "not an http(s) url"},
		{"relative", "/admin", "linux", "not an http(s) url"},
		{"unparseable", "http://[::1", "linux", "invalid url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &recordingCommander{}
			err := OpenWithCommander(tt.url, c, tt.goos)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
			if c.name != "" {
				t.Errorf("nothing should be started, got %s", c.name)
			}
		})
	}
}

func TestOpenWithCommander_StartError(t *testing.T) {
	c := &recordingCommander{err: errors.New("xdg-open not found")}
	if err := OpenWithCommander("https://arena.local", c, "linux"); err == nil {
		t.Error("expected start error to be returned")
	}
}
