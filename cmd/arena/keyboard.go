package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abrezinsky/arena/internal/logger"
)

// keyboard runs single-key shortcuts while the server is up
type keyboard struct {
	out  io.Writer
	log  logger.Logger
	url  string
	open func(url string) error
	quit func()
}

// listen puts the terminal in raw mode and handles keys until ctx ends,
// stdin closes or a quit key is pressed
func (k *keyboard) listen(ctx context.Context, in *os.File) {
	restore, err := makeRaw(int(in.Fd()))
	if err != nil {
		// not a terminal
		return
	}
	defer restore()
	k.run(ctx, in)
}

func (k *keyboard) run(ctx context.Context, in io.Reader) {
	buf := make([]byte, 1)
	for ctx.Err() == nil {
		n, err := in.Read(buf)
		if err != nil {
			return
		}
		if n == 1 && k.handleKey(buf[0]) {
			return
		}
	}
}

// handleKey performs the action bound to key and reports whether the
// server is shutting down
func (k *keyboard) handleKey(key byte) bool {
	switch strings.ToLower(string(key)) {
	case "a":
		fmt.Fprintf(k.out, "%sOpening competitions in browser...%s\n", cyan, reset)
		if err := k.open(k.url); err != nil {
			fmt.Fprintf(k.out, "%sError opening browser: %v%s\n", red, err, reset)
		}
	case "h":
		if k.log.IsHTTPLoggingEnabled() {
			k.log.DisableHTTPLogging()
			fmt.Fprintf(k.out, "%sHTTP logging disabled%s\n", yellow, reset)
		} else {
			k.log.EnableHTTPLogging()
			fmt.Fprintf(k.out, "%sHTTP logging enabled%s\n", green, reset)
		}
	case "l":
		next := logger.NextLevel(k.log.GetLevel())
		k.log.SetLevel(next)
		fmt.Fprintf(k.out, "%sLog level: %s%s%s\n", green, yellow, next, reset)
	case "?":
		printKeyboardHelp(k.out)
	case "q", "\x03":
		fmt.Fprintf(k.out, "%sShutting down server...%s\n", yellow, reset)
		k.quit()
		return true
	}
	return false
}

// printKeyboardHelp lists the keyboard shortcuts
func printKeyboardHelp(out io.Writer) {
	fmt.Fprintf(out, "\n%s%s  Keyboard shortcuts:%s\n", bold, green, reset)
	fmt.Fprintf(out, "    %sa%s      - Open competitions in browser\n", cyan, reset)
	fmt.Fprintf(out, "    %sh%s      - Toggle HTTP request logging\n", cyan, reset)
	fmt.Fprintf(out, "    %sl%s      - Cycle log level (debug → info → warn → error)\n", cyan, reset)
	fmt.Fprintf(out, "    %sq%s      - Quit server\n", cyan, reset)
	fmt.Fprintf(out, "    %s?%s      - Show this help\n\n", cyan, reset)
}
