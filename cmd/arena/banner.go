package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"
)

const bannerWidth = 62

var logo = []string{
	"          _                         ",
	"         / \\   _ __ ___ _ __   __ _ ",
	"        / _ \\ | '__/ _ \\ '_ \\ / _` |",
	"       / ___ \\| | |  __/ | | | (_| |",
	"      /_/   \\_\\_|  \\___|_| |_|\\__,_|",
	"                                    ",
}

// showBanner prints the logo and, when animate is set, draws a short
// candlestick run underneath it
func showBanner(out io.Writer, animate bool) {
	border := strings.Repeat("═", bannerWidth)

	fmt.Fprintf(out, "\n  %s╔%s╗%s\n", cyan, border, reset)
	for _, line := range logo {
		fmt.Fprintf(out, "  %s║%s%-*s%s║%s\n", cyan, yellow, bannerWidth, line, cyan, reset)
	}
	if !animate {
		fmt.Fprintf(out, "  %s╚%s╝%s\n\n", cyan, border, reset)
		return
	}
	fmt.Fprintf(out, "  %s╠%s╣%s\n", cyan, border, reset)

	const rows = 5
	candles := candleRun(bannerWidth/2, rows, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))
	for range rows {
		fmt.Fprintf(out, "  %s║%s║%s\n", cyan, strings.Repeat(" ", bannerWidth), reset)
	}
	fmt.Fprintf(out, "  %s╚%s╝%s\n", cyan, border, reset)

	for shown := 1; shown <= len(candles); shown++ {
		fmt.Fprintf(out, moveUp, rows+1)
		for _, line := range renderCandles(candles[:shown], rows) {
			fmt.Fprintf(out, "%s  %s║%s%s║%s\n", clearLine, cyan, line, cyan, reset)
		}
		fmt.Fprintf(out, "%s  %s╚%s╝%s\n", clearLine, cyan, border, reset)
		time.Sleep(30 * time.Millisecond)
	}
	fmt.Fprintln(out)
}

// candle is one bar; Low and High are row indexes from the bottom
type candle struct {
	Low, High int
	Up        bool
}

// candleRun generates n candles drifting upward within rows
func candleRun(n, rows int, rng *rand.Rand) []candle {
	out := make([]candle, n)
	level := 0
	for i := range out {
		step := rng.IntN(3) - 1
		if i%4 == 0 {
			step = 1
		}
		level = min(max(level+step, 0), rows-1)
		low := max(level-rng.IntN(2), 0)
		out[i] = candle{Low: low, High: level, Up: step >= 0}
	}
	return out
}

// renderCandles draws candles two columns apart, padded to the banner width
func renderCandles(candles []candle, rows int) []string {
	lines := make([]string, rows)
	for r := range rows {
		row := rows - 1 - r
		var b strings.Builder
		for _, c := range candles {
			switch {
			case row < c.Low || row > c.High:
				b.WriteString("  ")
			case c.Up:
				b.WriteString(green + "█" + reset + " ")
			default:
				b.WriteString(red + "█" + reset + " ")
			}
		}
		lines[r] = b.String() + strings.Repeat(" ", bannerWidth-2*len(candles))
	}
	return lines
}
