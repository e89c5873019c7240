package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput can be used to disable colour output.
var DisableColourOutput = false

// SupportsANSIColours reports whether stdout is a terminal that should
// receive 24-bit colour escapes. NO_COLOR is honoured.
func SupportsANSIColours() bool {
	if DisableColourOutput || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Swatch returns a solid block of the given colour, width characters wide.
// When colour output is unsupported the block is rendered as spaces.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	block := strings.Repeat(" ", width)
	if !SupportsANSIColours() {
		return block
	}
	return bgEscape(c) + block + ansiReset
}

// SwatchWithText renders text centred on a block of background colour bg,
// drawn in the foreground colour fg.
func SwatchWithText(bg, fg RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	if !SupportsANSIColours() {
		return displayText
	}
	return bgEscape(bg) + fgEscape(fg) + displayText + ansiReset
}

func bgEscape(c RGB) string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
}

func fgEscape(c RGB) string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, r, g, b, ansiSuffix)
}
