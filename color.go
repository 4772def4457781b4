package karl

// Color names an entry in the fixed ANSI palette.
type Color uint8

const (
	DefaultColor Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

const colorReset = "\033[0m"

var colorStart = [...]string{
	DefaultColor: "",
	Black:        "\033[30m",
	Red:          "\033[31m",
	Green:        "\033[32m",
	Yellow:       "\033[33m",
	Blue:         "\033[34m",
	Magenta:      "\033[35m",
	Cyan:         "\033[36m",
	White:        "\033[37m",
}

// Colorize wraps text in the start/reset escape pair for the given
// color. DefaultColor (and unknown colors) pass the text through
// unchanged.
func Colorize(text string, c Color) string {
	if c == DefaultColor || int(c) >= len(colorStart) {
		return text
	}
	return colorStart[c] + text + colorReset
}
