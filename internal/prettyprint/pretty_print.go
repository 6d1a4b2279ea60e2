package prettyprint

import "github.com/muesli/termenv"

var (
	DEFAULT_DARKMODE_PRINT_COLORS = PrettyPrintColors{
		Value:     GetFullColorSequence(termenv.ANSIBrightCyan, false),
		Delimiter: GetFullColorSequence(termenv.ANSIBrightBlack, false),
		Arrow:     GetFullColorSequence(termenv.ANSIBrightMagenta, false),
		Nil:       GetFullColorSequence(termenv.ANSIBlue, false),
	}

	DEFAULT_LIGHTMODE_PRINT_COLORS = PrettyPrintColors{
		Value:     GetFullColorSequence(termenv.ANSI256Color(27), false),
		Delimiter: GetFullColorSequence(termenv.ANSIBrightBlack, false),
		Arrow:     GetFullColorSequence(termenv.ANSI256Color(90), false),
		Nil:       GetFullColorSequence(termenv.ANSI256Color(21), false),
	}
)

type PrettyPrintColors struct {
	Value, Delimiter, Arrow, Nil []byte
}

type PrettyPrintConfig struct {
	Colorize bool
	Colors   *PrettyPrintColors //ignored if Colorize is false
}

func GetFullColorSequence(color termenv.Color, bg bool) []byte {
	var b = []byte(termenv.CSI)
	b = append(b, []byte(color.Sequence(bg))...)
	b = append(b, 'm')
	return b
}
