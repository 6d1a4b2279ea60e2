package config

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

var (
	FORCE_COLOR           bool
	TRUECOLOR_COLORTERM   bool
	NO_COLOR              bool
	TERM_256COLOR_CAPABLE bool
	SHOULD_COLORIZE       bool

	// set if SHOULD_COLORIZE
	DARK_BACKGROUND bool
)

func init() {
	settings := ReadColorSettings(os.LookupEnv)

	FORCE_COLOR = settings.ForceColor
	TRUECOLOR_COLORTERM = settings.TruecolorColorterm
	NO_COLOR = settings.NoColor
	TERM_256COLOR_CAPABLE = settings.Term256ColorCapable
	SHOULD_COLORIZE = settings.ShouldColorize()

	if SHOULD_COLORIZE {
		DARK_BACKGROUND = termenv.HasDarkBackground()
	}
}

type ColorSettings struct {
	ForceColor          bool
	TruecolorColorterm  bool
	NoColor             bool
	Term256ColorCapable bool
}

// ReadColorSettings reads the color-related environment variables (FORCE_COLOR, COLORTERM, NO_COLOR, TERM)
// using lookupEnv, os.LookupEnv is generally passed.
func ReadColorSettings(lookupEnv func(string) (string, bool)) (settings ColorSettings) {
	// FORCE COLOR

	if s, ok := lookupEnv("FORCE_COLOR"); ok {
		settings.ForceColor = isTruthy(s)
	}

	//COLORTERM

	if s, ok := lookupEnv("COLORTERM"); ok {
		settings.TruecolorColorterm = s == "truecolor"
	}

	//NO_COLOR

	if s, ok := lookupEnv("NO_COLOR"); ok {
		settings.NoColor = isTruthy(s)
	}

	//TERM

	if term, ok := lookupEnv("TERM"); ok && strings.Contains(term, "256color") {
		settings.Term256ColorCapable = true
	}

	return
}

func (s ColorSettings) ShouldColorize() bool {
	return !s.NoColor && (s.ForceColor || s.TruecolorColorterm || s.Term256ColorCapable)
}

func isTruthy(s string) bool {
	return len(s) != 0 && s != "false" && s != "0"
}
