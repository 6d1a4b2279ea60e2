package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeLookup(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func TestReadColorSettings(t *testing.T) {

	t.Run("empty environment", func(t *testing.T) {
		settings := ReadColorSettings(makeLookup(nil))
		assert.Equal(t, ColorSettings{}, settings)
		assert.False(t, settings.ShouldColorize())
	})

	t.Run("256 color terminal", func(t *testing.T) {
		settings := ReadColorSettings(makeLookup(map[string]string{"TERM": "xterm-256color"}))
		assert.True(t, settings.Term256ColorCapable)
		assert.True(t, settings.ShouldColorize())
	})

	t.Run("truecolor", func(t *testing.T) {
		settings := ReadColorSettings(makeLookup(map[string]string{"COLORTERM": "truecolor"}))
		assert.True(t, settings.ShouldColorize())
	})

	t.Run("NO_COLOR wins over FORCE_COLOR", func(t *testing.T) {
		settings := ReadColorSettings(makeLookup(map[string]string{
			"FORCE_COLOR": "1",
			"NO_COLOR":    "1",
			"TERM":        "xterm-256color",
		}))
		assert.True(t, settings.ForceColor)
		assert.False(t, settings.ShouldColorize())
	})

	t.Run("falsy values", func(t *testing.T) {
		for _, value := range []string{"", "0", "false"} {
			settings := ReadColorSettings(makeLookup(map[string]string{
				"FORCE_COLOR": value,
				"NO_COLOR":    value,
			}))
			assert.False(t, settings.ForceColor, value)
			assert.False(t, settings.NoColor, value)
		}
	})
}
