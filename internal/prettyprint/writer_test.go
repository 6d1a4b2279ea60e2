package prettyprint

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyPrintWriter(t *testing.T) {

	t.Run("no config", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		w := NewWriter(bufio.NewWriter(buf), nil)

		w.WriteElement(1)
		w.WriteArrow()
		w.WriteElement("a")
		w.WriteArrow()
		w.WriteNil()
		w.Flush()

		assert.Equal(t, "( 1 ) -> ( a ) -> nil", buf.String())
	})

	t.Run("colorized", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		colors := DEFAULT_DARKMODE_PRINT_COLORS
		w := NewWriter(bufio.NewWriter(buf), &PrettyPrintConfig{Colorize: true, Colors: &colors})

		w.WriteElement(1)
		w.WriteArrow()
		w.WriteNil()
		w.Flush()

		reset := string(ANSI_RESET_SEQUENCE)
		expected := string(colors.Delimiter) + "( " + reset +
			string(colors.Value) + "1" + reset +
			string(colors.Delimiter) + " )" + reset +
			string(colors.Arrow) + " -> " + reset +
			string(colors.Nil) + "nil" + reset

		assert.Equal(t, expected, buf.String())
	})

	t.Run("colorize without colors", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		w := NewWriter(bufio.NewWriter(buf), &PrettyPrintConfig{Colorize: true})

		w.WriteElement(true)
		w.WriteArrow()
		w.WriteNil()
		w.Flush()

		assert.Equal(t, "( true ) -> nil", buf.String())
	})
}
