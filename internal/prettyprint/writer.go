package prettyprint

import (
	"bufio"
	"fmt"

	"github.com/inoxlang/linkedlist/internal/utils"
	"github.com/muesli/termenv"
)

var (
	ANSI_RESET_SEQUENCE = []byte(termenv.CSI + termenv.ResetSeq + "m")

	OPENING_PAREN_SPACE = []byte{'(', ' '}
	SPACE_CLOSING_PAREN = []byte{' ', ')'}
	ARROW               = []byte{' ', '-', '>', ' '}
	NIL                 = []byte{'n', 'i', 'l'}
)

// PrettyPrintWriter writes the elements of a chain: ( v1 ) -> ( v2 ) -> nil.
// Write errors cause a panic, callers that write to a fallible destination should recover.
type PrettyPrintWriter struct {
	writer *bufio.Writer
	config *PrettyPrintConfig
}

func NewWriter(writer *bufio.Writer, config *PrettyPrintConfig) PrettyPrintWriter {
	if config == nil {
		config = &PrettyPrintConfig{}
	}
	return PrettyPrintWriter{
		writer: writer,
		config: config,
	}
}

func (w PrettyPrintWriter) colorize() bool {
	return w.config.Colorize && w.config.Colors != nil
}

func (w PrettyPrintWriter) WriteString(str string) {
	utils.Must(w.writer.Write(utils.StringAsBytes(str)))
}

func (w PrettyPrintWriter) WriteBytes(b []byte) {
	utils.Must(w.writer.Write(b))
}

func (w PrettyPrintWriter) WriteAnsiReset() {
	utils.Must(w.writer.Write(ANSI_RESET_SEQUENCE))
}

func (w PrettyPrintWriter) writeColored(color []byte, b ...[]byte) {
	if w.colorize() {
		utils.Must(w.writer.Write(color))
		utils.MustWriteMany(w.writer, b...)
		w.WriteAnsiReset()
		return
	}
	utils.MustWriteMany(w.writer, b...)
}

// WriteElement writes a parenthesized value: ( v ).
func (w PrettyPrintWriter) WriteElement(value any) {
	w.writeColored(w.delimiterColor(), OPENING_PAREN_SPACE)
	w.writeColored(w.valueColor(), utils.StringAsBytes(fmt.Sprint(value)))
	w.writeColored(w.delimiterColor(), SPACE_CLOSING_PAREN)
}

func (w PrettyPrintWriter) WriteArrow() {
	var color []byte
	if w.colorize() {
		color = w.config.Colors.Arrow
	}
	w.writeColored(color, ARROW)
}

func (w PrettyPrintWriter) WriteNil() {
	var color []byte
	if w.colorize() {
		color = w.config.Colors.Nil
	}
	w.writeColored(color, NIL)
}

func (w PrettyPrintWriter) Flush() {
	utils.PanicIfErr(w.writer.Flush())
}

func (w PrettyPrintWriter) valueColor() []byte {
	if w.colorize() {
		return w.config.Colors.Value
	}
	return nil
}

func (w PrettyPrintWriter) delimiterColor() []byte {
	if w.colorize() {
		return w.config.Colors.Delimiter
	}
	return nil
}
