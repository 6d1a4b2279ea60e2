package linkedlist

import (
	"bufio"
	"strings"

	"github.com/inoxlang/linkedlist/internal/config"
	"github.com/inoxlang/linkedlist/internal/prettyprint"
	"github.com/inoxlang/linkedlist/internal/utils"
)

// DefaultPrettyPrintConfig returns a configuration that colorizes the output if the terminal supports it.
func DefaultPrettyPrintConfig() *prettyprint.PrettyPrintConfig {
	if !config.SHOULD_COLORIZE {
		return &prettyprint.PrettyPrintConfig{}
	}

	colors := prettyprint.DEFAULT_LIGHTMODE_PRINT_COLORS
	if config.DARK_BACKGROUND {
		colors = prettyprint.DEFAULT_DARKMODE_PRINT_COLORS
	}

	return &prettyprint.PrettyPrintConfig{
		Colorize: true,
		Colors:   &colors,
	}
}

// PrettyPrint writes the list to w with the format ( v1 ) -> ( v2 ) -> nil and flushes w,
// an empty list is written as nil. If printConfig is nil the output is not colorized.
func (l *LinkedList[V]) PrettyPrint(w *bufio.Writer, printConfig *prettyprint.PrettyPrintConfig) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = utils.ConvertPanicValueToError(e)
		}
	}()

	writer := prettyprint.NewWriter(w, printConfig)

	if l.head == nil {
		writer.WriteNil()
	} else {
		l.traverse(traversal[V]{
			stop:     walkToTail,
			selector: selectRendering,
			writer:   &writer,
		})
	}

	writer.Flush()
	return nil
}

// Render returns the list formatted as ( v1 ) -> ( v2 ) -> nil, or ErrEmptyList.
func (l *LinkedList[V]) Render() (string, error) {
	if l.head == nil {
		return "", ErrEmptyList
	}
	return l.String(), nil
}

// String implements fmt.Stringer, unlike Render it formats an empty list as nil.
func (l *LinkedList[V]) String() string {
	buf := &strings.Builder{}
	utils.PanicIfErr(l.PrettyPrint(bufio.NewWriter(buf), nil))
	return buf.String()
}
