package utils

import (
	"io"
	"testing"
)

// MustWriteMany writes all the byte slices to w and panics on the first error.
func MustWriteMany(w io.Writer, slices ...[]byte) {
	for _, b := range slices {
		Must(w.Write(b))
	}
}

// TestWriter forwards writes to the log of a test, it is mainly used as the output of loggers.
type TestWriter struct {
	T *testing.T
}

func (w *TestWriter) Write(p []byte) (n int, err error) {
	w.T.Log(string(p))
	return len(p), nil
}
