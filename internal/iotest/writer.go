// Package iotest provides IO helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"
)

var _newline = []byte("\n")

// Writer builds an io.Writer that writes to the given testing.TB.
// Use it to capture log output from code under test.
//
// Each Write becomes one log entry, minus its trailing newline.
func Writer(t testing.TB) io.Writer {
	return &writer{t}
}

type writer struct{ t testing.TB }

func (w *writer) Write(b []byte) (int, error) {
	n := len(b)
	w.t.Logf("%s", bytes.TrimSuffix(b, _newline))
	return n, nil
}
