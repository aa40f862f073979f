package terminal

import (
	"bytes"
	"testing"
)

func TestScreen(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)

	s.WriteAt(2, 4, "#")
	if got, want := buf.String(), "\x1b[3;5H#"; got != want {
		t.Errorf("WriteAt(2, 4) wrote %q, want %q", got, want)
	}

	buf.Reset()
	s.ClearLine(0, "status")
	if got, want := buf.String(), "\x1b[1;1Hstatus\x1b[K"; got != want {
		t.Errorf("ClearLine(0) wrote %q, want %q", got, want)
	}
}

func TestGetSizeFallback(t *testing.T) {
	// Under go test stdout is usually not a terminal; either way the size is positive
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %d, %d; want positive", w, h)
	}
}
