package input

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// KeyReader decodes single key presses from a raw-mode terminal stream
// into binding codes.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r for key decoding
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// EnableRawMode puts stdin into raw mode and returns a function restoring the previous state.
func EnableRawMode() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, err
	}
	return func() { term.Restore(fd, oldState) }, nil
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadKey blocks until a key is pressed and returns its code.
// Unknown escape sequences yield an empty code.
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		// A lone ESC has nothing queued behind it
		if k.r.Buffered() == 0 {
			return "escape", nil
		}
		return k.readEscape()
	case b == 3:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == ' ':
		return "space", nil
	case b == 127 || b == 8:
		return "backspace", nil
	case b >= 32 && b < 127:
		return strings.ToLower(string(b)), nil
	}
	return "", nil
}

// readEscape decodes the remainder of an escape sequence
func (k *KeyReader) readEscape() (string, error) {
	b2, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "", nil
	}

	b3, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	// Function keys: ESC [ 2 0 ~ is F9
	if b3 >= '0' && b3 <= '9' {
		seq := []byte{b3}
		for {
			b, err := k.r.ReadByte()
			if err != nil {
				return "", err
			}
			if b == '~' {
				break
			}
			seq = append(seq, b)
		}
		if string(seq) == "20" {
			return "f9", nil
		}
	}
	return "", nil
}
