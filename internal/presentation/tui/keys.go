package tui

import (
	"bufio"
	"io"
)

// KeyKind classifies a decoded key press.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyDelete
	KeyCtrlC
)

// Key is one decoded key press.
type Key struct {
	Kind KeyKind
	Rune rune
}

// KeyReader decodes raw-mode terminal input into key presses, including the
// CSI escape sequences for arrows and delete.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps an input stream (normally the raw-mode tty).
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until one key press is decoded.
func (k *KeyReader) ReadKey() (Key, error) {
	r, _, err := k.r.ReadRune()
	if err != nil {
		return Key{}, err
	}

	switch r {
	case 0x03:
		return Key{Kind: KeyCtrlC}, nil
	case '\r', '\n':
		return Key{Kind: KeyEnter}, nil
	case 0x7f, 0x08:
		return Key{Kind: KeyBackspace}, nil
	case '\t':
		return Key{Kind: KeyTab}, nil
	case 0x1b:
		return k.readEscape()
	default:
		return Key{Kind: KeyRune, Rune: r}, nil
	}
}

// readEscape resolves an ESC byte: either a bare escape or the start of a
// CSI sequence.
func (k *KeyReader) readEscape() (Key, error) {
	if k.r.Buffered() == 0 {
		return Key{Kind: KeyEsc}, nil
	}

	b, err := k.r.ReadByte()
	if err != nil {
		return Key{Kind: KeyEsc}, nil
	}
	if b != '[' {
		k.r.UnreadByte()
		return Key{Kind: KeyEsc}, nil
	}

	b, err = k.r.ReadByte()
	if err != nil {
		return Key{Kind: KeyEsc}, nil
	}
	switch b {
	case 'A':
		return Key{Kind: KeyUp}, nil
	case 'B':
		return Key{Kind: KeyDown}, nil
	case 'C':
		return Key{Kind: KeyRight}, nil
	case 'D':
		return Key{Kind: KeyLeft}, nil
	case '3':
		// "ESC [ 3 ~" is delete.
		if tilde, err := k.r.ReadByte(); err == nil && tilde == '~' {
			return Key{Kind: KeyDelete}, nil
		}
		return Key{Kind: KeyEsc}, nil
	default:
		return Key{Kind: KeyEsc}, nil
	}
}
