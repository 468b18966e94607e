package tui_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"roastline/internal/presentation/tui"
)

func readAll(t *testing.T, input string) []tui.Key {
	t.Helper()

	reader := tui.NewKeyReader(strings.NewReader(input))
	var keys []tui.Key
	for {
		key, err := reader.ReadKey()
		if err == io.EOF {
			return keys
		}
		assert.NoError(t, err)
		keys = append(keys, key)
	}
}

func TestKeyReader_Runes(t *testing.T) {
	keys := readAll(t, "sq+")

	assert.Equal(t, []tui.Key{
		{Kind: tui.KeyRune, Rune: 's'},
		{Kind: tui.KeyRune, Rune: 'q'},
		{Kind: tui.KeyRune, Rune: '+'},
	}, keys)
}

func TestKeyReader_ControlKeys(t *testing.T) {
	keys := readAll(t, "\r\n\t\x7f\x08\x03")

	want := []tui.KeyKind{
		tui.KeyEnter, tui.KeyEnter, tui.KeyTab,
		tui.KeyBackspace, tui.KeyBackspace, tui.KeyCtrlC,
	}
	assert.Len(t, keys, len(want))
	for i, kind := range want {
		assert.Equal(t, kind, keys[i].Kind)
	}
}

func TestKeyReader_ArrowSequences(t *testing.T) {
	keys := readAll(t, "\x1b[A\x1b[B\x1b[C\x1b[D")

	want := []tui.KeyKind{tui.KeyUp, tui.KeyDown, tui.KeyRight, tui.KeyLeft}
	assert.Len(t, keys, len(want))
	for i, kind := range want {
		assert.Equal(t, kind, keys[i].Kind)
	}
}

func TestKeyReader_DeleteSequence(t *testing.T) {
	keys := readAll(t, "\x1b[3~")

	assert.Len(t, keys, 1)
	assert.Equal(t, tui.KeyDelete, keys[0].Kind)
}

func TestKeyReader_BareEscape(t *testing.T) {
	keys := readAll(t, "\x1b")

	assert.Len(t, keys, 1)
	assert.Equal(t, tui.KeyEsc, keys[0].Kind)
}
