package cli

import (
	"io"
	"os"
)

// stdin is a seam for tests that feed synthetic key input.
var stdinReader io.Reader = os.Stdin

func stdin() io.Reader {
	return stdinReader
}
