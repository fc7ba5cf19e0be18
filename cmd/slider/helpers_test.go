package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDeck = `name: "Demo deck"
slider:
  autoplay: false
  dots: true
  transition: slide
  transition_time: 0.25
  goto_policy: clamp
  viewport:
    width: 30
    height: 6
slides:
  - title: "One"
    body: "first slide"
  - title: "Two"
    body: "second slide"
  - title: "Three"
    body: "third slide"
`

func writeDeck(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// withoutTerminal makes render behave as if stdout were redirected.
func withoutTerminal(t *testing.T) {
	t.Helper()
	original := terminalWidth
	terminalWidth = func() (int, bool) { return 0, false }
	t.Cleanup(func() { terminalWidth = original })
}
