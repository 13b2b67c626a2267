package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	tomatoerrors "github.com/LuizRaizen/tomato/pkg/errors"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootFormatsStyledText(t *testing.T) {
	out, err := executeCommand(t, "hello", "--color", "red")
	require.NoError(t, err)
	require.Equal(t, "\x1b[31mhello\x1b[0m\n", out)
}

func TestRootJoinsArguments(t *testing.T) {
	out, err := executeCommand(t, "hello", "world", "--style", "bold")
	require.NoError(t, err)
	require.Equal(t, "\x1b[1mhello world\x1b[0m\n", out)
}

func TestRootRejectsUnknownColor(t *testing.T) {
	_, err := executeCommand(t, "hello", "--color", "chartreuse")

	var attrErr *tomatoerrors.AttributeError
	require.ErrorAs(t, err, &attrErr)
}

func TestRootLoadsPluginsFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"plugins": ["blink"]}`), 0o644))

	out, err := executeCommand(t, "hello", "--style", "blink", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "\x1b[5mhello\x1b[0m\n", out)
}

func TestRootPluginStylesNeedConfig(t *testing.T) {
	_, err := executeCommand(t, "hello", "--style", "blink")

	var attrErr *tomatoerrors.AttributeError
	require.ErrorAs(t, err, &attrErr)
}

func TestRootConfigErrorsSurface(t *testing.T) {
	_, err := executeCommand(t, "hello", "--config", filepath.Join(t.TempDir(), "missing.json"))

	var parseErr *tomatoerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestPaletteListsEveryTable(t *testing.T) {
	out, err := executeCommand(t, "palette")
	require.NoError(t, err)
	require.Contains(t, out, "COLORS")
	require.Contains(t, out, "MARKUPS")
	require.Contains(t, out, "STYLES")
	require.Contains(t, out, "bright_magenta")
	require.Contains(t, out, "negative")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "Tomato")
}
