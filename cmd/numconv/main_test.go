package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/numconv/internal/app"
	"github.com/stretchr/testify/require"
)

func TestRun_ConvertsFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	input := filepath.Join(dir, "numbers.txt")
	output := filepath.Join(dir, "results.txt")
	require.NoError(t, os.WriteFile(input, []byte("5\n-5\nnope\n"), 0600), "failed to set up test file")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-output", output, input})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Number: 5 | Binary: 101 | Hexadecimal: 5")
	require.Contains(t, out.String(), "Number: -5 | Binary: 11111011 | Hexadecimal: FB")
	require.Contains(t, out.String(), "Invalid Entries: nope")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, out.String(), string(data)+"\n")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-output", filepath.Join(dir, "r.txt"), filepath.Join(dir, "missing.txt")})

	require.ErrorIs(t, err, app.ErrInputNotFound)
}

func TestRun_NoValidNumbers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "numbers.txt")
	require.NoError(t, os.WriteFile(input, []byte("x\ny\n"), 0600))

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-output", filepath.Join(dir, "r.txt"), input})

	require.ErrorIs(t, err, app.ErrNoNumbers)
}
