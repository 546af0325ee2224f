package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/regbuild/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_BuildWritesBothArtifacts(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	output := filepath.Join(dir, "definitions.json")
	full := filepath.Join(dir, "full", "definitions-full.json")
	args := []string{"-output", output, "-full-output", full, "-log-level", "error"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Registry build summary")

	clientBytes, err := os.ReadFile(output)
	require.NoError(t, err)
	fullBytes, err := os.ReadFile(full)
	require.NoError(t, err)
	require.Equal(t, fullBytes, clientBytes, "both artifacts must carry identical content")

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(clientBytes, &decoded))
	require.Contains(t, decoded, "daily")
	require.Contains(t, decoded, "cn_gdp")
}

func TestRun_MalformedExistingIsBuildFailure(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	output := filepath.Join(dir, "definitions.json")
	require.NoError(t, os.WriteFile(output, []byte(`[1, 2, 3]`), 0o600))
	args := []string{"-output", output, "-full-output", filepath.Join(dir, "full.json")}

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, args)

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, exitErr.Message, "malformed registry document")

	_, statErr := os.Stat(filepath.Join(dir, "full.json"))
	require.True(t, os.IsNotExist(statErr), "nothing may be written when the existing registry is malformed")
}
