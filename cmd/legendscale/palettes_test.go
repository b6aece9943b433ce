package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPalettesCommand_TableOutput(t *testing.T) {
	setupPalettesHome(t)

	stdout, err := executePalettesCommand()
	require.NoError(t, err)
	require.Contains(t, stdout, "NAME")
	require.Contains(t, stdout, "rainbow")
	require.Contains(t, stdout, "builtin")
	require.Contains(t, stdout, "(device ramp)")
	require.Contains(t, stdout, "cbs-cool")
	require.Contains(t, stdout, "cbs-warm")
	require.Contains(t, stdout, "sequential")
	require.Contains(t, stdout, "symmetric")
	require.Contains(t, stdout, "diverging")
	// Non-TTY preview falls back to hex values; the diverging pivot shows.
	require.Contains(t, stdout, "#cccccc")
}

func TestPalettesCommand_JSONOutput(t *testing.T) {
	setupPalettesHome(t)

	stdout, err := executePalettesCommand("--json")
	require.NoError(t, err)

	var payload struct {
		Version  string `json:"version"`
		Count    int    `json:"count"`
		Palettes []struct {
			Name   string   `json:"name"`
			Kind   string   `json:"kind"`
			Colors []string `json:"colors"`
		} `json:"palettes"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "1.0", payload.Version)
	require.Equal(t, 4, payload.Count)
	require.Equal(t, "cbs-cool", payload.Palettes[0].Name)
	require.Equal(t, "sequential", payload.Palettes[0].Kind)
	require.Len(t, payload.Palettes[0].Colors, 5)
	require.Equal(t, "rainbow", payload.Palettes[2].Name)
	require.Equal(t, "builtin", payload.Palettes[2].Kind)
	require.Empty(t, payload.Palettes[2].Colors)
	require.Equal(t, "symmetric", payload.Palettes[3].Name)
	require.Len(t, payload.Palettes[3].Colors, 5)
}

func TestPalettesCommand_IncludesConfigPalettes(t *testing.T) {
	home := setupPalettesHome(t)
	configPath := filepath.Join(home, "palettes.yaml")
	writePalettesConfig(t, configPath)

	stdout, err := executePalettesCommand("--config", configPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "thermal")
	require.Contains(t, stdout, "rainbow")
}

func TestPalettesCommand_RejectsBrokenConfig(t *testing.T) {
	home := setupPalettesHome(t)
	configPath := filepath.Join(home, "palettes.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: [broken"), 0o644))

	_, err := executePalettesCommand("--config", configPath)
	require.Error(t, err)
}

func executePalettesCommand(extraArgs ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)

	args := append([]string{"palettes"}, extraArgs...)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func setupPalettesHome(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writePalettesConfig(t *testing.T, path string) {
	t.Helper()
	data := []byte(`version: "1.0"

palettes:
  - name: thermal
    kind: sequential
    stops:
      - hue: 240
        saturation: 100
        value: 50
      - hue: 0
        saturation: 100
        value: 50
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}
