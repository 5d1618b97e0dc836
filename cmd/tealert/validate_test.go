package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsValidDefinition(t *testing.T) {
	path := writeDefinition(t, "saved.yaml", okDefinition)

	out, errOut, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, path+": valid (alert, 1 button)")
	assert.Empty(t, errOut)
}

func TestValidateCountsInvalidDefinitions(t *testing.T) {
	good := writeDefinition(t, "saved.yaml", okDefinition)
	bad := writeDefinition(t, "bad.yaml", "style: action_sheet\ninputs:\n  - placeholder: Name\nbuttons:\n  - label: OK\n")

	out, errOut, err := execute(t, "validate", good, bad)
	require.Error(t, err)
	assert.Equal(t, "1 of 2 definitions are invalid", err.Error())
	assert.Contains(t, out, good+": valid")
	assert.Contains(t, errOut, bad+": ")
}

func TestValidateWarnsAboutMissingImage(t *testing.T) {
	path := writeDefinition(t, "image.yaml", "image: missing.png\nbuttons:\n  - label: OK\n  - label: Cancel\n    style: cancel\n")

	out, errOut, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "valid (alert, 2 buttons)")
	assert.Contains(t, errOut, "missing.png not found")
	assert.Contains(t, errOut, "warning: show will leave the image out")
}

func TestValidateWarnsAboutUnsupportedImage(t *testing.T) {
	path := writeDefinition(t, "image.yaml", "image: notes.txt\nbuttons:\n  - label: OK\n")
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "notes.txt"), []byte("plain text"), 0o600))

	_, errOut, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "is not a png, jpeg, gif, bmp or webp file")
	assert.NotContains(t, errOut, "leave the image out")
}

func TestValidateRequiresArgument(t *testing.T) {
	_, _, err := execute(t, "validate")
	require.Error(t, err)
}

func TestSummarizeCountsInputs(t *testing.T) {
	path := writeDefinition(t, "login.yaml", `title: Sign in
inputs:
  - placeholder: Username
    tag: 1
  - placeholder: Password
    tag: 2
    secure: true
buttons:
  - label: Sign in
`)
	def, err := parseDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "alert, 1 button, 2 inputs", summarize(def))
}
