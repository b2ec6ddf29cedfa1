package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/lzhf"
)

func TestLzhfxCli_Extracts(t *testing.T) {
	dir := t.TempDir()
	packedPath := filepath.Join(dir, "input.lzu")
	outPath := filepath.Join(dir, "output.bin")

	data := bytes.Repeat([]byte("extract me "), 512)
	packed, err := lzhf.Compress(data, nil)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(packedPath, packed, 0o644))

	code := run([]string{packedPath, outPath})
	require.Equal(t, 0, code)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestLzhfxCli_Usage(t *testing.T) {
	assert.Equal(t, 2, run(nil))
	assert.Equal(t, 2, run([]string{"only-one"}))
	assert.Equal(t, 2, run([]string{"a", "b", "c"}))
}

func TestLzhfxCli_RejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "garbage")
	require.NoError(t, os.WriteFile(badPath, []byte("definitely not an lzhf stream"), 0o644))

	assert.Equal(t, 1, run([]string{badPath, filepath.Join(dir, "out")}))
}

func TestLzhfxCli_MissingInput(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, 1, run([]string{filepath.Join(dir, "absent"), filepath.Join(dir, "out")}))
}
