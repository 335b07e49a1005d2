package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCorpusPathRejectsEmpty(t *testing.T) {
	assert.Error(t, checkCorpusPath(""))
}

func TestCheckCorpusPathRejectsMissingFile(t *testing.T) {
	assert.Error(t, checkCorpusPath(filepath.Join(t.TempDir(), "nope.json")))
}

func TestCheckCorpusPathRejectsDirectory(t *testing.T) {
	assert.Error(t, checkCorpusPath(t.TempDir()))
}

func TestCheckCorpusPathAcceptsFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "corpus.json")
	require.NoError(t, os.WriteFile(p, []byte("{}"), 0o644))
	assert.NoError(t, checkCorpusPath(p))
}

func TestCheckWarningConsistency(t *testing.T) {
	cfg := Default()
	cfg.Warnings = true
	cfg.WarnAsError = true
	assert.NoError(t, checkWarningConsistency(cfg))

	cfg.Warnings = false
	assert.Error(t, checkWarningConsistency(cfg))
}
