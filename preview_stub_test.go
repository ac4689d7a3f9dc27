//go:build !gnuplot

package main

import (
  "os"
  "path/filepath"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestPreviewWithoutGnuplot(t *testing.T) {
  dir := t.TempDir()
  fluxPath, phoPath := writeInputs(t, dir)
  out := filepath.Join(dir, "plots")

  err := run(options{fluxPath: fluxPath, xsPath: phoPath, outDir: out, preview: true})
  require.NoError(t, err)

  log, err := os.ReadFile(filepath.Join(out, "log.txt"))
  require.NoError(t, err)
  assert.Contains(t, string(log), "preview: built without gnuplot support")
}
