package main

import (
  "os"
  "path/filepath"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
  t.Helper()
  path := filepath.Join(t.TempDir(), name)
  require.NoError(t, os.WriteFile(path, []byte(body), 0644))
  return path
}

func TestLoadTable(t *testing.T) {
  t.Run("skips header and blank lines", func(t *testing.T) {
    path := writeFile(t, "flux.txt", "header one\nheader two\n1.00 2.5\n\n1.01   3.5  extra\n1.02\t4.5\n")

    tab, err := LoadTable(path, 2)
    require.NoError(t, err)

    assert.Equal(t, []float64{1.00, 1.01, 1.02}, tab.Energy)
    assert.Equal(t, []float64{2.5, 3.5, 4.5}, tab.Value)
    assert.Equal(t, 3, tab.Len())
    assert.Equal(t, [][2]float64{{1.00, 2.5}, {1.01, 3.5}, {1.02, 4.5}}, tab.Rows())
  })

  t.Run("malformed value names the line", func(t *testing.T) {
    path := writeFile(t, "bad.txt", "1.0 2.0\n1.1 abc\n")

    _, err := LoadTable(path, 0)
    assert.ErrorContains(t, err, "bad.txt:2")
  })

  t.Run("single column row", func(t *testing.T) {
    path := writeFile(t, "short.txt", "1.0\n")

    _, err := LoadTable(path, 0)
    assert.ErrorContains(t, err, "want 2 columns")
  })

  t.Run("missing file", func(t *testing.T) {
    _, err := LoadTable(filepath.Join(t.TempDir(), "nope.txt"), 0)
    assert.Error(t, err)
  })
}

func TestScaleMultipliesEveryValue(t *testing.T) {
  raw := Table{Energy: []float64{1.7, 1.8, 6.4}, Value: []float64{0.31, 12.5, 7e-3}}
  k := DefaultConstants().RedondoScale()

  scaled := raw.Scale(k)

  require.Equal(t, raw.Len(), scaled.Len())
  for i := range raw.Value {
    assert.Equal(t, raw.Value[i]*k, scaled.Value[i])
    assert.Equal(t, raw.Energy[i], scaled.Energy[i])
  }
  assert.Equal(t, 0.31, raw.Value[0], "source table is left alone")
}

func TestWindowIsInclusive(t *testing.T) {
  tab := Table{Energy: []float64{0.5, 1.0, 1.5, 2.0}, Value: []float64{1, 2, 3, 4}}

  assert.Equal(t, []float64{2, 3}, tab.Window(1.0, 1.5))
  assert.Empty(t, tab.Window(2.5, 3.0))
}
