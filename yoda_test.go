package main

import (
  "os"
  "path/filepath"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestToH1D(t *testing.T) {
  h := Hist{Lo: 0.1, Width: 0.02, Content: []float64{1, 0, 3, 4.5}}

  h1 := toH1D("axFlux", h)

  require.Equal(t, h.Len(), h1.Len())
  assert.InDelta(t, 0.09, h1.XMin(), 1e-12)
  assert.InDelta(t, 0.17, h1.XMax(), 1e-12)
  for i, v := range h.Content {
    assert.InDelta(t, v, h1.Binning.Bins[i].SumW(), 1e-12, "bin %d", i)
  }
  assert.InDelta(t, 8.5, h1.SumW(), 1e-12)
}

func TestWriteYODA(t *testing.T) {
  path := filepath.Join(t.TempDir(), "histos.yoda")
  hists := []Hist{
    {Lo: 0.1, Width: 0.02, Content: []float64{1, 2, 3}},
    {Lo: 0.1, Width: 0.02, Content: []float64{4, 5, 6}},
  }

  require.NoError(t, writeYODA(path, []string{"axFlux", "axionConv"}, hists))

  raw, err := os.ReadFile(path)
  require.NoError(t, err)
  assert.Contains(t, string(raw), "YODA_HISTO1D")
  assert.Contains(t, string(raw), "axFlux")
  assert.Contains(t, string(raw), "axionConv")

  assert.ErrorContains(t, writeYODA(path, []string{"one"}, hists), "1 names for 2 histograms")
}
