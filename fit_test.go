package main

import (
  "math"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestFitLine(t *testing.T) {
  t.Run("recovers a synthetic line", func(t *testing.T) {
    amp, cen, wid, c := 4e38, 2.0, 0.06, 1e38
    h := Hist{Lo: 1.0, Width: 0.02, Content: make([]float64, 100)}
    for i := range h.Content {
      h.Content[i] = Lorentzian(h.Center(i), amp, cen, wid, c)
    }

    fit, err := FitLine(h, 2.0, 10)
    require.NoError(t, err)

    assert.InDelta(t, cen, fit.Cen, 1e-4)
    assert.InEpsilon(t, wid, fit.Wid, 1e-3)
    assert.InEpsilon(t, amp*math.Pi*wid/2, fit.Area(), 1e-3)
  })

  t.Run("singular system is an error", func(t *testing.T) {
    fluxPath, _ := writeInputs(t, t.TempDir())
    c := DefaultConstants()
    raw, err := LoadTable(fluxPath, c.FluxHeader)
    require.NoError(t, err)
    h := BinTable(raw, c.ELo, c.EHi, c.KevPerBin, c.RedondoScale())

    require.NotPanics(t, func() {
      _, err = FitLine(h, 2.464, 10)
    })
    assert.ErrorContains(t, err, "2.464 keV")
  })

  t.Run("flat window has no line", func(t *testing.T) {
    h := Hist{Lo: 1.0, Width: 0.02, Content: make([]float64, 100)}
    for i := range h.Content {
      h.Content[i] = 1e38
    }

    var err error
    require.NotPanics(t, func() {
      _, err = FitLine(h, 2.0, 10)
    })
    assert.Error(t, err)
  })

  t.Run("too few bins", func(t *testing.T) {
    h := Hist{Lo: 1.0, Width: 0.02, Content: []float64{1, 2}}

    _, err := FitLine(h, 1.0, 10)
    assert.ErrorContains(t, err, "need 4")
  })
}

func TestLineFitArea(t *testing.T) {
  fit := LineFit{Amp: 2, Cen: 1, Wid: -0.5, C: 10}

  assert.InDelta(t, math.Pi/2, fit.Area(), 1e-15)
}

func TestGenerateFitData(t *testing.T) {
  fit := LineFit{Amp: 2, Cen: 1, Wid: 0.5, C: 1}

  curve := generateFitData(fit, 0.5, 0.25, 5)

  require.Len(t, curve[0], 5)
  assert.Equal(t, []float64{0.5, 0.75, 1, 1.25, 1.5}, curve[0])
  assert.InDelta(t, 3.0, curve[1][2], 1e-12, "amp + C at the center")
  assert.InDelta(t, 2.0, curve[1][1], 1e-12, "half height at cen - wid/2")
}
