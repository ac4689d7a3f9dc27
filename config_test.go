package main

import (
  "path/filepath"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestDefaultConstants(t *testing.T) {
  c := DefaultConstants()

  require.NoError(t, c.Validate())
  assert.Equal(t, 595, c.NBins())
  assert.Len(t, c.Peaks, 5)
  assert.InEpsilon(t, 72.64/6.0221409e+23, c.PhoScale(), 1e-15)
  assert.InEpsilon(t, c.PhoScale()/1000, c.AxConvScale(), 1e-15)
  assert.InEpsilon(t, 89.5*1000/72.64*6.0221409e+23, c.AtomDays(), 1e-12)
  assert.InEpsilon(t, 3.8296e39, c.RedondoScale(), 1e-4)
  assert.InEpsilon(t, 3.65e-40, c.JCAPScale(), 1e-12)
}

func TestLoadConstants(t *testing.T) {
  t.Run("no file gives defaults", func(t *testing.T) {
    c, err := loadConstants("")
    require.NoError(t, err)
    assert.Equal(t, DefaultConstants(), c)
  })

  t.Run("file overrides only the keys it sets", func(t *testing.T) {
    path := writeFile(t, "analysis.yaml", "nObs: 20\nexposure: 100\npeaks: [1.739, 6.404]\nrefFlux: [1e38, 2e38]\ncouplingLines: 2\n")

    c, err := loadConstants(path)
    require.NoError(t, err)

    assert.Equal(t, 20.0, c.NObs)
    assert.Equal(t, 100.0, c.Exposure)
    assert.Equal(t, []float64{1.739, 6.404}, c.Peaks)
    assert.Equal(t, 2, c.CouplingLines)
    assert.Equal(t, 0.02, c.KevPerBin)
    assert.Equal(t, 11, c.FluxHeader)
  })

  t.Run("beta other than one is rejected", func(t *testing.T) {
    path := writeFile(t, "beta.yaml", "beta: 5\n")

    _, err := loadConstants(path)
    assert.ErrorContains(t, err, "beta")
  })

  t.Run("peaks and reference fluxes must line up", func(t *testing.T) {
    path := writeFile(t, "peaks.yaml", "peaks: [1.739]\n")

    _, err := loadConstants(path)
    assert.ErrorContains(t, err, "reference fluxes")
  })

  t.Run("bad yaml", func(t *testing.T) {
    path := writeFile(t, "bad.yaml", "nObs: [\n")

    _, err := loadConstants(path)
    assert.ErrorContains(t, err, "parse config")
  })

  t.Run("missing file", func(t *testing.T) {
    _, err := loadConstants(filepath.Join(t.TempDir(), "nope.yaml"))
    assert.ErrorContains(t, err, "read config")
  })
}

func TestValidate(t *testing.T) {
  c := DefaultConstants()
  c.KevPerBin = 0
  assert.Error(t, c.Validate())

  c = DefaultConstants()
  c.EHi = c.ELo
  assert.Error(t, c.Validate())

  c = DefaultConstants()
  c.CouplingLines = 6
  assert.Error(t, c.Validate())

  c = DefaultConstants()
  c.EHi = c.ELo + c.KevPerBin/2
  assert.Equal(t, 0, c.NBins())
  assert.ErrorContains(t, c.Validate(), "no 0.02 keV bin")
}
