package main

import (
  "math"
)

// PeakRow is one line of the cross-section and rate tables.
type PeakRow struct {
  Energy    float64 // keV
  E2Scale   float64 // E^2 * sigAeScale
  SigPe     float64 // photoelectric [cm^2 / atom]
  SigAe     float64 // axioelectric [cm^2 / atom]
  RefFlux   float64 // reference flux [cts / (cm^2 d)]
  LocalFlux float64 // flux integrated from the binned table
  RefRate   float64 // RefFlux * SigAe
  TableRate float64 // LocalFlux * SigAe
  HistRate  float64 // convolved histogram integral [cts / (atom d)]
}

// AxioelectricAt scales a photoelectric cross-section to the axioelectric
// one at energy ene.
func AxioelectricAt(
  sigPe, ene, sigAe float64,
) (
  float64,
) {
  return sigPe * math.Pow(ene, 2.) * sigAe
}

// AxioelectricCurve converts the raw photoelectric table [cm^2/g] into the
// axioelectric cross-section in units of unit (barns/atom for plotting).
func AxioelectricCurve(
  pho Table,
  sigAe, unit float64,
) (
  Table,
) {

  axio := Table{
    Energy: append([]float64(nil), pho.Energy...),
    Value:  make([]float64, len(pho.Value)),
  }
  for i, v := range pho.Value {
    axio.Value[i] = v * sigAe * math.Pow(pho.Energy[i], 2.) * unit
  }
  return axio
}

// PeakTable rebuilds the per-line cross-section and rate numbers from the
// binned flux and convolved histograms.
func PeakTable(
  c Constants,
  pho Table,
  flux, conv Hist,
) (
  []PeakRow,
) {

  sigAe := c.SigAeScale()
  rows := make([]PeakRow, len(c.Peaks))

  for i, pk := range c.Peaks {
    eneLo, eneHi := pk-c.KevPerBin, pk+c.KevPerBin

    pe := WindowMean(pho, eneLo, eneHi) * c.PhoScale()
    ae := AxioelectricAt(pe, pk, sigAe)
    local := PeakIntegral(flux, pk, c.BinRange)

    rows[i] = PeakRow{
      Energy:    pk,
      E2Scale:   math.Pow(pk, 2.) * sigAe,
      SigPe:     pe,
      SigAe:     ae,
      RefFlux:   c.RefFlux[i],
      LocalFlux: local,
      RefRate:   c.RefFlux[i] * ae,
      TableRate: local * ae,
      HistRate:  PeakIntegral(conv, pk, c.BinRange) * c.AxConvScale(),
    }
  }

  return rows
}

func column(
  rows []PeakRow,
  get func(PeakRow) float64,
) (
  []float64,
) {

  col := make([]float64, len(rows))
  for i, r := range rows {
    col[i] = get(r)
  }
  return col
}
