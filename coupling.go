package main

import (
  "math"

  "gonum.org/v1/gonum/floats"
)

// Bound is one g_ae upper limit and the expected count it came from.
type Bound struct {
  Source string
  NExp   float64
  GAe    float64
}

// ExpectedCounts is atomDays times the sum of the first n per-line rates.
func ExpectedCounts(
  atomDays float64,
  rates []float64,
  n int,
) (
  float64,
) {

  if n > len(rates) {
    n = len(rates)
  }
  return atomDays * floats.Sum(rates[:n])
}

// GAe is the upper bound on the coupling given observed and expected counts.
// Rate scales as g_ae^4.
func GAe(
  nObs, nExp float64,
) (
  float64,
) {
  return math.Pow(nObs/nExp, 1./4.)
}

// Bounds compares the three expected-count sources: the reference table,
// the locally recomputed table, and the convolved histogram.
func Bounds(
  c Constants,
  rows []PeakRow,
) (
  []Bound,
) {

  atomDays := c.AtomDays()
  sources := []struct {
    name string
    get  func(PeakRow) float64
  }{
    {"reference table", func(r PeakRow) float64 { return r.RefRate }},
    {"local table", func(r PeakRow) float64 { return r.TableRate }},
    {"local histogram", func(r PeakRow) float64 { return r.HistRate }},
  }

  var bounds []Bound
  for _, s := range sources {
    nExp := ExpectedCounts(atomDays, column(rows, s.get), c.CouplingLines)
    bounds = append(bounds, Bound{Source: s.name, NExp: nExp, GAe: GAe(c.NObs, nExp)})
  }
  return bounds
}

// ContinuumCounts integrates the convolved histogram over the continuum
// window and converts it to expected counts.
func ContinuumCounts(
  c Constants,
  conv Hist,
) (
  float64,
) {
  return conv.Integral(c.ContinuumLo, c.ContinuumHi) * c.KevPerBin * c.AxConvScale() * c.AtomDays()
}
