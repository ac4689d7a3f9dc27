package main

import (
  "fmt"
  "math"

  "gonum.org/v1/gonum/floats"
  "gonum.org/v1/gonum/stat"
  "gonum.org/v1/plot/plotter"
)

// Hist is a fixed-width histogram. Bin i is centered on Lo + i*Width.
type Hist struct {
  Lo      float64
  Width   float64
  Content []float64
}

func newHist(
  lo, hi, width float64,
) (
  Hist,
) {

  nBins := int((hi - lo) / width)
  if nBins < 0 {
    nBins = 0
  }
  return Hist{Lo: lo, Width: width, Content: make([]float64, nBins)}
}

func (h Hist) Len(
) (
  int,
) {
  return len(h.Content)
}

func (h Hist) Center(
  i int,
) (
  float64,
) {
  return float64(i)*h.Width + h.Lo
}

// FindBin returns the bin whose [center - w/2, center + w/2) window holds x,
// clamped to the histogram.
func (h Hist) FindBin(
  x float64,
) (
  int,
) {

  i := int(math.Floor((x - (h.Lo - h.Width/2)) / h.Width))
  if i < 0 {
    return 0
  }
  if i > len(h.Content)-1 {
    return len(h.Content) - 1
  }
  return i
}

// Integral sums bin contents from FindBin(a) to FindBin(b) inclusive. Multiply
// by Width for the integral over energy.
func (h Hist) Integral(
  a, b float64,
) (
  float64,
) {

  if len(h.Content) == 0 {
    return 0
  }
  i0, i1 := h.FindBin(a), h.FindBin(b)
  if i1 < i0 {
    return 0
  }
  return floats.Sum(h.Content[i0 : i1+1])
}

// PeakIntegral integrates h over pk ± binRange bins.
func PeakIntegral(
  h Hist,
  pk, binRange float64,
) (
  float64,
) {
  return h.Integral(pk-h.Width*binRange, pk+h.Width*binRange) * h.Width
}

// Multiply returns the bin-by-bin product of two histograms on the same grid.
func Multiply(
  a, b Hist,
) (
  Hist, error,
) {

  if a.Lo != b.Lo || a.Width != b.Width || len(a.Content) != len(b.Content) {
    return Hist{}, fmt.Errorf("histogram grids differ: (%g, %g, %d) vs (%g, %g, %d)",
      a.Lo, a.Width, len(a.Content), b.Lo, b.Width, len(b.Content))
  }

  prod := Hist{Lo: a.Lo, Width: a.Width, Content: make([]float64, len(a.Content))}
  for i := range prod.Content {
    prod.Content[i] = a.Content[i] * b.Content[i]
  }
  return prod, nil
}

// BinTable fills each bin with the mean of the table rows lying within half
// a bin of its center (both ends inclusive), times scale. Bins with no rows
// are 0.
func BinTable(
  t Table,
  lo, hi, width, scale float64,
) (
  Hist,
) {

  h := newHist(lo, hi, width)
  for i := range h.Content {
    ene := h.Center(i)
    h.Content[i] = meanOrZero(t.Window(ene-width/2., ene+width/2.)) * scale
  }
  return h
}

// BinAxioelectric bins a photoelectric table into an axioelectric
// cross-section: mean * E^2 * sigAeScale * unit, with E the bin center.
func BinAxioelectric(
  pho Table,
  lo, hi, width, sigAe, unit float64,
) (
  Hist,
) {

  h := newHist(lo, hi, width)
  for i := range h.Content {
    ene := h.Center(i)
    pe := meanOrZero(pho.Window(ene-width/2., ene+width/2.))
    h.Content[i] = pe * math.Pow(ene, 2.) * sigAe * unit
  }
  return h
}

// WindowMean is the unweighted mean of the table values in [lo, hi]. NaN when
// the window is empty.
func WindowMean(
  t Table,
  lo, hi float64,
) (
  float64,
) {
  return stat.Mean(t.Window(lo, hi), nil)
}

func meanOrZero(
  values []float64,
) (
  float64,
) {

  if len(values) == 0 {
    return 0.
  }
  m := stat.Mean(values, nil)
  if math.IsNaN(m) {
    return 0.
  }
  return m
}

// XYs gives bin centers and contents for plotting.
func (h Hist) XYs(
) (
  plotter.XYs,
) {

  xy := make(plotter.XYs, len(h.Content))
  for i := range xy {
    xy[i].X = h.Center(i)
    xy[i].Y = h.Content[i]
  }
  return xy
}
