package main

import (
  "fmt"
  "math"

  "github.com/maorshutman/lm"
)

// LineFit is a Lorentzian-plus-constant fit to one spectral line.
type LineFit struct {
  Amp, Cen, Wid, C float64
}

// Area is the line integral above the constant.
func (f LineFit) Area(
) (
  float64,
) {
  return f.Amp * math.Pi * math.Abs(f.Wid) / 2
}

func Lorentzian(
  x, A, x0, gamma, C float64,
) (
  float64,
) {
  return .25 * A * math.Pow(gamma, 2) / (math.Pow(x - x0, 2) + (.25 * math.Pow(gamma, 2))) + C
}

// FitLine fits the bins within fitBins of pk. The starting guess takes the
// window's maximum above its minimum as the amplitude and a width of two bins.
// A solver panic (lm panics on a singular system) comes back as an error.
func FitLine(
  h Hist,
  pk float64,
  fitBins int,
) (
  fit LineFit, err error,
) {

  defer func() {
    if r := recover(); r != nil {
      fit, err = LineFit{}, fmt.Errorf("%.3f keV: %v", pk, r)
    }
  }()

  i0 := h.FindBin(pk) - fitBins
  i1 := h.FindBin(pk) + fitBins
  if i0 < 0 {
    i0 = 0
  }
  if i1 > h.Len()-1 {
    i1 = h.Len() - 1
  }

  var x, y []float64
  for i := i0; i <= i1; i++ {
    x = append(x, h.Center(i))
    y = append(y, h.Content[i])
  }
  if len(x) < 4 {
    return LineFit{}, fmt.Errorf("%.3f keV: %d bins in fit window, need 4", pk, len(x))
  }

  lo, hi := y[0], y[0]
  for _, v := range y {
    lo = math.Min(lo, v)
    hi = math.Max(hi, v)
  }

  // Fit in units of the window maximum so the solver tolerances are meaningful
  // for fluxes of order 1e38.
  norm := hi
  if norm == 0 {
    norm = 1
  }

  f := func(dst, params []float64) {
    A, x0, gamma, C := params[0], params[1], params[2], params[3]
    for i := range x {
      dst[i] = y[i]/norm - Lorentzian(x[i], A, x0, gamma, C)
    }
  }

  jacobian := lm.NumJac{Func: f}

  toBeSolved := lm.LMProblem{
    Dim:        4,
    Size:       len(x),
    Func:       f,
    Jac:        jacobian.Jac,
    InitParams: []float64{(hi - lo) / norm, pk, 2 * h.Width, lo / norm},
    Tau:        1e-6,
    Eps1:       1e-8,
    Eps2:       1e-8,
  }

  results, err := lm.LM(toBeSolved, &lm.Settings{Iterations: 1000, ObjectiveTol: 1e-16})
  if err != nil {
    return LineFit{}, fmt.Errorf("%.3f keV: %w", pk, err)
  }
  for _, v := range results.X {
    if math.IsNaN(v) || math.IsInf(v, 0) {
      return LineFit{}, fmt.Errorf("%.3f keV: fit diverged: %v", pk, results.X)
    }
  }
  if results.X[0] <= 0 {
    return LineFit{}, fmt.Errorf("%.3f keV: no line above the continuum (amplitude %g)", pk, results.X[0]*norm)
  }

  return LineFit{
    Amp: results.X[0] * norm,
    Cen: results.X[1],
    Wid: math.Abs(results.X[2]),
    C:   results.X[3] * norm,
  }, nil
}

// generateFitData samples a fitted line for drawing.
func generateFitData(
  fit LineFit,
  x0, dx float64,
  fitPts int,
) (
  [][]float64,
) {

  x := make([]float64, fitPts)
  y := make([]float64, fitPts)
  for i := range x {
    x[i] = x0 + dx*float64(i)
    y[i] = Lorentzian(x[i], fit.Amp, fit.Cen, fit.Wid, fit.C)
  }

  return [][]float64{x, y}
}
