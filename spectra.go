package main

import (
  "fmt"

  "gonum.org/v1/gonum/floats"
  "gonum.org/v1/plot/plotter"
  "gonum.org/v1/plot/vg"
)

// spectra is everything the plots draw from. flux is already scaled to
// [cts / (keV cm^2 d)].
type spectra struct {
  c        Constants
  flux     Table
  fluxHist Hist
  pho      Table
  axioHist Hist
  conv     Hist
  rows     []PeakRow
  fits     []LineFit
}

type plotFunc func(s spectra, dir string, slide bool) error

var plots = []struct {
  name string
  fn   plotFunc
}{
  {"axFluxCompare", plotFluxCompare},
  {"axFluxGraham", plotFluxPerSecond},
  {"axFluxJCAP", plotFluxJCAP},
  {"mucalPho", plotPhotoelectric},
  {"axioElectric", plotAxioelectric},
  {"axionConv", plotConvolved},
}

// 1. Raw flux table against its histogram, the reference line fluxes and
// the ones integrated locally.
func plotFluxCompare(
  s spectra,
  dir string,
  slide bool,
) (
  error,
) {

  yrange := []float64{8e37, 1.5e40}
  p := prepPlot(canvas{
    title:  " ",
    xlabel: "Energy (keV)",
    ylabel: "flux (keV^-1 cm^-2 d^-1)",
    yrange: yrange,
    logY:   true,
    grid:   true,
    slide:  slide,
  })

  raw, err := points(positive(buildData(s.flux.Energy, s.flux.Value)), red, vg.Points(1))
  if err != nil {
    return err
  }

  hist, err := histLine(floor(s.fluxHist.XYs(), yrange[0]), blue)
  if err != nil {
    return err
  }

  pk := s.c.Peaks[len(s.c.Peaks)-1]
  ylo, yhi := yrange[0], yrange[1]
  if len(s.flux.Value) > 0 {
    if v := floats.Min(s.flux.Value); v > ylo {
      ylo = v
    }
    if v := floats.Max(s.flux.Value); v > ylo {
      yhi = v
    }
  }
  guide, err := guideLine(pk, ylo, yhi, red)
  if err != nil {
    return err
  }

  ref, err := points(positive(buildData(s.c.Peaks, s.c.RefFlux)), red, vg.Points(4))
  if err != nil {
    return err
  }

  local, err := points(positive(buildData(s.c.Peaks, column(s.rows, func(r PeakRow) float64 { return r.LocalFlux }))), green, vg.Points(4))
  if err != nil {
    return err
  }

  p.Add(raw, hist, guide, ref, local)
  p.Legend.Add("raw data", raw)
  p.Legend.Add(fmt.Sprintf("histo %g keV/bin", s.fluxHist.Width), hist)
  p.Legend.Add(fmt.Sprintf("%.3f keV", pk), guide)
  p.Legend.Add("reference flux", ref)
  p.Legend.Add("local flux", local)

  labelled := false
  for _, fit := range s.fits {
    if !(fit.Amp > 0) {
      continue
    }
    dx := s.fluxHist.Width / 10
    curve := generateFitData(fit, fit.Cen-10*s.fluxHist.Width, dx, 201)
    l, err := plotter.NewLine(floor(buildData(curve[0], curve[1]), yrange[0]))
    if err != nil {
      return err
    }
    l.LineStyle.Color = palette(gray)
    l.LineStyle.Width = vg.Points(1)
    l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
    p.Add(l)
    if !labelled {
      p.Legend.Add("line fits", l)
      labelled = true
    }
  }

  return savePlot(p, "axFluxCompare", dir, 8*vg.Inch, 6*vg.Inch)
}

// 2. Flux per second.
func plotFluxPerSecond(
  s spectra,
  dir string,
  slide bool,
) (
  error,
) {

  p := prepPlot(canvas{
    title:  " ",
    xlabel: "Energy (keV)",
    ylabel: "flux (keV^-1 cm^-2 s^-1)",
    logY:   true,
    grid:   true,
    slide:  slide,
  })

  perSec := s.flux.Scale(1. / 86400.)
  g, err := points(positive(buildData(perSec.Energy, perSec.Value)), blue, vg.Points(1))
  if err != nil {
    return err
  }
  p.Add(g)

  return savePlot(p, "axFluxGraham", dir, 8*vg.Inch, 6*vg.Inch)
}

// 3. Flux in the units of figure 2 of arXiv:1310.0823.
func plotFluxJCAP(
  s spectra,
  dir string,
  slide bool,
) (
  error,
) {

  p := prepPlot(canvas{
    title:  " ",
    xlabel: "Energy (keV)",
    ylabel: "flux 10^-20 keV^-1 y^-1 m^-2",
    yrange: []float64{-0.1, 3.1},
    slide:  slide,
  })

  jcap := s.flux.Scale(s.c.JCAPScale())
  g, err := points(buildData(jcap.Energy, jcap.Value), black, vg.Points(1))
  if err != nil {
    return err
  }
  p.Add(g)

  return savePlot(p, "axFluxJCAP", dir, 8*vg.Inch, 8*vg.Inch)
}

// 4. Photoelectric cross section as tabulated.
func plotPhotoelectric(
  s spectra,
  dir string,
  slide bool,
) (
  error,
) {

  p := prepPlot(canvas{
    title:  " ",
    xlabel: "Energy (keV)",
    ylabel: "σ_pe (cm^2/g)",
    xrange: []float64{s.c.ELo, s.c.EHi},
    yrange: []float64{10, 3e5},
    logY:   true,
    slide:  slide,
  })

  g, err := points(positive(buildData(s.pho.Energy, s.pho.Value)), blue, vg.Points(1))
  if err != nil {
    return err
  }
  p.Add(g)

  return savePlot(p, "mucalPho", dir, 8*vg.Inch, 6*vg.Inch)
}

// 5. Axioelectric cross section, pointwise and binned.
func plotAxioelectric(
  s spectra,
  dir string,
  slide bool,
) (
  error,
) {

  yrange := []float64{1, 6e2}
  p := prepPlot(canvas{
    title:  " ",
    xlabel: "Energy (keV)",
    ylabel: "σ_ae (barns/atom)",
    xrange: []float64{s.c.ELo, s.c.EHi},
    yrange: yrange,
    logY:   true,
    grid:   true,
    slide:  slide,
  })

  axio := AxioelectricCurve(s.pho, s.c.SigAeScale(), s.c.BarnsPerAtom)
  g, err := points(positive(buildData(axio.Energy, axio.Value)), blue, vg.Points(1))
  if err != nil {
    return err
  }

  h, err := histLine(floor(s.axioHist.XYs(), yrange[0]), red)
  if err != nil {
    return err
  }

  p.Add(g, h)

  return savePlot(p, "axioElectric", dir, 8*vg.Inch, 6*vg.Inch)
}

// 6. Flux convolved with the axioelectric cross section.
func plotConvolved(
  s spectra,
  dir string,
  slide bool,
) (
  error,
) {

  yrange := []float64{2e39, 4e42}
  p := prepPlot(canvas{
    xlabel: "Energy (keV)",
    ylabel: "flux cts keV^-1 d^-1 kg^-1",
    yrange: yrange,
    logY:   true,
    grid:   true,
    slide:  slide,
  })

  h, err := histLine(floor(s.conv.XYs(), yrange[0]), blue)
  if err != nil {
    return err
  }
  p.Add(h)

  return savePlot(p, "axionConv", dir, 8*vg.Inch, 6*vg.Inch)
}
