// Reproduces the input PDFs for the spectral fit (axion flux, photoelectric
// and axioelectric cross sections, their convolution), the per-line tables
// and the g_ae bounds, and checks the histogram binning used by the fit.
package main

import (
  "bufio"
  "flag"
  "fmt"
  "math"
  "os"
  "path/filepath"
  "strings"
)

type options struct {
  fluxPath, xsPath, outDir, configPath string
  preview, slide, yoda                 bool
}

func main() {

  opts := flags()

  if err := run(opts); err != nil {
    fmt.Println(err)
    os.Exit(1)
  }
}

//----------------------------------------------------------------------------//

func flags(
) (
  options,
) {

  var opts options

  flag.StringVar(&opts.fluxPath, "flux", "data/redondoFlux.txt", "solar axion flux table")
  flag.StringVar(&opts.xsPath, "xs", "data/ge76peXS.txt", "photoelectric cross section table (0.01 keV steps)")
  flag.StringVar(&opts.outDir, "out", "plots", "directory for plots, log.txt and histograms")
  flag.StringVar(&opts.configPath, "config", "", "YAML file overriding analysis constants")
  flag.BoolVar(&opts.preview, "preview", false, "show raw flux in a gnuplot window")
  flag.BoolVar(&opts.slide, "slide", false, "format figures for slide presentation")
  flag.BoolVar(&opts.yoda, "yoda", false, "write binned histograms to histos.yoda")
  flag.Parse()

  return opts
}

func run(
  opts options,
) (
  error,
) {

  c, err := loadConstants(opts.configPath)
  if err != nil {
    return err
  }

  var logFile []string

  // 1. Axion flux
  rawFlux, err := LoadTable(opts.fluxPath, c.FluxHeader)
  if err != nil {
    return err
  }
  flux := rawFlux.Scale(c.RedondoScale())

  // Same binning as the fit's histograms
  fluxHist := BinTable(rawFlux, c.ELo, c.EHi, c.KevPerBin, c.RedondoScale())

  if opts.preview {
    if err := preview(flux, fluxHist); err != nil {
      logFile = logf(logFile, "preview: %v\n", err)
    }
  }

  // 2. Photoelectric cross section [cm^2/g]
  pho, err := LoadTable(opts.xsPath, 0)
  if err != nil {
    return err
  }

  // 3. Axioelectric [barns/atom] for plotting, [cm^2/kg] for the convolution
  axioHist := BinAxioelectric(pho, c.ELo, c.EHi, c.KevPerBin, c.SigAeScale(), c.BarnsPerAtom)
  axioKg := BinAxioelectric(pho, c.ELo, c.EHi, c.KevPerBin, c.SigAeScale(), 1000.)

  // [cts / (keV d kg)]
  conv, err := Multiply(axioKg, fluxHist)
  if err != nil {
    return err
  }

  // 4. Tables
  rows := PeakTable(c, pho, fluxHist, conv)

  fits := make([]LineFit, len(c.Peaks))
  for i, pk := range c.Peaks {
    fit, err := FitLine(fluxHist, pk, 10)
    if err != nil {
      logFile = logf(logFile, "line fit: %v\n", err)
      continue
    }
    fits[i] = fit
  }

  logFile = logTables(logFile, c, rows, fits)
  logFile = logBounds(logFile, c, rows, conv)

  // 5. Plots
  s := spectra{
    c:        c,
    flux:     flux,
    fluxHist: fluxHist,
    pho:      pho,
    axioHist: axioHist,
    conv:     conv,
    rows:     rows,
    fits:     fits,
  }
  for _, pl := range plots {
    if err := pl.fn(s, opts.outDir, opts.slide); err != nil {
      return fmt.Errorf("%s: %w", pl.name, err)
    }
    logFile = logf(logFile, "wrote %s\n", filepath.Join(opts.outDir, pl.name))
  }

  if opts.yoda {
    path := filepath.Join(opts.outDir, "histos.yoda")
    err := writeYODA(path,
      []string{"axFlux", "axioElectric", "axionConv"},
      []Hist{fluxHist, axioHist, conv},
    )
    if err != nil {
      return err
    }
    logFile = logf(logFile, "wrote %s\n", path)
  }

  // TODO: tritium plot
  return writeLog(opts.outDir, logFile)
}

// logf prints one report line and keeps it for log.txt.
func logf(
  logFile []string,
  format string,
  args ...interface{},
) (
  []string,
) {

  str := fmt.Sprintf(format, args...)
  fmt.Print(str)
  return append(logFile, str)
}

func prettyFloats(
  values []float64,
) (
  string,
) {

  strs := make([]string, len(values))
  for i, v := range values {
    strs[i] = fmt.Sprintf("%.2e", v)
  }
  return "[" + strings.Join(strs, ", ") + "]"
}

func logTables(
  logFile []string,
  c Constants,
  rows []PeakRow,
  fits []LineFit,
) (
  []string,
) {

  col := func(get func(PeakRow) float64) string {
    return prettyFloats(column(rows, get))
  }

  // Failed fits are left zero and print as NaN.
  fitFlux := make([]float64, len(fits))
  for i, fit := range fits {
    fitFlux[i] = math.NaN()
    if fit.Amp > 0 {
      fitFlux[i] = fit.Area()
    }
  }

  logFile = logf(logFile, "sig_ae factor: %v\n", c.SigAeScale())
  logFile = logf(logFile, "T3,C2: E^2 * (sigAeScale)             %s\n", col(func(r PeakRow) float64 { return r.E2Scale }))
  logFile = logf(logFile, "T3,C3: sig_pe (cm^2/atom)             %s\n", col(func(r PeakRow) float64 { return r.SigPe }))
  logFile = logf(logFile, "T3,C4: sig_ae                         %s\n", col(func(r PeakRow) float64 { return r.SigAe }))
  logFile = logf(logFile, "T4,C2 (old): Phi_a (cm^2/d)           %s\n", col(func(r PeakRow) float64 { return r.RefFlux }))
  logFile = logf(logFile, "T4,C2 (new):                          %s\n", col(func(r PeakRow) float64 { return r.LocalFlux }))
  logFile = logf(logFile, "T4,C2 (fit):                          %s\n", prettyFloats(fitFlux))
  logFile = logf(logFile, "T4,C4 (ref): Phi_a * sig_ae (cts/d)   %s\n", col(func(r PeakRow) float64 { return r.RefRate }))
  logFile = logf(logFile, "T4,C4 (table):                        %s\n", col(func(r PeakRow) float64 { return r.TableRate }))
  logFile = logf(logFile, "T4,C4 (histo):                        %s\n", col(func(r PeakRow) float64 { return r.HistRate }))

  return logFile
}

func logBounds(
  logFile []string,
  c Constants,
  rows []PeakRow,
  conv Hist,
) (
  []string,
) {

  bounds := Bounds(c, rows)
  for _, b := range bounds {
    logFile = logf(logFile, "%s g_ae: %.2e\n", b.Source, b.GAe)
  }

  logFile = logf(logFile, "Histo peaks expected counts: %v\n", bounds[len(bounds)-1].NExp)
  logFile = logf(logFile, "Continuum expected counts: %v\n", ContinuumCounts(c, conv))

  return logFile
}

func writeLog(
  dir string,
  logFile []string,
) (
  error,
) {

  if err := os.MkdirAll(dir, 0755); err != nil {
    return err
  }

  txt, err := os.Create(filepath.Join(dir, "log.txt"))
  if err != nil {
    return err
  }
  defer txt.Close()

  w := bufio.NewWriter(txt)
  for _, line := range logFile {
    if _, err := w.WriteString(line); err != nil {
      return err
    }
  }
  return w.Flush()
}
