//go:build gnuplot

package main

import (
  "fmt"

  "github.com/Arafatk/glot"
)

// preview opens a persistent gnuplot window with the raw flux and the binned
// histogram so the table can be eyeballed before the plots are written.
func preview(
  flux Table,
  h Hist,
) (
  error,
) {

  dimensions := 2
  persist := true
  debug := false
  plot, err := glot.NewPlot(dimensions, persist, debug)
  if err != nil {
    return err
  }

  plot.SetTitle("Axion flux")
  plot.SetXLabel("Energy (keV)")
  plot.SetYLabel("flux (keV^-1 cm^-2 d^-1)")

  centers := make([]float64, h.Len())
  for i := range centers {
    centers[i] = h.Center(i)
  }

  if err := plot.AddPointGroup("raw data", "points", [][]float64{flux.Energy, flux.Value}); err != nil {
    return err
  }
  return plot.AddPointGroup(fmt.Sprintf("histo %g keV/bin", h.Width), "lines", [][]float64{centers, h.Content})
}
