package main

import (
  "bufio"
  "fmt"
  "os"

  "go-hep.org/x/hep/hbook"
)

// toH1D copies h into an hbook histogram with edges half a bin either side
// of the centers, one weighted fill per bin.
func toH1D(
  name string,
  h Hist,
) (
  *hbook.H1D,
) {

  lo := h.Lo - h.Width/2
  hi := lo + float64(h.Len())*h.Width
  h1 := hbook.NewH1D(h.Len(), lo, hi)
  h1.Annotation()["name"] = name
  for i, v := range h.Content {
    h1.Fill(h.Center(i), v)
  }
  return h1
}

// writeYODA stores the named histograms in one YODA file for the spectral fit.
func writeYODA(
  path string,
  names []string,
  hists []Hist,
) (
  error,
) {

  if len(names) != len(hists) {
    return fmt.Errorf("%d names for %d histograms", len(names), len(hists))
  }

  f, err := os.Create(path)
  if err != nil {
    return err
  }
  defer f.Close()

  w := bufio.NewWriter(f)
  for i, h := range hists {
    raw, err := toH1D(names[i], h).MarshalYODA()
    if err != nil {
      return fmt.Errorf("marshal %s: %w", names[i], err)
    }
    if _, err := w.Write(raw); err != nil {
      return err
    }
  }

  if err := w.Flush(); err != nil {
    return err
  }
  return f.Close()
}
