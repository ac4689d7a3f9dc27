//go:build !gnuplot

package main

import (
  "errors"
)

// glot looks gnuplot up when the package loads and panics without it, so the
// preview is only compiled in with -tags gnuplot.
func preview(
  flux Table,
  h Hist,
) (
  error,
) {
  return errors.New("built without gnuplot support (rebuild with -tags gnuplot)")
}
