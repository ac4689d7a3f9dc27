package main

import (
  "fmt"
  "image/color"
  "math"
  "os"
  "path/filepath"

  "gonum.org/v1/plot"
  "gonum.org/v1/plot/font"
  "gonum.org/v1/plot/plotter"
  "gonum.org/v1/plot/vg"
  "gonum.org/v1/plot/vg/draw"
)

const (
  red = iota
  blue
  green
  black
  gray
)

// canvas is the per-plot axis setup. A nil range lets gonum pick one.
type canvas struct {
  title, xlabel, ylabel string
  xrange, yrange        []float64
  logY, grid, slide     bool
}

func prepPlot(
  c canvas,
) (
  *plot.Plot,
) {

  p := plot.New()
  p.Title.Text = c.title
  p.Title.TextStyle.Font.Typeface = "Liberation"
  p.Title.TextStyle.Font.Variant = "Sans"

  p.X.Label.Text = c.xlabel
  p.X.Label.TextStyle.Font.Variant = "Sans"
  p.X.LineStyle.Width = vg.Points(1.5)
  p.X.Tick.LineStyle.Width = vg.Points(1.5)
  p.X.Tick.Label.Font.Variant = "Sans"
  if len(c.xrange) == 2 {
    p.X.Min = c.xrange[0]
    p.X.Max = c.xrange[1]
  }

  p.Y.Label.Text = c.ylabel
  p.Y.Label.TextStyle.Font.Variant = "Sans"
  p.Y.LineStyle.Width = vg.Points(1.5)
  p.Y.Tick.LineStyle.Width = vg.Points(1.5)
  p.Y.Tick.Label.Font.Variant = "Sans"
  if len(c.yrange) == 2 {
    p.Y.Min = c.yrange[0]
    p.Y.Max = c.yrange[1]
  }

  if c.logY {
    p.Y.Scale = plot.LogScale{}
    p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
  }

  p.Legend.TextStyle.Font.Variant = "Sans"
  p.Legend.Top = true
  p.Legend.XOffs = vg.Points(-10)
  p.Legend.YOffs = vg.Points(-10)
  p.Legend.Padding = vg.Points(5)
  p.Legend.ThumbnailWidth = vg.Points(30)

  if c.slide {
    p.Title.TextStyle.Font.Size = 40
    p.Title.Padding = font.Length(40)

    p.X.Label.TextStyle.Font.Size = 28
    p.X.Label.Padding = font.Length(20)
    p.X.Tick.Label.Font.Size = 28

    p.Y.Label.TextStyle.Font.Size = 28
    p.Y.Label.Padding = font.Length(20)
    p.Y.Tick.Label.Font.Size = 28

    p.Legend.TextStyle.Font.Size = 24
  } else {
    p.Title.TextStyle.Font.Size = 16
    p.X.Label.TextStyle.Font.Size = 14
    p.X.Tick.Label.Font.Size = 12
    p.Y.Label.TextStyle.Font.Size = 14
    p.Y.Tick.Label.Font.Size = 12
    p.Legend.TextStyle.Font.Size = 12
  }

  if c.grid {
    p.Add(plotter.NewGrid())
  }

  return p
}

func palette(
  brush int,
) (
  color.RGBA,
) {

  col := make([]color.RGBA, 5)
  col[red] = color.RGBA{R: 255, G: 0, B: 0, A: 255}
  col[blue] = color.RGBA{R: 0, G: 0, B: 255, A: 255}
  col[green] = color.RGBA{R: 0, G: 200, B: 0, A: 255}
  col[black] = color.RGBA{R: 0, G: 0, B: 0, A: 255}
  col[gray] = color.RGBA{R: 128, G: 128, B: 128, A: 255}

  return col[brush % len(col)]
}

func buildData(
  x, y []float64,
) (
  plotter.XYs,
) {

  xy := make(plotter.XYs, len(x))
  for i := range xy {
    xy[i].X = x[i]
    xy[i].Y = y[i]
  }

  return xy
}

// positive drops points a log axis cannot show.
func positive(
  xy plotter.XYs,
) (
  plotter.XYs,
) {

  var kept plotter.XYs
  for _, pt := range xy {
    if pt.Y > 0 && !math.IsInf(pt.Y, 0) && !math.IsNaN(pt.Y) {
      kept = append(kept, pt)
    }
  }
  return kept
}

// floor raises every value below ymin to ymin, so empty histogram bins sit on
// the bottom of a log axis instead of breaking it.
func floor(
  xy plotter.XYs,
  ymin float64,
) (
  plotter.XYs,
) {

  out := make(plotter.XYs, len(xy))
  copy(out, xy)
  for i := range out {
    if !(out[i].Y > ymin) {
      out[i].Y = ymin
    }
  }
  return out
}

func points(
  xy plotter.XYs,
  brush int,
  radius vg.Length,
) (
  *plotter.Scatter, error,
) {

  s, err := plotter.NewScatter(xy)
  if err != nil {
    return nil, err
  }
  s.GlyphStyle.Color = palette(brush)
  s.GlyphStyle.Radius = radius
  s.Shape = draw.CircleGlyph{}
  return s, nil
}

// histLine draws bin contents as a step line around the bin centers.
func histLine(
  xy plotter.XYs,
  brush int,
) (
  *plotter.Line, error,
) {

  l, err := plotter.NewLine(xy)
  if err != nil {
    return nil, err
  }
  l.StepStyle = plotter.MidStep
  l.LineStyle.Color = palette(brush)
  l.LineStyle.Width = vg.Points(1)
  return l, nil
}

// guideLine is a vertical marker at x spanning [ylo, yhi].
func guideLine(
  x, ylo, yhi float64,
  brush int,
) (
  *plotter.Line, error,
) {

  g := make(plotter.XYs, 2)
  g[0].X, g[0].Y = x, ylo
  g[1].X, g[1].Y = x, yhi

  l, err := plotter.NewLine(g)
  if err != nil {
    return nil, err
  }
  l.LineStyle.Color = palette(brush)
  l.LineStyle.Width = vg.Points(1)
  return l, nil
}

// savePlot writes p as pdf and png into dir.
func savePlot(
  p *plot.Plot,
  name, dir string,
  width, height vg.Length,
) (
  error,
) {

  if err := os.MkdirAll(dir, 0755); err != nil {
    return err
  }

  path := filepath.Join(dir, name)
  for _, ext := range []string{".pdf", ".png"} {
    if err := p.Save(width, height, path+ext); err != nil {
      return fmt.Errorf("save %s%s: %w", name, ext, err)
    }
  }
  return nil
}
