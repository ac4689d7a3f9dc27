package main

import (
  "bufio"
  "fmt"
  "os"
  "strconv"
  "strings"
)

// Table is a two-column (energy, value) text table as read from disk.
type Table struct {
  Energy []float64
  Value  []float64
}

// LoadTable reads a whitespace-delimited table, dropping the first skip
// lines. Only the first two columns are used; blank lines are ignored.
func LoadTable(
  path string,
  skip int,
) (
  Table, error,
) {

  f, err := os.Open(path)
  if err != nil {
    return Table{}, err
  }
  defer f.Close()

  var t Table
  scanner := bufio.NewScanner(f)
  line := 0
  for scanner.Scan() {
    line++
    if line <= skip {
      continue
    }

    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 2 {
      return Table{}, fmt.Errorf("%s:%d: want 2 columns, got %d", path, line, len(fields))
    }

    ene, err := strconv.ParseFloat(fields[0], 64)
    if err != nil {
      return Table{}, fmt.Errorf("%s:%d: energy: %w", path, line, err)
    }
    val, err := strconv.ParseFloat(fields[1], 64)
    if err != nil {
      return Table{}, fmt.Errorf("%s:%d: value: %w", path, line, err)
    }

    t.Energy = append(t.Energy, ene)
    t.Value = append(t.Value, val)
  }
  if err := scanner.Err(); err != nil {
    return Table{}, fmt.Errorf("read %s: %w", path, err)
  }

  return t, nil
}

func (t Table) Len(
) (
  int,
) {
  return len(t.Energy)
}

// Rows returns the table as [energy, value] pairs.
func (t Table) Rows(
) (
  [][2]float64,
) {

  rows := make([][2]float64, len(t.Energy))
  for i := range rows {
    rows[i] = [2]float64{t.Energy[i], t.Value[i]}
  }
  return rows
}

// Scale returns a copy with every value multiplied by k.
func (t Table) Scale(
  k float64,
) (
  Table,
) {

  scaled := Table{
    Energy: append([]float64(nil), t.Energy...),
    Value:  make([]float64, len(t.Value)),
  }
  for i, v := range t.Value {
    scaled.Value[i] = v * k
  }
  return scaled
}

// Window returns the values whose energy lies in [lo, hi].
func (t Table) Window(
  lo, hi float64,
) (
  []float64,
) {

  var in []float64
  for i, e := range t.Energy {
    if e >= lo && e <= hi {
      in = append(in, t.Value[i])
    }
  }
  return in
}
