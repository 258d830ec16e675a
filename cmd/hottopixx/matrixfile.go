// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// matrixDoc is the on-disk YAML layout of a data matrix:
//
//	rows:
//	  - [0.1, 0.1, 0.8, 0.0]
//	  - [0.1, 0.8, 0.0, 0.1]
type matrixDoc struct {
	Rows [][]float64 `yaml:"rows"`
}

// denseFromRows copies rectangular rows into a fresh matrix.
func denseFromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", errBadConfig)
	}
	n := len(rows[0])
	out := mat.NewDense(len(rows), n, nil)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", errBadConfig, i, len(row), n)
		}
		out.SetRow(i, row)
	}
	return out, nil
}

// rowsOf copies m into a slice of rows for serialization.
func rowsOf(m mat.Matrix) [][]float64 {
	if m == nil {
		return nil
	}
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}

// readMatrixFile decodes a matrixDoc from path.
func readMatrixFile(path string) (*mat.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hottopixx: read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("hottopixx: %s: %w: empty file", path, errBadConfig)
	}
	var doc matrixDoc
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("hottopixx: decode %s: %w", path, err)
	}
	m, err := denseFromRows(doc.Rows)
	if err != nil {
		return nil, fmt.Errorf("hottopixx: %s: %w", path, err)
	}
	return m, nil
}

// writeYAML encodes v to w with two-space indentation.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeOutput writes v to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, v any) error {
	if path == "" {
		return writeYAML(w, v)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("hottopixx: create %s: %w", path, err)
	}
	if err = writeYAML(f, v); err != nil {
		_ = f.Close()
		return fmt.Errorf("hottopixx: write %s: %w", path, err)
	}
	return f.Close()
}
