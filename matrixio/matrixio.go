// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrix documents.
//
// A document is YAML (JSON is accepted as well, being a subset of YAML):
//
//	a: [[2, 1, -3], [-1, 3, 2], [3, 1, -3]]
//	b: [[1], [2], [3]]   # optional right-hand side or second operand
//
// Grids are converted to *matrix.Dense through matrix.FromGrid, so the usual
// shape and numeric checks (ErrInvalidDimensions, ErrRagged, ErrNaNInf) apply.
package matrixio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlalg/matrix"
)

// ErrMissingOperand is returned when a document lacks a grid an operation needs.
var ErrMissingOperand = errors.New("matrixio: missing operand")

// Document is the on-disk form of one or two matrices.
type Document struct {
	A [][]float64 `yaml:"a"`
	B [][]float64 `yaml:"b,omitempty"`
}

// Result is the on-disk form of an operation's output. Only the fields that
// the operation produces are set.
type Result struct {
	Op          string      `yaml:"op"`
	Determinant *float64    `yaml:"determinant,omitempty"`
	Matrix      [][]float64 `yaml:"matrix,omitempty"`
	L           [][]float64 `yaml:"l,omitempty"`
	U           [][]float64 `yaml:"u,omitempty"`
	Permutation []int       `yaml:"permutation,omitempty"`
	Parity      int         `yaml:"parity,omitempty"`
}

// Decode parses a single document from r. Unknown top-level keys are rejected
// so that a misspelled operand does not silently disappear.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Decode: empty document: %w", ErrMissingOperand)
		}
		return nil, fmt.Errorf("Decode: %w", err)
	}
	if len(doc.A) == 0 {
		return nil, fmt.Errorf("Decode: %q: %w", "a", ErrMissingOperand)
	}

	return doc, nil
}

// Load reads the document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return doc, nil
}

// Save writes v (a *Document or *Result) to path.
func Save(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Encode writes v (a *Document or *Result) to w as YAML with two-space indentation.
func Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}

// Operands builds a and, when present, b. A missing b yields a nil *Dense.
func (d *Document) Operands(opts ...matrix.Option) (a, b *matrix.Dense, err error) {
	if a, err = matrix.FromGrid(d.A, opts...); err != nil {
		return nil, nil, fmt.Errorf("operand a: %w", err)
	}
	if len(d.B) == 0 {
		return a, nil, nil
	}
	if b, err = matrix.FromGrid(d.B, opts...); err != nil {
		return nil, nil, fmt.Errorf("operand b: %w", err)
	}

	return a, b, nil
}

// RequireB is Operands for operations that need both grids.
func (d *Document) RequireB(opts ...matrix.Option) (a, b *matrix.Dense, err error) {
	if len(d.B) == 0 {
		return nil, nil, fmt.Errorf("%q: %w", "b", ErrMissingOperand)
	}

	return d.Operands(opts...)
}
