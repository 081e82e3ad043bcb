// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"gopkg.in/yaml.v3"
)

var errBadSystem = errors.New("invalid system file")

// systemFile is the on-disk form of a linear system. Every number is a
// string so that fractions such as "1/3" survive YAML decoding.
type systemFile struct {
	Matrix               [][]string `yaml:"matrix"`
	Result               []string   `yaml:"result"`
	TransformationVector []int      `yaml:"transformation_vector,omitempty"`
}

// ratField is exact rational arithmetic; every operation allocates.
type ratField struct{}

func (ratField) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (ratField) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (ratField) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }
func (ratField) IsZero(a *big.Rat) bool     { return a.Sign() == 0 }
func (ratField) Abs(a *big.Rat) *big.Rat    { return new(big.Rat).Abs(a) }
func (ratField) Cmp(a, b *big.Rat) int      { return a.Cmp(b) }

// readSystem decodes a system file and parses its literals.
func readSystem(r io.Reader) (*systemFile, [][]*big.Rat, []*big.Rat, error) {
	var f systemFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil, fmt.Errorf("%w: empty document", errBadSystem)
		}

		return nil, nil, nil, fmt.Errorf("%w: %v", errBadSystem, err)
	}

	matrix := make([][]*big.Rat, len(f.Matrix))
	for i, row := range f.Matrix {
		matrix[i] = make([]*big.Rat, len(row))
		for j, lit := range row {
			v, err := parseRat(lit)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("matrix[%d][%d]: %w", i, j, err)
			}
			matrix[i][j] = v
		}
	}
	result := make([]*big.Rat, len(f.Result))
	for i, lit := range f.Result {
		v, err := parseRat(lit)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("result[%d]: %w", i, err)
		}
		result[i] = v
	}

	return &f, matrix, result, nil
}

// writeSystem encodes matrix and result in the system file format.
func writeSystem(w io.Writer, matrix [][]*big.Rat, result []*big.Rat, tv []int) error {
	f := systemFile{
		Matrix:               make([][]string, len(matrix)),
		Result:               make([]string, len(result)),
		TransformationVector: tv,
	}
	for i, row := range matrix {
		f.Matrix[i] = make([]string, len(row))
		for j, v := range row {
			f.Matrix[i][j] = v.RatString()
		}
	}
	for i, v := range result {
		f.Result[i] = v.RatString()
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("encode system: %w", err)
	}

	return enc.Close()
}

// parseRat accepts integers, decimals ("0.125", "1e-3") and fractions ("-1/3").
func parseRat(lit string) (*big.Rat, error) {
	v, ok := new(big.Rat).SetString(lit)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a number", errBadSystem, lit)
	}

	return v, nil
}

// formatRat renders v as a fraction, or with the given number of decimals
// when decimals is positive.
func formatRat(v *big.Rat, decimals int) string {
	if decimals > 0 {
		return v.FloatString(decimals)
	}

	return v.RatString()
}

// checkTransformation verifies that tv, when present, is a permutation of the
// matrix columns.
func checkTransformation(tv []int, matrix [][]*big.Rat) error {
	if tv == nil {
		return nil
	}
	cols := 0
	if len(matrix) > 0 {
		cols = len(matrix[0])
	}
	if len(tv) != cols {
		return fmt.Errorf("%w: transformation_vector has %d entries for %d columns", errBadSystem, len(tv), cols)
	}
	seen := make([]bool, cols)
	for _, c := range tv {
		if c < 0 || c >= cols || seen[c] {
			return fmt.Errorf("%w: transformation_vector %v is not a permutation", errBadSystem, tv)
		}
		seen[c] = true
	}

	return nil
}
