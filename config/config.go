// SPDX-License-Identifier: MIT

// Package config loads the recognized solver option set from YAML documents
// and environment variables and turns it into gaussian options.
//
// Recognized keys:
//
//	pivoting: partial   # none | avoid zero | partial | scaled | complete   (GAUSS_PIVOTING)
//	lu: false           # keep the row multipliers below the diagonal       (GAUSS_LU)
//
// The additive identity ("zero") depends on the numeric type and is therefore
// not part of the file format; set it in code with gaussian.WithZero.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gauss/gaussian"
)

// Config is the recognized option set.
type Config struct {
	Pivoting string `yaml:"pivoting" env:"GAUSS_PIVOTING" envDefault:"partial"`
	LU       bool   `yaml:"lu" env:"GAUSS_LU" envDefault:"false"`
}

// Default returns the solver defaults in Config form.
func Default() Config {
	return Config{
		Pivoting: gaussian.DefaultPivoting.String(),
		LU:       gaussian.DefaultLU,
	}
}

// Load decodes a YAML document on top of Default and validates it.
// Unknown keys are rejected. An empty document yields the defaults.
func Load(r io.Reader) (Config, error) {
	return LoadOnto(Default(), r)
}

// LoadOnto decodes a YAML document on top of base, so keys the document
// leaves out keep their base value, and validates the result.
func LoadOnto(base Config, r io.Reader) (Config, error) {
	c := base

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (Config, error) {
	return LoadFileOnto(Default(), path)
}

// LoadFileOnto opens path and calls LoadOnto with base.
func LoadFileOnto(base Config, path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c, err := LoadOnto(base, f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// FromEnv reads GAUSS_PIVOTING and GAUSS_LU, falling back to the defaults,
// and validates the result.
func FromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports whether the pivoting name is recognized.
// The error wraps gaussian.ErrUnknownPivoting.
func (c Config) Validate() error {
	if _, err := gaussian.ParsePivoting(c.Pivoting); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Options validates c and converts it to solver options for T.
func Options[T any](c Config) ([]gaussian.Option[T], error) {
	p, err := gaussian.ParsePivoting(c.Pivoting)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return []gaussian.Option[T]{
		gaussian.WithPivoting[T](p),
		gaussian.WithLU[T](c.LU),
	}, nil
}
