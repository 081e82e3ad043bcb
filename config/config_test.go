// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gauss/config"
	"github.com/katalvlaran/gauss/gaussian"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.Equal(t, "partial", c.Pivoting)
	require.False(t, c.LU)
	require.NoError(t, c.Validate())
}

func TestLoad(t *testing.T) {
	c, err := config.Load(strings.NewReader("pivoting: avoid zero\nlu: true\n"))
	require.NoError(t, err)
	require.Equal(t, config.Config{Pivoting: "avoid zero", LU: true}, c)
}

func TestLoad_EmptyDocumentKeepsDefaults(t *testing.T) {
	c, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)

	c, err = config.Load(strings.NewReader("lu: true\n"))
	require.NoError(t, err)
	require.Equal(t, "partial", c.Pivoting)
	require.True(t, c.LU)
}

func TestLoadOnto_KeepsBaseForMissingKeys(t *testing.T) {
	base := config.Config{Pivoting: "none", LU: true}

	c, err := config.LoadOnto(base, strings.NewReader("pivoting: scaled\n"))
	require.NoError(t, err)
	require.Equal(t, config.Config{Pivoting: "scaled", LU: true}, c)

	c, err = config.LoadOnto(base, strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, base, c)

	path := filepath.Join(t.TempDir(), "gauss.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lu: false\n"), 0o600))
	c, err = config.LoadFileOnto(base, path)
	require.NoError(t, err)
	require.Equal(t, config.Config{Pivoting: "none", LU: false}, c)
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := config.Load(strings.NewReader("pivoting: none\nzero: 0\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode yaml")
}

func TestLoad_UnknownPivoting(t *testing.T) {
	_, err := config.Load(strings.NewReader("pivoting: rook\n"))
	require.ErrorIs(t, err, gaussian.ErrUnknownPivoting)
	require.ErrorIs(t, err, gaussian.ErrConfiguration)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gauss.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pivoting: complete\n"), 0o600))

	c, err := config.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "complete", c.Pivoting)

	_, err = config.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("pivoting: [\n"), 0o600))
	_, err = config.LoadFile(bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), bad)
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"GAUSS_PIVOTING", "GAUSS_LU"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
		c, err := config.FromEnv()
		require.NoError(t, err)
		require.Equal(t, config.Default(), c)
	})

	t.Run("values", func(t *testing.T) {
		t.Setenv("GAUSS_PIVOTING", "scaled")
		t.Setenv("GAUSS_LU", "true")
		c, err := config.FromEnv()
		require.NoError(t, err)
		require.Equal(t, config.Config{Pivoting: "scaled", LU: true}, c)
	})

	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("GAUSS_LU", "maybe")
		_, err := config.FromEnv()
		require.Error(t, err)
		require.Contains(t, err.Error(), "parse env:")
	})

	t.Run("bad pivoting", func(t *testing.T) {
		t.Setenv("GAUSS_PIVOTING", "diagonal")
		_, err := config.FromEnv()
		require.ErrorIs(t, err, gaussian.ErrUnknownPivoting)
	})
}

func TestOptions(t *testing.T) {
	opts, err := config.Options[float64](config.Config{Pivoting: "complete", LU: true})
	require.NoError(t, err)

	s, err := gaussian.New[float64](floatField{}, opts...)
	require.NoError(t, err)
	require.Equal(t, gaussian.PivotComplete, s.Pivoting())
	require.True(t, s.LU())

	_, err = config.Options[float64](config.Config{Pivoting: "unknown"})
	require.ErrorIs(t, err, gaussian.ErrUnknownPivoting)
}

type floatField struct{}

func (floatField) Sub(a, b float64) float64 { return a - b }
func (floatField) Mul(a, b float64) float64 { return a * b }
func (floatField) Div(a, b float64) float64 { return a / b }
func (floatField) IsZero(a float64) bool    { return a == 0 }
func (floatField) Abs(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}
func (floatField) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
