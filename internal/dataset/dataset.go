// Package dataset loads an evaluation split: ground-truth labels and the
// positive-class probabilities a classifier produced for them.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/cutoff/internal/curve"
)

// Split is an evaluation split with index-aligned labels and scores.
type Split struct {
	Labels []int     `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Validate checks that the split can be handed to a threshold search.
func (s Split) Validate() error {
	return curve.Validate(s.Labels, s.Scores)
}

// Len returns the number of samples.
func (s Split) Len() int {
	return len(s.Labels)
}

// Positives returns the number of samples labelled 1.
func (s Split) Positives() int {
	positives, _ := curve.CountClasses(s.Labels)
	return positives
}

// Decode reads a JSON split from r and validates it.
func Decode(r io.Reader) (Split, error) {
	var split Split
	if err := sonic.ConfigDefault.NewDecoder(r).Decode(&split); err != nil {
		return Split{}, fmt.Errorf("decode split: %w", err)
	}
	if err := split.Validate(); err != nil {
		return Split{}, fmt.Errorf("invalid split: %w", err)
	}
	return split, nil
}

// Load reads a JSON split from path. Files ending in .gz or .zst are
// decompressed first.
func Load(path string) (Split, error) {
	f, err := os.Open(path)
	if err != nil {
		return Split{}, fmt.Errorf("open split: %w", err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return Split{}, fmt.Errorf("gzip: failed to create reader: %w", err)
		}
		defer gz.Close()
		r = gz
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return Split{}, fmt.Errorf("zstd: failed to create reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	split, err := Decode(r)
	if err != nil {
		return Split{}, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("samples", split.Len()).
		Int("positives", split.Positives()).
		Msg("loaded evaluation split")
	return split, nil
}
