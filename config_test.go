// Configuration option tests.
//
// Config controls index construction: context length, block size, SA
// sample rate, checksum algorithm, delimiter and logger. Zero values select
// defaults, explicit values survive, and out-of-range values are refused
// before any work is done.
package sift

import (
	"errors"
	"log/slog"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg, err := Config{}.withDefaults()
	if err != nil {
		t.Fatalf("withDefaults: %v", err)
	}
	if cfg.ContextLen != DefaultContextLen {
		t.Errorf("ContextLen = %d, want %d", cfg.ContextLen, DefaultContextLen)
	}
	if cfg.BlockSize != DefaultBlockSize {
		t.Errorf("BlockSize = %d, want %d", cfg.BlockSize, DefaultBlockSize)
	}
	if cfg.SampleRate != DefaultSampleRate {
		t.Errorf("SampleRate = %d, want %d", cfg.SampleRate, DefaultSampleRate)
	}
	if cfg.Checksum != AlgXXHash3 {
		t.Errorf("Checksum = %d, want %d", cfg.Checksum, AlgXXHash3)
	}
	if cfg.Delimiter != RecordDelim {
		t.Errorf("Delimiter = %q, want %q", cfg.Delimiter, RecordDelim)
	}
	if cfg.Logger == nil {
		t.Error("Logger is nil")
	}
}

// TestConfigDefaultContextLen guards the documented default. Callers of
// New rely on it matching NewContext(..., 3).
func TestConfigDefaultContextLen(t *testing.T) {
	if DefaultContextLen != 3 {
		t.Errorf("DefaultContextLen = %d, want 3", DefaultContextLen)
	}
}

func TestConfigOverrides(t *testing.T) {
	logger := slog.Default()
	in := Config{
		ContextLen: 5,
		BlockSize:  128,
		SampleRate: 4,
		Checksum:   AlgBlake2b,
		Delimiter:  '|',
		Logger:     logger,
	}
	cfg, err := in.withDefaults()
	if err != nil {
		t.Fatalf("withDefaults: %v", err)
	}
	if cfg != in {
		t.Errorf("withDefaults changed explicit values: got %+v, want %+v", cfg, in)
	}
}

func TestConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative context", Config{ContextLen: -1}},
		{"negative block", Config{BlockSize: -4}},
		{"negative rate", Config{SampleRate: -2}},
		{"unknown checksum", Config{Checksum: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.withDefaults(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("withDefaults error = %v, want ErrInvalidConfig", err)
			}
			if _, err := Build([]byte(corpus), tt.cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Build error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfigEachVariant builds with every checksum and a range of block
// and context sizes and checks search still answers the same.
func TestConfigEachVariant(t *testing.T) {
	for _, alg := range algorithms {
		for _, block := range []int{1, 3, 16, 0} {
			for _, ctx := range []int{1, 2, 3, 8} {
				cfg := Config{Checksum: alg, BlockSize: block, ContextLen: ctx}
				r, err := Open([]byte(corpus), corpusOffsets, cfg)
				if err != nil {
					t.Fatalf("%+v: Open: %v", cfg, err)
				}
				n, err := r.MatchCount([]byte("foo"))
				if err != nil {
					t.Fatalf("%+v: MatchCount: %v", cfg, err)
				}
				if n != 2 {
					t.Errorf("%+v: MatchCount = %d, want 2", cfg, n)
				}
			}
		}
	}
}
