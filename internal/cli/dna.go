package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jmylchreest/brandtinct/internal/brand"
	"github.com/jmylchreest/brandtinct/internal/colour"
	"github.com/jmylchreest/brandtinct/internal/security"
)

// loadDNA reads a brand DNA JSON document. Unknown fields are rejected so
// typos surface instead of silently falling back to defaults.
func loadDNA(path string) (brand.DNA, error) {
	f, err := os.Open(path) // #nosec G304 - user supplied DNA file
	if err != nil {
		return brand.DNA{}, fmt.Errorf("failed to read brand DNA: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(security.NewLimitedReader(f, security.MaxDNABytes))
	if err != nil {
		return brand.DNA{}, fmt.Errorf("failed to read brand DNA %s: %w", path, err)
	}

	var dna brand.DNA
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dna); err != nil {
		return brand.DNA{}, fmt.Errorf("failed to parse brand DNA %s: %w", path, err)
	}

	if err := validateDNA(dna); err != nil {
		return brand.DNA{}, fmt.Errorf("invalid brand DNA %s: %w", path, err)
	}
	return dna, nil
}

// validateDNA applies the strict checks the engine itself tolerates.
func validateDNA(dna brand.DNA) error {
	if len(dna.Personality) > len(brand.PersonalityVector{}) {
		return fmt.Errorf("personality has %d values, at most %d axes", len(dna.Personality), len(brand.PersonalityVector{}))
	}
	for i, v := range dna.Personality {
		if math.IsNaN(v) || v < 0 || v > 100 {
			return fmt.Errorf("personality axis %d is %v, want [0,100]", i, v)
		}
	}
	for i, seed := range dna.SeedColors {
		if _, err := colour.ParseHex(seed.Hex); err != nil {
			return fmt.Errorf("seed colour %d: %w", i+1, err)
		}
	}
	return nil
}
