package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/brandtinct/internal/brand"
	"github.com/jmylchreest/brandtinct/internal/colour"
)

// axisNames maps flag keys to personality axes.
var axisNames = map[string]int{
	"temporal": brand.AxisTemporal,
	"energy":   brand.AxisEnergy,
	"tone":     brand.AxisTone,
	"market":   brand.AxisMarket,
	"density":  brand.AxisDensity,
}

// personalityValue is a pflag.Value for the five-axis personality.
// It accepts positional values ("70,40,50,80,30") or named axes
// ("energy=80,market=90"); unspecified axes stay neutral.
type personalityValue struct {
	vector brand.PersonalityVector
	set    bool
}

var _ pflag.Value = (*personalityValue)(nil)

func newPersonalityValue() *personalityValue {
	return &personalityValue{vector: brand.DefaultPersonality()}
}

func (p *personalityValue) String() string {
	parts := make([]string, len(p.vector))
	for i, v := range p.vector {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (p *personalityValue) Set(s string) error {
	v := brand.DefaultPersonality()
	fields := strings.Split(s, ",")
	if len(fields) > len(v) {
		return fmt.Errorf("personality has %d values, at most %d axes", len(fields), len(v))
	}

	for i, field := range fields {
		field = strings.TrimSpace(field)
		axis := i
		if key, value, ok := strings.Cut(field, "="); ok {
			a, known := axisNames[strings.ToLower(strings.TrimSpace(key))]
			if !known {
				return fmt.Errorf("unknown personality axis %q (temporal, energy, tone, market, density)", key)
			}
			axis, field = a, strings.TrimSpace(value)
		}

		n, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("invalid personality value %q: %w", field, err)
		}
		if math.IsNaN(n) || n < 0 || n > 100 {
			return fmt.Errorf("personality value %v out of range [0,100]", n)
		}
		v[axis] = n
	}

	p.vector = v
	p.set = true
	return nil
}

func (p *personalityValue) Type() string {
	return "vector"
}

// seedsValue is a repeatable pflag.Value collecting seed colours given as
// "#hex" or "Name=#hex".
type seedsValue struct {
	seeds []brand.SeedColor
}

var _ pflag.Value = (*seedsValue)(nil)

func (s *seedsValue) String() string {
	parts := make([]string, len(s.seeds))
	for i, seed := range s.seeds {
		if seed.Name != "" {
			parts[i] = seed.Name + "=" + seed.Hex
		} else {
			parts[i] = seed.Hex
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (s *seedsValue) Set(v string) error {
	name, hex, ok := strings.Cut(v, "=")
	if !ok {
		name, hex = "", v
	}
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return err
	}
	s.seeds = append(s.seeds, brand.SeedColor{Name: strings.TrimSpace(name), Hex: rgb.Hex()})
	return nil
}

func (s *seedsValue) Type() string {
	return "seed"
}
