package export

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/brandtinct/internal/brand"
)

// JSONRenderer writes the full colour system as indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Name() string { return string(FormatJSON) }

func (r *JSONRenderer) Description() string {
	return "Complete colour system document (colors.json)"
}

// Generate marshals the colour system.
func (r *JSONRenderer) Generate(sys *brand.ColorSystem) (map[string][]byte, error) {
	if sys == nil {
		return nil, fmt.Errorf("colour system cannot be nil")
	}

	data, err := json.MarshalIndent(sys, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal colour system: %w", err)
	}
	return map[string][]byte{"colors.json": append(data, '\n')}, nil
}
