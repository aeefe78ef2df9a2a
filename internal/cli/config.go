package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/jmylchreest/brandtinct/internal/export"
)

// Environment variables that provide command defaults. Flags win.
const (
	EnvIndustry    = "BRANDTINCT_INDUSTRY"
	EnvFormat      = "BRANDTINCT_FORMAT"
	EnvNoColour    = "BRANDTINCT_NO_COLOUR"
	EnvTemplateDir = "BRANDTINCT_TEMPLATE_DIR"
)

// Config holds command defaults.
type Config struct {
	Industry    string
	Formats     []export.Format
	NoColour    bool
	TemplateDir string
}

// ConfigBuilder assembles a Config from defaults and the environment.
type ConfigBuilder struct {
	config Config
	useEnv bool
	getenv func(string) string
}

// NewConfigBuilder starts from the built-in defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{getenv: os.Getenv}
}

// WithEnvConfig loads defaults from BRANDTINCT_* environment variables.
func (b *ConfigBuilder) WithEnvConfig() *ConfigBuilder {
	b.useEnv = true
	return b
}

// WithEnvLookup replaces os.Getenv, for tests.
func (b *ConfigBuilder) WithEnvLookup(getenv func(string) string) *ConfigBuilder {
	b.getenv = getenv
	return b
}

// Build returns the configuration. Unparsable environment values are
// ignored and the default kept.
func (b *ConfigBuilder) Build() Config {
	config := b.config
	if !b.useEnv {
		return config
	}

	if industry := strings.TrimSpace(b.getenv(EnvIndustry)); industry != "" {
		config.Industry = industry
	}

	if formats := b.getenv(EnvFormat); formats != "" {
		var parsed []export.Format
		for _, name := range strings.Split(formats, ",") {
			if f, err := export.ParseFormat(name); err == nil {
				parsed = append(parsed, f)
			}
		}
		if len(parsed) > 0 {
			config.Formats = parsed
		}
	}

	if v := b.getenv(EnvNoColour); v != "" {
		if noColour, err := strconv.ParseBool(v); err == nil {
			config.NoColour = noColour
		}
	}

	if dir := strings.TrimSpace(b.getenv(EnvTemplateDir)); dir != "" {
		config.TemplateDir = dir
	}

	return config
}
