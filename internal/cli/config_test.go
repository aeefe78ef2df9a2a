package cli

import (
	"slices"
	"testing"

	"github.com/jmylchreest/brandtinct/internal/export"
)

func TestConfigBuilder(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "empty environment",
			want: Config{},
		},
		{
			name: "all set",
			env: map[string]string{
				EnvIndustry:    " finance ",
				EnvFormat:      "CSS, tailwind",
				EnvNoColour:    "true",
				EnvTemplateDir: "/tmp/templates",
			},
			want: Config{
				Industry:    "finance",
				Formats:     []export.Format{export.FormatCSS, export.FormatTailwind},
				NoColour:    true,
				TemplateDir: "/tmp/templates",
			},
		},
		{
			name: "invalid values ignored",
			env: map[string]string{
				EnvFormat:   "scss,json",
				EnvNoColour: "maybe",
			},
			want: Config{Formats: []export.Format{export.FormatJSON}},
		},
		{
			name: "only invalid formats",
			env:  map[string]string{EnvFormat: "scss"},
			want: Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewConfigBuilder().
				WithEnvLookup(func(k string) string { return tt.env[k] }).
				WithEnvConfig().
				Build()

			if got.Industry != tt.want.Industry {
				t.Errorf("Industry = %q, want %q", got.Industry, tt.want.Industry)
			}
			if !slices.Equal(got.Formats, tt.want.Formats) {
				t.Errorf("Formats = %v, want %v", got.Formats, tt.want.Formats)
			}
			if got.NoColour != tt.want.NoColour {
				t.Errorf("NoColour = %v, want %v", got.NoColour, tt.want.NoColour)
			}
			if got.TemplateDir != tt.want.TemplateDir {
				t.Errorf("TemplateDir = %q, want %q", got.TemplateDir, tt.want.TemplateDir)
			}
		})
	}
}

func TestConfigBuilderWithoutEnv(t *testing.T) {
	got := NewConfigBuilder().
		WithEnvLookup(func(string) string { return "finance" }).
		Build()
	if got.Industry != "" {
		t.Errorf("Industry = %q, want empty without WithEnvConfig", got.Industry)
	}
}
