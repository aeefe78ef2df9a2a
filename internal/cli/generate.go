package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandtinct/internal/brand"
	"github.com/jmylchreest/brandtinct/internal/export"
)

// generateOptions are the flags of the generate command.
type generateOptions struct {
	root *rootOptions

	dnaPath     string
	name        string
	personality *personalityValue
	industry    string
	seeds       seedsValue
	seedImage   string
	competitors []string

	rank        int
	formats     []string
	outputDir   string
	toStdout    bool
	dryRun      bool
	jsonOut     bool
	templateDir string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	o := &generateOptions{root: root, personality: newPersonalityValue()}

	defaultFormats := make([]string, len(root.config.Formats))
	for i, f := range root.config.Formats {
		defaultFormats[i] = string(f)
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate ranked palette variants and export a colour system",
		Long: `Generate up to six palette variants from a brand personality, rank them by
accessibility score and build the full colour system for the selected one.

The personality is five values from 0 to 100: temporal (heritage to futuristic),
energy (calm to dynamic), tone (serious to playful), market (accessible to
premium) and density (minimal to rich). Missing axes are neutral (50).

Inputs may come from flags, a brand DNA JSON file, or both; flags win.

Examples:
  # Neutral personality, report only
  brandtinct generate

  # Premium, modern finance brand with two seed colours
  brandtinct generate --personality 80,60,40,90,30 --industry finance \
    --seed 'Ocean=#0077be' --seed '#ff7f50'

  # Named axes, competitor check and CSS + Tailwind export of the best variant
  brandtinct generate --personality energy=85,market=20 \
    --competitor Spotify --format css,tailwind --output-dir ./theme

  # Brand DNA file, second-ranked variant, JSON to stdout
  brandtinct generate --dna brand.json --select 2 --format json --stdout

  # Seed colours from a mood board
  brandtinct generate --seed-image ./moodboard/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.dnaPath, "dna", "", "brand DNA JSON file")
	f.StringVar(&o.name, "name", "", "brand name used in exported files")
	f.Var(o.personality, "personality", "personality vector, positional (70,40,50,80,30) or named (energy=80,market=90)")
	f.StringVarP(&o.industry, "industry", "i", root.config.Industry, "industry for the conventional-hue variant")
	f.Var(&o.seeds, "seed", "seed colour as '#hex' or 'Name=#hex' (repeatable, first two are used)")
	f.StringVar(&o.seedImage, "seed-image", "", "mood-board image or directory to pick seed colours from")
	f.StringSliceVarP(&o.competitors, "competitor", "c", nil, "competitor brand names to check against")
	f.IntVarP(&o.rank, "select", "s", 1, "rank of the variant to build the colour system from")
	f.StringSliceVarP(&o.formats, "format", "f", defaultFormats, "export formats: json, css, tailwind, png")
	f.StringVarP(&o.outputDir, "output-dir", "o", ".", "directory for exported files")
	f.BoolVar(&o.toStdout, "stdout", false, "write text exports to stdout instead of files")
	f.BoolVar(&o.dryRun, "dry-run", false, "show which files would be written")
	f.BoolVar(&o.jsonOut, "json", false, "print the ranked variants as JSON instead of the report")
	f.StringVar(&o.templateDir, "template-dir", root.config.TemplateDir, "directory with template overrides (see 'templates dump')")

	return cmd
}

// buildDNA merges the DNA file with explicit flags. Flags win; a file
// industry beats the environment default.
func (o *generateOptions) buildDNA(cmd *cobra.Command) (brand.DNA, error) {
	var dna brand.DNA
	if o.dnaPath != "" {
		loaded, err := loadDNA(o.dnaPath)
		if err != nil {
			return brand.DNA{}, err
		}
		dna = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		dna.Name = o.name
	}
	if flags.Changed("personality") {
		dna.Personality = o.personality.vector[:]
	}
	if flags.Changed("industry") || (dna.Industry == "" && o.industry != "") {
		dna.Industry = o.industry
	}
	if len(o.seeds.seeds) > 0 {
		dna.SeedColors = o.seeds.seeds
	}
	if flags.Changed("competitor") {
		dna.Competitors = o.competitors
	}

	if o.seedImage != "" && len(dna.SeedColors) < brand.MaxSeedColors {
		clusters, err := extractImageClusters(o.seedImage, defaultSeedClusters, o.root.logger.Named("seeds"))
		if err != nil {
			return brand.DNA{}, fmt.Errorf("failed to read mood board: %w", err)
		}
		picked := brand.SeedsFromClusters(clusters, brand.MaxSeedColors-len(dna.SeedColors), moodBoardPrefix)
		dna.SeedColors = append(slices.Clone(dna.SeedColors), picked...)
	}

	if dna.Industry != "" && !brand.KnownIndustry(dna.Industry) {
		o.root.logger.Debug("unknown industry, using default hue", "industry", dna.Industry)
	}
	return dna, nil
}

func (o *generateOptions) resolveFormats() ([]export.Format, error) {
	var formats []export.Format
	for _, name := range o.formats {
		if strings.TrimSpace(name) == "" {
			continue
		}
		f, err := export.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	if o.toStdout && slices.Contains(formats, export.FormatPNG) {
		return nil, fmt.Errorf("png output cannot be written to stdout")
	}
	return formats, nil
}

func (o *generateOptions) run(cmd *cobra.Command) error {
	logger := o.root.logger
	out := cmd.OutOrStdout()

	formats, err := o.resolveFormats()
	if err != nil {
		return err
	}

	dna, err := o.buildDNA(cmd)
	if err != nil {
		return err
	}
	logger.Debug("brand dna", "personality", dna.Vector(), "industry", dna.Industry,
		"seeds", len(dna.SeedColors), "competitors", len(dna.Competitors))

	variants := brand.NewGenerator(logger.Named("variants")).Variants(dna)
	if o.rank < 1 || o.rank > len(variants) {
		return fmt.Errorf("--select %d out of range (1-%d)", o.rank, len(variants))
	}
	selected := variants[o.rank-1]
	sys := brand.BuildColorSystem(selected.Palette, dna)

	// Text exports on stdout replace the report.
	if !(o.toStdout && len(formats) > 0) {
		if o.jsonOut {
			if err := writeJSON(out, variants); err != nil {
				return err
			}
		} else {
			name := dna.Name
			if name == "" {
				name = "Brand"
			}
			st := newReportStyles(out, o.root.colourEnabled(out))
			printVariants(out, st, name, variants, o.rank-1)
			printSystem(out, st, selected.Label, sys)
		}
	}

	if len(formats) == 0 {
		return nil
	}

	exportOpts := export.Options{
		BrandName:   dna.Name,
		TemplateDir: o.templateDir,
		Logger:      logger.Named("export"),
	}
	for _, format := range formats {
		renderer, err := export.New(format, exportOpts)
		if err != nil {
			return err
		}
		files, err := renderer.Generate(&sys)
		if err != nil {
			return fmt.Errorf("%s export failed: %w", format, err)
		}

		for _, filename := range slices.Sorted(maps.Keys(files)) {
			content := files[filename]
			if o.toStdout {
				if _, err := out.Write(content); err != nil {
					return fmt.Errorf("failed to write %s: %w", filename, err)
				}
				continue
			}

			fullPath := filepath.Join(o.outputDir, filename)
			if o.dryRun {
				fmt.Fprintf(out, "  Would write: %s (%d bytes)\n", fullPath, len(content))
				continue
			}
			if err := writeFile(fullPath, content, cmd.ErrOrStderr()); err != nil {
				return fmt.Errorf("failed to write %s: %w", fullPath, err)
			}
			fmt.Fprintf(out, "  Wrote %s (%d bytes)\n", fullPath, len(content))
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeFile writes content to a file, creating directories as needed. An
// existing file is kept as <path>.backup.
func writeFile(path string, content []byte, stderr io.Writer) error {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		backupPath := path + ".backup"
		if err := os.Rename(path, backupPath); err != nil {
			fmt.Fprintf(stderr, "  Could not create backup: %v\n", err)
		} else {
			fmt.Fprintf(stderr, "  Created backup: %s\n", backupPath)
		}
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
