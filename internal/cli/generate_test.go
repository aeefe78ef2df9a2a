// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/brandtinct/internal/brand"
	"github.com/jmylchreest/brandtinct/internal/cli"
)

// runCmd executes a fresh command tree and returns stdout and stderr.
func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, env := range []string{cli.EnvIndustry, cli.EnvFormat, cli.EnvNoColour, cli.EnvTemplateDir} {
		t.Setenv(env, "")
	}

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, stderr, err := runCmd(t, args...)
	if err != nil {
		t.Fatalf("%v: unexpected error: %v\nstderr: %s", args, err, stderr)
	}
	return out
}

func TestGenerateReport(t *testing.T) {
	out := mustRun(t, "generate", "--name", "Acme")

	for _, want := range []string{"Acme", "Personality Core", "Industry Standard", "Selected:", "Ramps", "Dark mode", "Semantic"} {
		if !strings.Contains(out, want) {
			t.Errorf("generate output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("generate output contains ANSI escapes when not writing to a terminal")
	}
}

func TestGenerateJSON(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantCount int
		wantLabel string
	}{
		{"neutral", nil, 4, "Industry Standard"},
		{"with seeds", []string{"--seed", "Ocean=#0077be", "--seed", "#ff7f50"}, 6, "Ocean Inspired"},
		{"named personality", []string{"--personality", "energy=90,density=80"}, 4, "Triadic Bold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustRun(t, append([]string{"generate", "--json"}, tt.args...)...)

			var variants []brand.PaletteVariant
			if err := json.Unmarshal([]byte(out), &variants); err != nil {
				t.Fatalf("generate --json output is not JSON: %v", err)
			}
			if len(variants) != tt.wantCount {
				t.Errorf("len(variants) = %d, want %d", len(variants), tt.wantCount)
			}

			found := false
			for i, v := range variants {
				if v.Label == tt.wantLabel {
					found = true
				}
				if i > 0 && v.Score > variants[i-1].Score {
					t.Errorf("variants not ranked: %d after %d", v.Score, variants[i-1].Score)
				}
			}
			if !found {
				t.Errorf("variant %q missing", tt.wantLabel)
			}
		})
	}
}

func TestGenerateDNAFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brand.json")
	doc := `{"name": "Clinic", "personality": [30, 20, 20, 60, 20], "industry": "healthcare"}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	out := mustRun(t, "generate", "--dna", path, "--json")
	var variants []brand.PaletteVariant
	if err := json.Unmarshal([]byte(out), &variants); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	for _, v := range variants {
		if v.Label == "Industry Standard" && v.Seed.H != 190 {
			t.Errorf("Industry Standard seed hue = %v, want 190", v.Seed.H)
		}
	}

	t.Run("flag overrides file industry", func(t *testing.T) {
		out := mustRun(t, "generate", "--dna", path, "--industry", "technology", "--json")
		if err := json.Unmarshal([]byte(out), &variants); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		for _, v := range variants {
			if v.Label == "Industry Standard" && v.Seed.H == 190 {
				t.Error("Industry Standard still uses the file industry")
			}
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(bad, []byte(`{"personalty": [1]}`), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, _, err := runCmd(t, "generate", "--dna", bad); err == nil {
			t.Error("expected an error for an unknown DNA field")
		}
	})

	t.Run("bad seed", func(t *testing.T) {
		bad := filepath.Join(dir, "seed.json")
		if err := os.WriteFile(bad, []byte(`{"seed_colors": [{"name": "x", "hex": "blue"}]}`), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, _, err := runCmd(t, "generate", "--dna", bad); err == nil {
			t.Error("expected an error for an invalid seed colour")
		}
	})
}

func TestGenerateExport(t *testing.T) {
	t.Run("css to stdout", func(t *testing.T) {
		out := mustRun(t, "generate", "--format", "css", "--stdout")
		if !strings.Contains(out, ":root {") {
			t.Errorf("stdout export missing :root block\n%s", out)
		}
		if strings.Contains(out, "Selected:") {
			t.Error("stdout export should replace the report")
		}
	})

	t.Run("dry run", func(t *testing.T) {
		dir := t.TempDir()
		out := mustRun(t, "generate", "--format", "json,css", "--output-dir", dir, "--dry-run")
		for _, name := range []string{"colors.json", "brand.css"} {
			path := filepath.Join(dir, name)
			if !strings.Contains(out, "Would write: "+path) {
				t.Errorf("dry run output missing %s\n%s", path, out)
			}
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Errorf("dry run wrote %s", path)
			}
		}
	})

	t.Run("writes files", func(t *testing.T) {
		dir := t.TempDir()
		out := mustRun(t, "generate", "-f", "json,tailwind,png", "-o", dir, "--select", "2")
		for _, name := range []string{"colors.json", "tailwind.config.js", "swatches.png"} {
			if !strings.Contains(out, "Wrote "+filepath.Join(dir, name)) {
				t.Errorf("output missing Wrote line for %s", name)
			}
		}

		data, err := os.ReadFile(filepath.Join(dir, "colors.json"))
		if err != nil {
			t.Fatal(err)
		}
		var sys brand.ColorSystem
		if err := json.Unmarshal(data, &sys); err != nil {
			t.Fatalf("colors.json is not a colour system: %v", err)
		}
		if len(sys.Specifications) != 12 {
			t.Errorf("len(Specifications) = %d, want 12", len(sys.Specifications))
		}
	})

	t.Run("existing file is backed up", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "brand.css")
		if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, stderr, err := runCmd(t, "generate", "-f", "css", "-o", dir)
		if err != nil {
			t.Fatal(err)
		}
		backup, err := os.ReadFile(path + ".backup")
		if err != nil || string(backup) != "old" {
			t.Errorf("backup = %q, %v, want old", backup, err)
		}
		if !strings.Contains(stderr, "Created backup") {
			t.Errorf("stderr = %q, want backup notice", stderr)
		}
	})
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"select out of range", []string{"--select", "9"}},
		{"select zero", []string{"--select", "0"}},
		{"unknown format", []string{"--format", "scss"}},
		{"png to stdout", []string{"--format", "png", "--stdout"}},
		{"too many axes", []string{"--personality", "1,2,3,4,5,6"}},
		{"axis out of range", []string{"--personality", "101"}},
		{"NaN axis", []string{"--personality", "50,NaN,50,50,50"}},
		{"unknown axis", []string{"--personality", "mood=3"}},
		{"bad seed", []string{"--seed", "#12345"}},
		{"missing dna", []string{"--dna", "does-not-exist.json"}},
		{"positional args", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runCmd(t, append([]string{"generate"}, tt.args...)...); err == nil {
				t.Errorf("generate %v: expected an error", tt.args)
			}
		})
	}
}

func TestGenerateEnvDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(cli.EnvFormat, "css")

	var outBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&outBuf)
	rootCmd.SetArgs([]string{"generate", "-o", dir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "brand.css")); err != nil {
		t.Errorf("BRANDTINCT_FORMAT=css did not write brand.css: %v", err)
	}
}

func TestContrastCommand(t *testing.T) {
	t.Run("report", func(t *testing.T) {
		out := mustRun(t, "contrast", "#777777", "#FFFFFF")
		for _, want := range []string{"#777777", "#ffffff", "4.48:1", "AA normal text   fail", "AA large text    pass"} {
			if !strings.Contains(out, want) {
				t.Errorf("contrast output missing %q\n%s", want, out)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		out := mustRun(t, "contrast", "000", "fff", "--json")
		var got brand.ContrastResult
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatal(err)
		}
		want := brand.ContrastResult{Ratio: 21, AA: true, AAA: true, AALarge: true}
		if got != want {
			t.Errorf("contrast --json = %+v, want %+v", got, want)
		}
	})

	t.Run("fix", func(t *testing.T) {
		out := mustRun(t, "contrast", "#777777", "#ffffff", "--fix", "--json")
		var got struct {
			Original  string               `json:"original"`
			Corrected string               `json:"corrected"`
			Result    brand.ContrastResult `json:"result"`
		}
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatal(err)
		}
		if got.Original != "#777777" || got.Corrected == got.Original {
			t.Errorf("contrast --fix = %+v, want a corrected colour", got)
		}
		if !got.Result.AA {
			t.Errorf("corrected ratio %.2f does not pass AA", got.Result.Ratio)
		}
	})

	for _, args := range [][]string{
		{"contrast", "#fff"},
		{"contrast", "white", "#000"},
		{"contrast", "#fff", "#000", "--fix", "--target", "30"},
	} {
		if _, _, err := runCmd(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestCVDCommand(t *testing.T) {
	out := mustRun(t, "cvd", "#d62828", "#2a9d8f", "#e9c46a")
	for _, want := range []string{"normal", "protanopia", "deuteranopia", "tritanopia"} {
		if !strings.Contains(out, want) {
			t.Errorf("cvd output missing %q\n%s", want, out)
		}
	}

	out = mustRun(t, "cvd", "#d62828", "#2a9d8f", "#e9c46a", "--json")
	var got brand.CVDResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if got.Safe != (len(got.FlaggedPairs) == 0) {
		t.Errorf("Safe = %v with %d flagged pairs", got.Safe, len(got.FlaggedPairs))
	}

	if _, _, err := runCmd(t, "cvd", "#d62828", "#2a9d8f"); err == nil {
		t.Error("expected an error for two colours")
	}
}

func TestCompetitorCommand(t *testing.T) {
	t.Run("collision", func(t *testing.T) {
		out := mustRun(t, "competitor", "#1DB954", "spotify")
		if !strings.Contains(out, "collision:") || !strings.Contains(out, "Spotify") {
			t.Errorf("competitor output missing Spotify collision\n%s", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		out := mustRun(t, "competitor", "#1db954", "Spotify", "NoSuchBrand", "--json")
		var got brand.CompetitorResult
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatal(err)
		}
		if !got.TooSimilar || got.Flags[0].Brand != "Spotify" || got.Flags[0].Distance != 0 {
			t.Errorf("competitor --json = %+v, want an exact Spotify match first", got)
		}
	})

	t.Run("list", func(t *testing.T) {
		text := mustRun(t, "competitor", "--list")
		if !strings.Contains(text, fmt.Sprintf("%d known brand colours", brand.KnownBrandCount())) {
			t.Errorf("competitor --list missing the brand count\n%s", text)
		}

		out := mustRun(t, "competitor", "--list", "--json")
		var brands []brand.NamedColor
		if err := json.Unmarshal([]byte(out), &brands); err != nil {
			t.Fatal(err)
		}
		if len(brands) != brand.KnownBrandCount() {
			t.Errorf("len(brands) = %d, want %d", len(brands), brand.KnownBrandCount())
		}
	})

	if _, _, err := runCmd(t, "competitor"); err == nil {
		t.Error("expected an error without a colour")
	}
	if _, _, err := runCmd(t, "competitor", "--list", "#fff"); err == nil {
		t.Error("expected an error for --list with arguments")
	}
}

func writeMoodBoard(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	red := color.RGBA{R: 0xc8, G: 0x1e, B: 0x3c, A: 0xff}
	blue := color.RGBA{R: 0x14, G: 0x5a, B: 0xb4, A: 0xff}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if x < 30 {
				img.Set(x, y, red)
			} else {
				img.Set(x, y, blue)
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestSeedsCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.png")
	writeMoodBoard(t, path)

	out := mustRun(t, "seeds", path)
	for _, want := range []string{"75.0%", "--seed 'Mood Board 1=#c81e3c'", "--seed 'Mood Board 2=#145ab4'"} {
		if !strings.Contains(out, want) {
			t.Errorf("seeds output missing %q\n%s", want, out)
		}
	}

	t.Run("generate from mood board", func(t *testing.T) {
		out := mustRun(t, "generate", "--seed-image", dir, "--json")
		if !strings.Contains(out, "Mood Board 1 Inspired") {
			t.Errorf("generate --seed-image missing mood board variant\n%s", out)
		}
	})

	if _, _, err := runCmd(t, "seeds", filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected an error for a missing image")
	}
}

func TestTemplatesCommand(t *testing.T) {
	out := mustRun(t, "templates", "list")
	for _, want := range []string{"brand.css.tmpl", "tailwind.config.js.tmpl"} {
		if !strings.Contains(out, want) {
			t.Errorf("templates list missing %q", want)
		}
	}

	dir := filepath.Join(t.TempDir(), "tmpl")
	mustRun(t, "templates", "dump", "--dir", dir)
	if _, err := os.Stat(filepath.Join(dir, "brand.css.tmpl")); err != nil {
		t.Fatalf("dump did not write brand.css.tmpl: %v", err)
	}
	if _, _, err := runCmd(t, "templates", "dump", "--dir", dir); err == nil {
		t.Error("expected an error when templates already exist")
	}
	mustRun(t, "templates", "dump", "--dir", dir, "--force")

	custom := "/* custom {{ .Brand }} */\n"
	if err := os.WriteFile(filepath.Join(dir, "brand.css.tmpl"), []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}
	out = mustRun(t, "generate", "--name", "Acme", "-f", "css", "--stdout", "--template-dir", dir)
	if out != "/* custom Acme */\n" {
		t.Errorf("generate with template override = %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out := mustRun(t, "version")
	if !strings.HasPrefix(out, "brandtinct version ") {
		t.Errorf("version output = %q", out)
	}
}
