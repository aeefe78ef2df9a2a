package brand

import (
	"testing"

	"github.com/jmylchreest/brandtinct/internal/colour"
)

func TestCheckContrastPair(t *testing.T) {
	tests := []struct {
		name string
		fg   string
		bg   string
		want ContrastResult
	}{
		{
			name: "black on white",
			fg:   "#000000", bg: "#ffffff",
			want: ContrastResult{Ratio: 21, AA: true, AAA: true, AALarge: true},
		},
		{
			name: "grey just under AA",
			fg:   "#777777", bg: "#ffffff",
			want: ContrastResult{Ratio: 4.48, AA: false, AAA: false, AALarge: true},
		},
		{
			name: "rounds to 4.5 but fails AA",
			fg:   "#6363f8", bg: "#ffffff",
			want: ContrastResult{Ratio: 4.5, AA: false, AAA: false, AALarge: true},
		},
		{
			name: "identical colours",
			fg:   "#3366cc", bg: "#3366cc",
			want: ContrastResult{Ratio: 1},
		},
		{
			name: "invalid input is black",
			fg:   "oops", bg: "#ffffff",
			want: ContrastResult{Ratio: 21, AA: true, AAA: true, AALarge: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckContrastPair(tt.fg, tt.bg); got != tt.want {
				t.Errorf("CheckContrastPair(%s, %s) = %+v, want %+v", tt.fg, tt.bg, got, tt.want)
			}
			if got := CheckContrastPair(tt.bg, tt.fg); got != tt.want {
				t.Errorf("CheckContrastPair(%s, %s) = %+v, want %+v (swapped)", tt.bg, tt.fg, got, tt.want)
			}
		})
	}
}

func TestBuildContrastMatrix(t *testing.T) {
	named := []NamedColor{
		{Name: "black", Hex: "#000000"},
		{Name: "white", Hex: "#ffffff"},
		{Name: "grey", Hex: "#777777"},
	}
	m := BuildContrastMatrix(named)

	if len(m.Names) != 3 || len(m.Ratios) != 3 {
		t.Fatalf("matrix size = %d/%d, want 3", len(m.Names), len(m.Ratios))
	}
	for i := range m.Ratios {
		if m.Ratios[i][i] != 1 {
			t.Errorf("Ratios[%d][%d] = %v, want 1", i, i, m.Ratios[i][i])
		}
		for j := range m.Ratios {
			if m.Ratios[i][j] != m.Ratios[j][i] {
				t.Errorf("matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}
	if r, ok := m.Ratio("black", "white"); !ok || r != 21 {
		t.Errorf("Ratio(black, white) = %v, %v, want 21, true", r, ok)
	}
	if _, ok := m.Ratio("black", "missing"); ok {
		t.Error("Ratio() with an unknown name should report false")
	}
}

func TestWCAGPairs(t *testing.T) {
	m := BuildContrastMatrix([]NamedColor{
		{Name: "black", Hex: "#000000"},
		{Name: "white", Hex: "#ffffff"},
		{Name: "grey", Hex: "#777777"},
	})
	aa, aaa := WCAGPairs(m)

	// black/white 21, black/grey 4.69, white/grey 4.48.
	wantAA := []ColorPair{
		{A: "black", B: "white", Ratio: 21},
		{A: "black", B: "grey", Ratio: 4.69},
	}
	if len(aa) != len(wantAA) {
		t.Fatalf("len(aa) = %d, want %d: %+v", len(aa), len(wantAA), aa)
	}
	for i := range wantAA {
		if aa[i] != wantAA[i] {
			t.Errorf("aa[%d] = %+v, want %+v", i, aa[i], wantAA[i])
		}
	}
	if len(aaa) != 1 || aaa[0].A != "black" || aaa[0].B != "white" {
		t.Errorf("aaa = %+v, want only black/white", aaa)
	}
}

func TestWCAGPairsUseExactRatio(t *testing.T) {
	m := BuildContrastMatrix([]NamedColor{
		{Name: "white", Hex: "#ffffff"},
		{Name: "blue", Hex: "#6363f8"},
	})
	if r, _ := m.Ratio("white", "blue"); r != 4.5 {
		t.Errorf("Ratio(white, blue) = %v, want 4.5", r)
	}

	aa, aaa := WCAGPairs(m)
	if len(aa) != 0 || len(aaa) != 0 {
		t.Errorf("WCAGPairs() = %+v, %+v, want no pairs below 4.5 before rounding", aa, aaa)
	}

	// A matrix without exact ratios, as decoded from JSON, uses the
	// rounded values.
	decoded := ContrastMatrix{Names: m.Names, Ratios: m.Ratios}
	if aa, _ := WCAGPairs(decoded); len(aa) != 1 {
		t.Errorf("WCAGPairs(decoded) = %+v, want the rounded pair", aa)
	}
}

func TestWCAGPairsEmpty(t *testing.T) {
	aa, aaa := WCAGPairs(BuildContrastMatrix(nil))
	if aa == nil || aaa == nil || len(aa) != 0 || len(aaa) != 0 {
		t.Errorf("WCAGPairs(empty) = %v, %v, want empty non-nil slices", aa, aaa)
	}
}

func TestAutoCorrectForContrast(t *testing.T) {
	t.Run("already passing is unchanged", func(t *testing.T) {
		got, steps, met := autoCorrect("#000000", "#ffffff", colour.ContrastAA)
		if got != "#000000" || steps != 0 || !met {
			t.Errorf("autoCorrect() = %s, %d, %v, want #000000, 0, true", got, steps, met)
		}
	})

	t.Run("darkens on a light background", func(t *testing.T) {
		got, steps, met := autoCorrect("#777777", "#ffffff", colour.ContrastAA)
		if !met {
			t.Fatalf("autoCorrect() did not reach AA after %d steps (got %s)", steps, got)
		}
		if r := colour.ContrastRatio(got, "#ffffff"); r < colour.ContrastAA {
			t.Errorf("contrast = %.2f, want >= 4.5", r)
		}
		if colour.RelativeLuminance(got) >= colour.RelativeLuminance("#777777") {
			t.Errorf("autoCorrect() = %s, want darker than #777777", got)
		}
	})

	t.Run("lightens on a dark background", func(t *testing.T) {
		got, _, met := autoCorrect("#333366", "#000000", colour.ContrastAA)
		if !met {
			t.Fatalf("autoCorrect() = %s, want target met", got)
		}
		if colour.RelativeLuminance(got) <= colour.RelativeLuminance("#333366") {
			t.Errorf("autoCorrect() = %s, want lighter than #333366", got)
		}
	})

	t.Run("unreachable target exhausts the bound", func(t *testing.T) {
		got, steps, met := autoCorrect("#808080", "#808080", colour.ContrastAA)
		if met {
			t.Fatalf("autoCorrect() met an unreachable target with %s", got)
		}
		if steps != autoCorrectMaxIterations {
			t.Errorf("steps = %d, want %d", steps, autoCorrectMaxIterations)
		}
		if colour.ContrastRatio(got, "#808080") <= 1 {
			t.Errorf("best attempt %s should improve on the input", got)
		}
	})

	t.Run("result passes or the loop ran to its bound", func(t *testing.T) {
		for _, fg := range []string{"#ffcc00", "#66ccff", "#ff6666", "#999999", "#4285f4"} {
			got, steps, _ := autoCorrect(fg, "#ffffff", colour.ContrastAA)
			if colour.ContrastRatio(got, "#ffffff") < colour.ContrastAA && steps != autoCorrectMaxIterations {
				t.Errorf("autoCorrect(%s) = %s after %d steps: neither passing nor exhausted", fg, got, steps)
			}
			if AutoCorrectForContrast(fg, "#ffffff", colour.ContrastAA) != got {
				t.Errorf("AutoCorrectForContrast(%s) disagrees with autoCorrect", fg)
			}
		}
	})
}
