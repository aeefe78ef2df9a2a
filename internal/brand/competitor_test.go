package brand

import "testing"

func TestCheckCompetitorDiffExactMatch(t *testing.T) {
	got := CheckCompetitorDiff("#4285F4", []string{"Google"})
	if !got.TooSimilar {
		t.Fatal("CheckCompetitorDiff() should flag Google's own blue")
	}
	first := got.Flags[0]
	if first.Brand != "Google" || first.Color != "#4285f4" || first.Distance > 0.01 {
		t.Errorf("Flags[0] = %+v, want Google at distance ~0", first)
	}
}

func TestCheckCompetitorDiffNoDuplicates(t *testing.T) {
	got := CheckCompetitorDiff("#4285f4", []string{"google", "GOOGLE", " Google "})
	seen := make(map[string]bool)
	for _, f := range got.Flags {
		if seen[f.Brand] {
			t.Errorf("brand %s flagged twice", f.Brand)
		}
		seen[f.Brand] = true
	}
	if !seen["Google"] {
		t.Errorf("Flags = %+v, want Google", got.Flags)
	}
}

func TestCheckCompetitorDiffTableScan(t *testing.T) {
	// Not named, but the full table scan still catches it.
	got := CheckCompetitorDiff("#1db954", nil)
	if !got.TooSimilar {
		t.Fatal("CheckCompetitorDiff() should find Spotify without it being named")
	}
	found := false
	for _, f := range got.Flags {
		if f.Brand == "Spotify" {
			found = true
		}
	}
	if !found {
		t.Errorf("Flags = %+v, want Spotify", got.Flags)
	}
}

func TestCheckCompetitorDiffSkipsBlackInScan(t *testing.T) {
	got := CheckCompetitorDiff("#000000", nil)
	if got.TooSimilar {
		t.Errorf("CheckCompetitorDiff(black) = %+v, want no flags from the table scan", got.Flags)
	}
	if got.Flags == nil {
		t.Error("Flags should be an empty slice, not nil")
	}

	// Named black brands are still compared.
	got = CheckCompetitorDiff("#000000", []string{"Apple"})
	if !got.TooSimilar || got.Flags[0].Brand != "Apple" {
		t.Errorf("CheckCompetitorDiff(black, Apple) = %+v, want Apple flagged", got)
	}
}

func TestCheckCompetitorDiffUnknownNames(t *testing.T) {
	got := CheckCompetitorDiff("#000000", []string{"Acme Widgets", ""})
	if got.TooSimilar {
		t.Errorf("unknown competitor names should be ignored, got %+v", got.Flags)
	}
}

func TestKnownBrandColour(t *testing.T) {
	if got, ok := KnownBrandColour("coca cola"); !ok || got != "#f40009" {
		t.Errorf("KnownBrandColour(coca cola) = %s, %v, want #f40009, true", got, ok)
	}
	if _, ok := KnownBrandColour("nobody"); ok {
		t.Error("KnownBrandColour(nobody) should not be found")
	}
	if KnownBrandCount() < 50 {
		t.Errorf("KnownBrandCount() = %d, want ~50", KnownBrandCount())
	}
}

func TestKnownBrandsIsACopy(t *testing.T) {
	brands := KnownBrands()
	if len(brands) != KnownBrandCount() {
		t.Fatalf("len(KnownBrands()) = %d, want %d", len(brands), KnownBrandCount())
	}
	if brands[0].Name != "Google" || brands[0].Hex != "#4285f4" {
		t.Errorf("KnownBrands()[0] = %+v, want Google #4285f4", brands[0])
	}

	brands[0].Hex = "#000000"
	if hex, _ := KnownBrandColour("Google"); hex != "#4285f4" {
		t.Errorf("mutating KnownBrands() changed the table: %s", hex)
	}
}
