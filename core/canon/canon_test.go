package canon

import "testing"

// TestNormalize_Aliases tests that common spellings resolve to canonical ids.
func TestNormalize_Aliases(t *testing.T) {
	cases := map[string]BookID{
		"Genesis":         "genesis",
		"GEN":             "genesis",
		"1 Samuel":        "1_samuel",
		"1samuel":         "1_samuel",
		"1 sam":           "1_samuel",
		"Song of Songs":   "song_of_solomon",
		"Song of Solomon": "song_of_solomon",
		"Psalm":           "psalms",
		"  Matthew  ":     "matthew",
		"Rev.":            "revelation",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestNormalize_Idempotent tests that canonical ids normalize to themselves.
func TestNormalize_Idempotent(t *testing.T) {
	for _, id := range Books() {
		if got := Normalize(string(id)); got != id {
			t.Errorf("Normalize(%q) = %q, not idempotent", id, got)
		}
	}
}

// TestNormalize_UnknownFallback tests the permissive fallback path.
func TestNormalize_UnknownFallback(t *testing.T) {
	if got := Normalize("Foobar"); got != "foobar" {
		t.Errorf("Normalize(Foobar) = %q, want foobar", got)
	}
	if got := Normalize("Gospel of Thomas"); got != "gospel_of_thomas" {
		t.Errorf("Normalize(Gospel of Thomas) = %q, want gospel_of_thomas", got)
	}
	if IsCanonical("gospel_of_thomas") {
		t.Error("fallback id should not be canonical")
	}
}

// TestNormalize_Punctuation tests punctuation stripping and whitespace collapse.
func TestNormalize_Punctuation(t *testing.T) {
	if got := Normalize("1st.  Samuel!"); got != Normalize("1st samuel") {
		t.Errorf("punctuation should not affect normalization, got %q", got)
	}
	if got := Normalize("Song   of\tSolomon"); got != "song_of_solomon" {
		t.Errorf("Normalize with whitespace runs = %q, want song_of_solomon", got)
	}
}

// TestBooks_CountAndOrder tests the canonical table shape.
func TestBooks_CountAndOrder(t *testing.T) {
	books := Books()
	if len(books) != BookCount {
		t.Fatalf("expected %d books, got %d", BookCount, len(books))
	}
	if books[0] != "genesis" || books[len(books)-1] != "revelation" {
		t.Errorf("unexpected canon boundaries: %s .. %s", books[0], books[len(books)-1])
	}
	if Order("genesis") != 0 {
		t.Errorf("Order(genesis) = %d, want 0", Order("genesis"))
	}
	if Order("foobar") != BookCount {
		t.Errorf("Order(foobar) = %d, want %d", Order("foobar"), BookCount)
	}
}

// TestSortBooks_CanonicalThenUnknown tests mixed sorting.
func TestSortBooks_CanonicalThenUnknown(t *testing.T) {
	ids := []BookID{"zz_extra", "revelation", "aa_extra", "genesis"}
	SortBooks(ids)
	want := []BookID{"genesis", "revelation", "aa_extra", "zz_extra"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("SortBooks order = %v, want %v", ids, want)
		}
	}
}

// TestVersionName_KnownAndFallback tests the translation name table.
func TestVersionName_KnownAndFallback(t *testing.T) {
	if got := VersionName("ESV"); got != "English Standard Version" {
		t.Errorf("VersionName(ESV) = %q", got)
	}
	if got := VersionName("esv"); got != "English Standard Version" {
		t.Errorf("VersionName should be case-insensitive, got %q", got)
	}
	if got := VersionName("XYZ"); got != "XYZ" {
		t.Errorf("VersionName(XYZ) = %q, want identity fallback", got)
	}
}
