package zefania

import (
	"reflect"
	"testing"
)

const sampleModule = `<?xml version="1.0" encoding="utf-8"?>
<XMLBIBLE biblename="Sample">
  <BIBLEBOOK bnumber="1" bname="Genesis">
    <CHAPTER cnumber="1">
      <VERS vnumber="2">And the earth was without form.</VERS>
      <VERS vnumber="1">In the  beginning God created.</VERS>
    </CHAPTER>
  </BIBLEBOOK>
  <BIBLEBOOK bnumber="19" bname="Psalm">
    <CHAPTER cnumber="23">
      <VERS vnumber="1">The LORD is my shepherd.</VERS>
    </CHAPTER>
  </BIBLEBOOK>
</XMLBIBLE>`

// TestDetect tests Zefania root-element sniffing.
func TestDetect(t *testing.T) {
	if !Detect([]byte(sampleModule)) {
		t.Error("sample module not detected")
	}
	if Detect([]byte(`<html><body/></html>`)) {
		t.Error("non-Zefania XML detected")
	}
	if Detect([]byte(`not xml`)) {
		t.Error("plain text detected")
	}
}

// TestParse tests book canonicalization and vnumber-ordered verses.
func TestParse(t *testing.T) {
	text, skips, err := Parse([]byte(sampleModule))
	if err != nil {
		t.Fatal(err)
	}
	if len(skips) != 0 {
		t.Errorf("unexpected skips: %v", skips)
	}

	want := []string{"In the beginning God created.", "And the earth was without form."}
	if got := text.Verses("genesis", 1); !reflect.DeepEqual(got, want) {
		t.Errorf("genesis 1 = %v, want %v", got, want)
	}

	// "Psalm" canonicalizes to the plural id.
	if got := text.Verses("psalms", 23); len(got) != 1 {
		t.Errorf("psalms 23 = %v", got)
	}
}

// TestParse_SkipsUnnumberedItems tests the per-item skip policy.
func TestParse_SkipsUnnumberedItems(t *testing.T) {
	doc := `<XMLBIBLE>
  <BIBLEBOOK bname="Jude">
    <CHAPTER>
      <VERS vnumber="1">ignored, chapter has no number</VERS>
    </CHAPTER>
    <CHAPTER cnumber="1">
      <VERS>no verse number</VERS>
      <VERS vnumber="1">Jude, a servant of Jesus Christ.</VERS>
    </CHAPTER>
  </BIBLEBOOK>
  <BIBLEBOOK bnumber="2"/>
</XMLBIBLE>`
	text, skips, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(skips) != 3 {
		t.Errorf("skips = %v, want 3 entries", skips)
	}
	if got := text.Verses("jude", 1); len(got) != 1 || got[0] != "Jude, a servant of Jesus Christ." {
		t.Errorf("jude 1 = %v", got)
	}
}

// TestParse_NoRoot tests that non-Zefania XML is a hard error.
func TestParse_NoRoot(t *testing.T) {
	if _, _, err := Parse([]byte(`<html><body/></html>`)); err == nil {
		t.Fatal("expected error for missing XMLBIBLE root")
	}
}
