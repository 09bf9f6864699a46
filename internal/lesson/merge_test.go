package lesson

import "testing"

func fullResults(skel *ContentSkeleton) map[SectionKind]*SectionResult {
	results := make(map[SectionKind]*SectionResult)
	for _, u := range collectUnits(skel) {
		sec := results[u.Kind]
		if sec == nil {
			sec = &SectionResult{Kind: u.Kind}
			results[u.Kind] = sec
		}
		sec.Items = append(sec.Items, ItemResult{
			Rich: &RichText{
				Base:        u.Text,
				Segments:    []Segment{{Text: u.Text}},
				Translation: "t",
			},
		})
	}
	return results
}

func TestMerge_AllEnhanced(t *testing.T) {
	skel := testSkeleton()
	d := Descriptor{Topic: "greetings", Level: "N5"}

	pkg := Merge(d, skel, fullResults(skel), "mock")

	for kind, st := range pkg.Status {
		if st != StatusEnhanced {
			t.Errorf("section %s: status %s", kind, st)
		}
	}
	if !pkg.FullyEnhanced() {
		t.Error("expected fully enhanced package")
	}
	if !pkg.Reading.Body.Enhanced() {
		t.Error("reading body not enhanced")
	}
	for i, line := range pkg.Dialogue {
		if line.Text.Plain != skel.Dialogue[i].Text {
			t.Errorf("dialogue[%d] order broken: %q", i, line.Text.Plain)
		}
		if !line.Text.Enhanced() {
			t.Errorf("dialogue[%d] not enhanced", i)
		}
	}
	// Grammar examples map back from the flat unit order.
	for i, g := range pkg.Grammar {
		for j, ex := range g.Examples {
			if ex.Plain != skel.GrammarPoints[i].Examples[j] {
				t.Errorf("grammar[%d].examples[%d] order broken: %q", i, j, ex.Plain)
			}
			if ex.Rich.Base != ex.Plain {
				t.Errorf("grammar[%d].examples[%d] rich/plain mismatch", i, j)
			}
		}
	}
}

func TestMerge_NoResults_FallsBackToPlain(t *testing.T) {
	skel := testSkeleton()
	d := Descriptor{Topic: "greetings", Level: "N5"}

	pkg := Merge(d, skel, map[SectionKind]*SectionResult{}, "mock")

	for kind, st := range pkg.Status {
		if st != StatusUnenhanced {
			t.Errorf("section %s: status %s", kind, st)
		}
	}
	if pkg.Reading.Body.Enhanced() {
		t.Error("reading should be plain")
	}
	if pkg.Reading.Body.Plain != skel.Reading.Body {
		t.Errorf("plain fallback lost: %q", pkg.Reading.Body.Plain)
	}
	if len(pkg.Dialogue) != len(skel.Dialogue) {
		t.Fatalf("dialogue incomplete: %d lines", len(pkg.Dialogue))
	}
	if len(pkg.Stages) != len(skel.Stages) {
		t.Fatalf("stages lost in merge")
	}
	if len(pkg.Practice) != len(skel.Practice) {
		t.Fatalf("practice lost in merge")
	}
}

func TestMerge_PartialSection(t *testing.T) {
	skel := testSkeleton()
	d := Descriptor{Topic: "greetings", Level: "N5"}

	results := fullResults(skel)
	results[SectionDialogue].Items[1] = ItemResult{Err: errTest}

	pkg := Merge(d, skel, results, "mock")

	if pkg.Status[SectionDialogue] != StatusPartial {
		t.Fatalf("dialogue status: %s", pkg.Status[SectionDialogue])
	}
	if pkg.Dialogue[0].Text.Enhanced() != true || pkg.Dialogue[1].Text.Enhanced() != false {
		t.Fatal("wrong item fell back")
	}
	if pkg.Dialogue[1].Text.Plain != skel.Dialogue[1].Text {
		t.Fatalf("failed item lost its plain text")
	}
	if pkg.FullyEnhanced() {
		t.Error("package should not report fully enhanced")
	}
}
