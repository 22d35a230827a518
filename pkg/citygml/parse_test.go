package citygml

import "testing"

func TestParseFloatsSkipsMalformed(t *testing.T) {
	got := parseFloats("1.0 nope 2.5  3")
	want := []float64{1.0, 2.5, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseTriplesTruncatesPartial(t *testing.T) {
	triples := parseTriples([]float64{0, 0, 0, 1, 1, 1, 2, 2})
	if len(triples) != 2 {
		t.Fatalf("got %d triples, want 2 (trailing partial tuple dropped)", len(triples))
	}
}

func TestParsePairsTruncatesPartial(t *testing.T) {
	pairs := parsePairs([]float64{0, 0, 1, 1, 2})
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
}

func TestParseSingleFloat(t *testing.T) {
	if _, ok := parseSingleFloat("not-a-number"); ok {
		t.Fatalf("expected ok=false for malformed input")
	}
	v, ok := parseSingleFloat(" 0.75 \n")
	if !ok || v != 0.75 {
		t.Fatalf("got (%v, %v), want (0.75, true)", v, ok)
	}
}
