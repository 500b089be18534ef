package progressive

import (
	"path/filepath"
	"testing"
)

func TestReportRoundTrip(t *testing.T) {
	res, err := (&Searcher{Bound: 100_000}).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	rep := NewReport(res, DefaultModulus)
	rep.TimingsUS = map[string]int64{"enumerate": 42}

	path := filepath.Join(t.TempDir(), "report.json")
	if err := rep.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadReport(path)
	if err != nil {
		t.Fatalf("ReadReport: %v", err)
	}
	if got.Sum != rep.Sum || got.Bound != rep.Bound || len(got.Values) != len(rep.Values) {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, rep)
	}
	if got.Digest() != rep.Digest() {
		t.Fatalf("digest changed across round trip")
	}
}

func TestDigestSensitivity(t *testing.T) {
	res, err := (&Searcher{Bound: 100_000}).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	rep := NewReport(res, DefaultModulus)
	base := rep.Digest()

	bumped := *rep
	bumped.Sum++
	if bumped.Digest() == base {
		t.Fatalf("digest ignores the sum")
	}

	timed := *rep
	timed.TimingsUS = map[string]int64{"enumerate": 1}
	if timed.Digest() != base {
		t.Fatalf("digest must not depend on timings")
	}
}
