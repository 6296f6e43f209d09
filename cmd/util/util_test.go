package util

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/pprof/profile"
)

func testProfile() *profile.Profile {
	mainFn := &profile.Function{ID: 1, Name: "main.main"}
	fibFn := &profile.Function{ID: 2, Name: "fibseq/fib.Fibonacci"}
	mainLoc := &profile.Location{ID: 1, Line: []profile.Line{{Function: mainFn, Line: 10}}}
	fibLoc := &profile.Location{ID: 2, Line: []profile.Line{{Function: fibFn, Line: 20}}}
	return &profile.Profile{
		SampleType: []*profile.ValueType{
			{Type: "samples", Unit: "count"},
			{Type: "cpu", Unit: "nanoseconds"},
		},
		Sample: []*profile.Sample{
			{Location: []*profile.Location{fibLoc, fibLoc, mainLoc}, Value: []int64{1, 10}},
			{Location: []*profile.Location{mainLoc}, Value: []int64{1, 5}},
			{Location: []*profile.Location{fibLoc}, Value: []int64{0, 0}},
		},
		Location:      []*profile.Location{mainLoc, fibLoc},
		Function:      []*profile.Function{mainFn, fibFn},
		DurationNanos: 15,
	}
}

func TestGetFunctionTimes(t *testing.T) {
	times := GetFunctionTimes(testProfile())
	if len(times) != 2 {
		t.Fatalf("got %d functions, want 2", len(times))
	}
	if times[0].Name != "main.main" || times[0].Flat != 5 || times[0].Cum != 15 {
		t.Errorf("unexpected first entry: %+v", times[0])
	}
	if times[1].Name != "fibseq/fib.Fibonacci" || times[1].Flat != 10 || times[1].Cum != 10 {
		t.Errorf("unexpected second entry: %+v", times[1])
	}
}

func TestGetFunctionTimesNoSampleTypes(t *testing.T) {
	if times := GetFunctionTimes(&profile.Profile{}); times != nil {
		t.Errorf("expected nil, got %v", times)
	}
}

func TestFunctionTimeArraySort(t *testing.T) {
	times := FunctionTimeArray{
		{Name: "b", Flat: 1, Cum: 5},
		{Name: "a", Flat: 1, Cum: 5},
		{Name: "c", Flat: 3, Cum: 5},
		{Name: "d", Flat: 0, Cum: 9},
	}
	sort.Sort(times)
	want := []string{"d", "c", "a", "b"}
	for i, name := range want {
		if times[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, times[i].Name, name)
		}
	}
}

func TestGetProfileDataFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.pprof")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := testProfile().Write(f); err != nil {
		t.Fatal(err)
	}
	f.Close()

	prof, err := GetProfileDataFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if prof.DurationNanos != 15 {
		t.Errorf("duration = %d, want 15", prof.DurationNanos)
	}
	if _, err := GetProfileDataFromFile(filepath.Join(t.TempDir(), "missing.pprof")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCleanOrCreateFolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	if err := CleanOrCreateFolder(dir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "old"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CleanOrCreateFolder(dir); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("folder not emptied, has %d entries", len(entries))
	}
}
