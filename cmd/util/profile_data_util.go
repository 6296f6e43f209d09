package util

import (
	"fmt"
	"os"
	"sort"

	"github.com/google/pprof/profile"
)

// GetProfileDataFromFile reads and parses a pprof profile
func GetProfileDataFromFile(path string) (*profile.Profile, error) {
	rawProfile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profile: %w", err)
	}
	defer rawProfile.Close()
	prof, err := profile.Parse(rawProfile)
	if err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return prof, nil
}

// GetFunctionTimes sums the CPU time of every sample per function, sorted by cumulative time
func GetFunctionTimes(prof *profile.Profile) FunctionTimeArray {
	idx := cpuValueIndex(prof)
	if idx < 0 {
		return nil
	}
	byName := make(map[string]*FunctionTime)
	var order []string
	get := func(name string) *FunctionTime {
		ft, ok := byName[name]
		if !ok {
			ft = &FunctionTime{Name: name}
			byName[name] = ft
			order = append(order, name)
		}
		return ft
	}

	seen := make(map[string]bool)
	for _, sample := range prof.Sample {
		if idx >= len(sample.Value) {
			continue
		}
		w := sample.Value[idx]
		if w == 0 {
			continue
		}
		for k := range seen {
			delete(seen, k)
		}
		// Location[0] is the leaf, and within a location Line[0] is the innermost inlined call
		for i, loc := range sample.Location {
			for j, line := range loc.Line {
				if line.Function == nil {
					continue
				}
				name := line.Function.Name
				ft := get(name)
				if i == 0 && j == 0 {
					ft.Flat += w
				}
				// recursive frames only count once towards cum
				if !seen[name] {
					seen[name] = true
					ft.Cum += w
				}
			}
		}
	}

	times := make(FunctionTimeArray, 0, len(order))
	for _, name := range order {
		times = append(times, *byName[name])
	}
	sort.Sort(times)
	return times
}

// cpuValueIndex finds the cpu sample value, falling back to the last one
func cpuValueIndex(prof *profile.Profile) int {
	for i, st := range prof.SampleType {
		if st.Type == "cpu" {
			return i
		}
	}
	return len(prof.SampleType) - 1
}
