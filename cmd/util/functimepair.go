package util

// FunctionTime holds the CPU time attributed to one function in a profile.
// Flat is time spent in the function itself, Cum includes its callees.
type FunctionTime struct {
	Name string
	Flat int64
	Cum  int64
}

type FunctionTimeArray []FunctionTime

func (l FunctionTimeArray) Len() int {
	return len(l)
}

func (l FunctionTimeArray) Less(i, j int) bool {
	// greatest cumulative time first, ties broken by flat time and then name
	if l[i].Cum != l[j].Cum {
		return l[i].Cum > l[j].Cum
	}
	if l[i].Flat != l[j].Flat {
		return l[i].Flat > l[j].Flat
	}
	return l[i].Name < l[j].Name
}

func (l FunctionTimeArray) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
}
