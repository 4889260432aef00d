package favorites

// AddResult is the outcome of an Add attempt
type AddResult int

const (
	// Invalid means the city was empty or failed validation and was not stored
	Invalid AddResult = iota
	Added
	AlreadyExists
	// InvalidAndRemoved means the city failed validation and an existing entry was dropped
	InvalidAndRemoved
)

func (r AddResult) String() string {
	switch r {
	case Added:
		return "added"
	case AlreadyExists:
		return "exists"
	case InvalidAndRemoved:
		return "removed"
	default:
		return "invalid"
	}
}

// Stored reports whether the city is in the list after the attempt
func (r AddResult) Stored() bool {
	return r == Added || r == AlreadyExists
}

// Mutation actions reported to metrics
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

func indexOf(cities []string, city string) int {
	for i, c := range cities {
		if c == city {
			return i
		}
	}
	return -1
}

func without(cities []string, i int) []string {
	out := make([]string, 0, len(cities)-1)
	out = append(out, cities[:i]...)
	return append(out, cities[i+1:]...)
}
