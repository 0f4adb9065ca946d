package sweep

// Result classifies the outcome of evaluating one phone in one run.
type Result int

const (
	// ResultNoAction means the phone was left untouched.
	ResultNoAction Result = iota
	// ResultTimestamped means the phone was tagged with a first-seen stamp.
	ResultTimestamped
	// ResultRemoved means the phone was deleted from the directory.
	ResultRemoved
)

func (r Result) String() string {
	switch r {
	case ResultTimestamped:
		return "timestamped"
	case ResultRemoved:
		return "removed"
	case ResultNoAction:
		return "no_action"
	default:
		return "unknown"
	}
}

// Results tallies outcomes across one run.
type Results struct {
	Timestamped int
	Removed     int
	NoAction    int
}

// Total returns the number of phones that were evaluated.
func (r Results) Total() int {
	return r.Timestamped + r.Removed + r.NoAction
}

func (r *Results) add(res Result) {
	switch res {
	case ResultTimestamped:
		r.Timestamped++
	case ResultRemoved:
		r.Removed++
	case ResultNoAction:
		r.NoAction++
	}
}
