package factor

import (
	"strconv"
	"strings"
)

// TermResult pairs a subject term with the list members that divide it.
type TermResult struct {
	Term    int
	Factors []int
}

// String formats the result as "term: [f1, f2]".
func (r TermResult) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(r.Term))
	sb.WriteString(": [")
	for i, f := range r.Factors {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(f))
	}
	sb.WriteString("]")
	return sb.String()
}

// ResultSet holds one TermResult per subject term, in subject order.
type ResultSet []TermResult

// String formats the set as "{r1, r2, ...}". An empty set is "{}".
func (rs ResultSet) String() string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Terms returns the terms of the set in order.
func (rs ResultSet) Terms() []int {
	terms := make([]int, len(rs))
	for i, r := range rs {
		terms[i] = r.Term
	}
	return terms
}
