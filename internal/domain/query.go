package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// SearchQuery is the ephemeral filter state of the search screen.
// Absent fields are unconstrained.
type SearchQuery struct {
	Name        string   `json:"name,omitempty"`
	Industry    []string `json:"industry,omitempty"`
	County      []string `json:"county,omitempty"`
	Revenue     *Range   `json:"revenue,omitempty"`
	Employees   *Range   `json:"employees,omitempty"`
	FoundedYear *Range   `json:"foundedYear,omitempty"`
}

// Range is an inclusive [min, max] pair; a nil bound is open.
// On the wire it is a two element array: [min|null, max|null].
type Range struct {
	Min *int64
	Max *int64
}

// Between builds a closed range.
func Between(min, max int64) *Range {
	return &Range{Min: &min, Max: &max}
}

// AtLeast builds a range with only a lower bound.
func AtLeast(min int64) *Range {
	return &Range{Min: &min}
}

// AtMost builds a range with only an upper bound.
func AtMost(max int64) *Range {
	return &Range{Max: &max}
}

// Unbounded reports whether the range constrains nothing.
func (r *Range) Unbounded() bool {
	return r == nil || (r.Min == nil && r.Max == nil)
}

// Contains reports whether v lies within the range.
func (r *Range) Contains(v int64) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]*int64{r.Min, r.Max})
}

func (r *Range) UnmarshalJSON(data []byte) error {
	var pair []*int64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("range must be [min, max]: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("range must have exactly 2 elements, got %d", len(pair))
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

// Matches reports whether c satisfies every predicate of q.
func (q SearchQuery) Matches(c Company) bool {
	// Blank queries match everything; otherwise the query is used as typed.
	if strings.TrimSpace(q.Name) != "" {
		if !strings.Contains(strings.ToLower(c.Name), strings.ToLower(q.Name)) {
			return false
		}
	}

	if len(q.Industry) > 0 && !slices.Contains(q.Industry, c.Industry) {
		return false
	}

	if len(q.County) > 0 && !slices.Contains(q.County, c.Location.County) {
		return false
	}

	if !q.Revenue.Contains(c.Financials.Revenue) {
		return false
	}

	if !q.Employees.Contains(int64(c.Financials.Employees)) {
		return false
	}

	// A founded-year bound excludes companies without a founded year.
	if !q.FoundedYear.Unbounded() {
		if c.FoundedYear == nil {
			return false
		}
		if !q.FoundedYear.Contains(int64(*c.FoundedYear)) {
			return false
		}
	}

	return true
}

// FilterCompanies returns the companies matching q, in input order.
// The result never aliases companies.
func FilterCompanies(companies []Company, q SearchQuery) []Company {
	out := make([]Company, 0, len(companies))
	for _, c := range companies {
		if q.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}
