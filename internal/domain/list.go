package domain

import (
	"slices"
	"time"
)

// SavedList is a named, session-scoped collection of company ids.
type SavedList struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// CompanyIDs has set semantics but keeps insertion order for display.
	CompanyIDs []string `json:"companyIds"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a copy that shares no backing arrays with l.
func (l SavedList) Clone() SavedList {
	l.CompanyIDs = slices.Clone(l.CompanyIDs)
	if l.CompanyIDs == nil {
		l.CompanyIDs = []string{}
	}
	return l
}

// Contains reports whether the list holds companyID.
func (l SavedList) Contains(companyID string) bool {
	return slices.Contains(l.CompanyIDs, companyID)
}

// MergeIDs appends every id of add not already in existing, preserving order,
// and returns the merged slice with the number of genuinely new ids.
func MergeIDs(existing, add []string) ([]string, int) {
	seen := make(map[string]struct{}, len(existing)+len(add))
	merged := make([]string, 0, len(existing)+len(add))
	for _, id := range existing {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
	}

	added := 0
	for _, id := range add {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
		added++
	}
	return merged, added
}

// UnknownListPolicy decides what adding a selection to a missing list does.
type UnknownListPolicy string

const (
	// UnknownListReject fails with ErrListNotFound and mutates nothing.
	UnknownListReject UnknownListPolicy = "reject"
	// UnknownListIgnore silently does nothing and keeps the selection.
	UnknownListIgnore UnknownListPolicy = "ignore"
)

// ParseUnknownListPolicy parses a policy name, defaulting to reject.
func ParseUnknownListPolicy(s string) (UnknownListPolicy, error) {
	switch UnknownListPolicy(s) {
	case "", UnknownListReject:
		return UnknownListReject, nil
	case UnknownListIgnore:
		return UnknownListIgnore, nil
	default:
		return "", &ValidationError{Field: "policy", Message: "unknown list policy " + s}
	}
}
