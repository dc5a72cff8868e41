package domain

import "fmt"

// Company is a read-only entry of the lead directory.
//
// Companies are supplied by the dataset provider before any session starts
// and are never mutated or destroyed by the service.
type Company struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the stable unique identifier.
	ID string `json:"id"`

	// OrgNumber is the national registry identifier (opaque).
	// Example: 123456789
	OrgNumber string `json:"orgNumber"`

	// ─────────────────────────────
	// Description
	// ─────────────────────────────

	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Sector      string `json:"sector,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`

	// FoundedYear is nil when the registry has no founding date.
	FoundedYear *int `json:"foundedYear,omitempty"`

	Location   Location   `json:"location"`
	Financials Financials `json:"financials"`

	// Contacts keeps the provider order.
	Contacts []Contact `json:"contacts,omitempty"`
}

// Location is where a company is registered.
type Location struct {
	City       string `json:"city"`
	County     string `json:"county"`
	Address    string `json:"address,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// Financials holds the latest reported accounts in whole NOK.
type Financials struct {
	Revenue   int64 `json:"revenue"`
	Profit    int64 `json:"profit"`
	Assets    int64 `json:"assets"`
	Employees int   `json:"employees"`
	Year      int   `json:"year"`
}

// Contact is a person attached to exactly one company.
type Contact struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Facets lists the filter options offered by the search screen.
type Facets struct {
	Industries []string `json:"industries"`
	Counties   []string `json:"counties"`
}

// CompanyIDs returns the ids of companies in order.
func CompanyIDs(companies []Company) []string {
	ids := make([]string, 0, len(companies))
	for _, c := range companies {
		ids = append(ids, c.ID)
	}
	return ids
}

// Plural picks one or many by n.
func Plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// CountCompanies renders n with the matching noun, e.g. "1 company".
func CountCompanies(n int) string {
	return fmt.Sprintf("%d %s", n, Plural(n, "company", "companies"))
}
