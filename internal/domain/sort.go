package domain

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of a result list.
type SortKey string

const (
	SortRelevance     SortKey = "relevance"
	SortName          SortKey = "name"
	SortRevenueHigh   SortKey = "revenue-high"
	SortRevenueLow    SortKey = "revenue-low"
	SortEmployeesHigh SortKey = "employees-high"
	SortEmployeesLow  SortKey = "employees-low"
	SortProfitHigh    SortKey = "profit-high"
)

// DefaultCollation matches the language of the company directory.
var DefaultCollation = language.MustParse("nb")

// ParseSortKey parses a key; empty means relevance.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	switch k {
	case "":
		return SortRelevance, nil
	case SortRelevance, SortName, SortRevenueHigh, SortRevenueLow,
		SortEmployeesHigh, SortEmployeesLow, SortProfitHigh:
		return k, nil
	default:
		return "", &ValidationError{Field: "sort", Message: "unknown sort key " + s}
	}
}

// nynorsk carries the Norwegian tailoring (Æ Ø Å after Z). CLDR orders
// Bokmål the same way, but x/text ships no rules under nb or no.
var nynorsk = language.MustParse("nn")

// collationTag maps Norwegian tags without their own rules to nynorsk.
func collationTag(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	switch base.String() {
	case "nb", "no":
		return nynorsk
	}
	return tag
}

// SortCompanies returns a stably sorted copy of companies.
// Relevance keeps input order. Name order follows the collation rules of tag.
func SortCompanies(companies []Company, key SortKey, tag language.Tag) []Company {
	out := slices.Clone(companies)
	if out == nil {
		out = []Company{}
	}

	var compare func(a, b Company) int
	switch key {
	case SortName:
		// Collators carry scratch buffers; one per call keeps this reentrant.
		col := collate.New(collationTag(tag))
		compare = func(a, b Company) int { return col.CompareString(a.Name, b.Name) }
	case SortRevenueHigh:
		compare = func(a, b Company) int { return cmp.Compare(b.Financials.Revenue, a.Financials.Revenue) }
	case SortRevenueLow:
		compare = func(a, b Company) int { return cmp.Compare(a.Financials.Revenue, b.Financials.Revenue) }
	case SortEmployeesHigh:
		compare = func(a, b Company) int { return cmp.Compare(b.Financials.Employees, a.Financials.Employees) }
	case SortEmployeesLow:
		compare = func(a, b Company) int { return cmp.Compare(a.Financials.Employees, b.Financials.Employees) }
	case SortProfitHigh:
		compare = func(a, b Company) int { return cmp.Compare(b.Financials.Profit, a.Financials.Profit) }
	default:
		return out
	}

	slices.SortStableFunc(out, compare)
	return out
}
