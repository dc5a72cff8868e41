package domain

import (
	"encoding/json"
	"testing"
)

func intPtr(v int) *int { return &v }

func testCompanies() []Company {
	return []Company{
		{
			ID: "1", Name: "TechNorge AS", Industry: "IT og teknologi",
			Location:    Location{City: "Oslo", County: "Oslo"},
			Financials:  Financials{Revenue: 45_000_000, Profit: 8_500_000, Employees: 42},
			FoundedYear: intPtr(2010),
		},
		{
			ID: "2", Name: "Bygg Partner Norge AS", Industry: "Bygg og anlegg",
			Location:    Location{City: "Bergen", County: "Vestland"},
			Financials:  Financials{Revenue: 120_000_000, Profit: 15_600_000, Employees: 130},
			FoundedYear: intPtr(1995),
		},
		{
			ID: "3", Name: "FinansRåd AS", Industry: "Finans og forsikring",
			Location:   Location{City: "Trondheim", County: "Trøndelag"},
			Financials: Financials{Revenue: 28_000_000, Profit: 6_700_000, Employees: 18},
		},
		{
			ID: "4", Name: "Konsulent Partner AS", Industry: "Konsulentvirksomhet",
			Location:    Location{City: "Oslo", County: "Oslo"},
			Financials:  Financials{Revenue: 37_000_000, Profit: 9_800_000, Employees: 25},
			FoundedYear: intPtr(2017),
		},
	}
}

func ids(companies []Company) []string { return CompanyIDs(companies) }

func TestFilterCompanies(t *testing.T) {
	tests := []struct {
		name     string
		query    SearchQuery
		expected []string
	}{
		{
			name:     "empty query keeps everything in order",
			query:    SearchQuery{},
			expected: []string{"1", "2", "3", "4"},
		},
		{
			name:     "empty sets and open ranges keep everything",
			query:    SearchQuery{Industry: []string{}, County: []string{}, Revenue: &Range{}, Employees: &Range{}, FoundedYear: &Range{}},
			expected: []string{"1", "2", "3", "4"},
		},
		{
			name:     "name is case-insensitive substring",
			query:    SearchQuery{Name: "partner"},
			expected: []string{"2", "4"},
		},
		{
			name:     "surrounding whitespace is part of the name query",
			query:    SearchQuery{Name: " Norge"},
			expected: []string{"2"},
		},
		{
			name:     "blank name matches everything",
			query:    SearchQuery{Name: "   "},
			expected: []string{"1", "2", "3", "4"},
		},
		{
			name:     "industry membership",
			query:    SearchQuery{Industry: []string{"IT og teknologi", "Bygg og anlegg"}},
			expected: []string{"1", "2"},
		},
		{
			name:     "county membership",
			query:    SearchQuery{County: []string{"Oslo"}},
			expected: []string{"1", "4"},
		},
		{
			name:     "revenue bounds are inclusive",
			query:    SearchQuery{Revenue: Between(37_000_000, 45_000_000)},
			expected: []string{"1", "4"},
		},
		{
			name:     "revenue lower bound only",
			query:    SearchQuery{Revenue: AtLeast(100_000_000)},
			expected: []string{"2"},
		},
		{
			name:     "employees upper bound only",
			query:    SearchQuery{Employees: AtMost(25)},
			expected: []string{"3", "4"},
		},
		{
			name:     "founded year bound excludes unknown founding",
			query:    SearchQuery{FoundedYear: AtMost(2020)},
			expected: []string{"1", "2", "4"},
		},
		{
			name:     "predicates are conjunctive",
			query:    SearchQuery{County: []string{"Oslo"}, Employees: AtLeast(30)},
			expected: []string{"1"},
		},
		{
			name:     "no match",
			query:    SearchQuery{Industry: []string{"Energi"}},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterCompanies(testCompanies(), tt.query))
			if !slicesEqual(got, tt.expected) {
				t.Errorf("FilterCompanies() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFilterCompaniesRevenueProperty(t *testing.T) {
	companies := testCompanies()
	bounds := []int64{0, 28_000_000, 37_000_000, 45_000_000, 120_000_000, 200_000_000}

	for _, min := range bounds {
		for _, max := range bounds {
			r := Between(min, max)
			kept := map[string]bool{}
			for _, c := range FilterCompanies(companies, SearchQuery{Revenue: r}) {
				kept[c.ID] = true
			}
			for _, c := range companies {
				want := c.Financials.Revenue >= min && c.Financials.Revenue <= max
				if kept[c.ID] != want {
					t.Errorf("revenue [%d,%d]: company %s kept=%v, want %v", min, max, c.ID, kept[c.ID], want)
				}
			}
		}
	}
}

func TestFilterCompaniesDoesNotAlias(t *testing.T) {
	companies := testCompanies()
	out := FilterCompanies(companies, SearchQuery{})
	out[0].Name = "changed"
	if companies[0].Name == "changed" {
		t.Error("FilterCompanies() result shares the input backing array")
	}
}

func TestRangeJSON(t *testing.T) {
	var q SearchQuery
	if err := json.Unmarshal([]byte(`{"revenue":[1000,null],"employees":[null,null]}`), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if q.Revenue == nil || q.Revenue.Min == nil || *q.Revenue.Min != 1000 || q.Revenue.Max != nil {
		t.Errorf("revenue = %+v, want [1000,null]", q.Revenue)
	}
	if !q.Employees.Unbounded() {
		t.Errorf("employees should be unbounded, got %+v", q.Employees)
	}

	var bad SearchQuery
	if err := json.Unmarshal([]byte(`{"revenue":[1]}`), &bad); err == nil {
		t.Error("single element range should be rejected")
	}
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
