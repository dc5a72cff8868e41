package domain

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input   string
		want    SortKey
		wantErr bool
	}{
		{input: "", want: SortRelevance},
		{input: "name", want: SortName},
		{input: "profit-high", want: SortProfitHigh},
		{input: "profit-low", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortKey(tt.input)
			if tt.wantErr {
				if !IsValidation(err) {
					t.Fatalf("ParseSortKey(%q) error = %v, want validation error", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseSortKey(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestSortCompaniesNumeric(t *testing.T) {
	tests := []struct {
		key      SortKey
		expected []string
	}{
		{key: SortRelevance, expected: []string{"1", "2", "3", "4"}},
		{key: SortRevenueHigh, expected: []string{"2", "1", "4", "3"}},
		{key: SortRevenueLow, expected: []string{"3", "4", "1", "2"}},
		{key: SortEmployeesHigh, expected: []string{"2", "1", "4", "3"}},
		{key: SortEmployeesLow, expected: []string{"3", "4", "1", "2"}},
		{key: SortProfitHigh, expected: []string{"2", "4", "1", "3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := ids(SortCompanies(testCompanies(), tt.key, DefaultCollation))
			if !slicesEqual(got, tt.expected) {
				t.Errorf("SortCompanies(%s) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestSortCompaniesNameUsesLocale(t *testing.T) {
	companies := []Company{
		{ID: "a", Name: "Ål Fiske AS"},
		{ID: "b", Name: "Zebra AS"},
		{ID: "c", Name: "Ærfugl AS"},
		{ID: "d", Name: "Østkant AS"},
		{ID: "e", Name: "alfa AS"},
	}

	got := ids(SortCompanies(companies, SortName, DefaultCollation))
	want := []string{"e", "b", "c", "d", "a"}
	if !slicesEqual(got, want) {
		t.Errorf("Norwegian name order = %v, want %v", got, want)
	}

	again := ids(SortCompanies(SortCompanies(companies, SortName, DefaultCollation), SortName, DefaultCollation))
	if !slicesEqual(again, want) {
		t.Errorf("sorting twice = %v, want %v", again, want)
	}
}

func TestSortCompaniesNorwegianTags(t *testing.T) {
	companies := []Company{
		{ID: "a", Name: "Ål Fiske AS"},
		{ID: "b", Name: "Zebra AS"},
		{ID: "d", Name: "Østkant AS"},
	}

	for _, tag := range []string{"nb", "no", "nb-NO", "nn"} {
		got := ids(SortCompanies(companies, SortName, language.MustParse(tag)))
		if want := []string{"b", "d", "a"}; !slicesEqual(got, want) {
			t.Errorf("%s name order = %v, want %v", tag, got, want)
		}
	}

	// Other locales keep their own rules.
	got := ids(SortCompanies(companies, SortName, language.English))
	if want := []string{"a", "d", "b"}; !slicesEqual(got, want) {
		t.Errorf("en name order = %v, want %v", got, want)
	}
}

func TestSortCompaniesIsStable(t *testing.T) {
	companies := []Company{
		{ID: "1", Financials: Financials{Revenue: 10}},
		{ID: "2", Financials: Financials{Revenue: 20}},
		{ID: "3", Financials: Financials{Revenue: 10}},
		{ID: "4", Financials: Financials{Revenue: 20}},
	}

	got := ids(SortCompanies(companies, SortRevenueHigh, language.English))
	want := []string{"2", "4", "1", "3"}
	if !slicesEqual(got, want) {
		t.Errorf("ties should keep input order: got %v, want %v", got, want)
	}
}

func TestSortCompaniesDoesNotMutateInput(t *testing.T) {
	companies := testCompanies()
	_ = SortCompanies(companies, SortRevenueLow, DefaultCollation)

	if got := ids(companies); !slicesEqual(got, []string{"1", "2", "3", "4"}) {
		t.Errorf("input reordered to %v", got)
	}
}

func TestSortCompaniesEmpty(t *testing.T) {
	got := SortCompanies(nil, SortName, DefaultCollation)
	if got == nil || len(got) != 0 {
		t.Errorf("SortCompanies(nil) = %#v, want empty slice", got)
	}
}
