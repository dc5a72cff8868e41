package dataset

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
)

// dateLayouts are accepted for every timestamp in a dataset file.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Dataset is the validated content of a dataset file.
type Dataset struct {
	Facets    domain.Facets
	Companies []domain.Company
	Lists     []domain.SavedList
	Alerts    []domain.AlertTrigger
}

// Mapper converts a parsed dataset file to domain values.
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map validates file and converts it. Company and list ids must be unique and
// lists may only reference companies of the same file. Alerts may reference
// lists that do not exist.
func (m *Mapper) Map(file *File) (*Dataset, error) {
	if file == nil || len(file.Companies) == 0 {
		return nil, fmt.Errorf("no companies found in dataset")
	}

	companies, err := m.mapCompanies(file.Companies)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(companies))
	for _, c := range companies {
		known[c.ID] = struct{}{}
	}

	lists, err := m.mapLists(file.Lists, known)
	if err != nil {
		return nil, err
	}

	alerts, err := m.mapAlerts(file.Alerts)
	if err != nil {
		return nil, err
	}

	facets := domain.Facets{
		Industries: slices.Clone(file.Facets.Industries),
		Counties:   slices.Clone(file.Facets.Counties),
	}
	if len(facets.Industries) == 0 {
		facets.Industries = distinct(companies, func(c domain.Company) string { return c.Industry })
	}
	if len(facets.Counties) == 0 {
		facets.Counties = distinct(companies, func(c domain.Company) string { return c.Location.County })
	}

	return &Dataset{
		Facets:    facets,
		Companies: companies,
		Lists:     lists,
		Alerts:    alerts,
	}, nil
}

func (m *Mapper) mapCompanies(props []CompanyProps) ([]domain.Company, error) {
	companies := make([]domain.Company, 0, len(props))
	seen := make(map[string]struct{}, len(props))

	for i, p := range props {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("company #%d has no id", i+1)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate company id %q", id)
		}
		seen[id] = struct{}{}

		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("company %q has no name", id)
		}

		contacts := make([]domain.Contact, 0, len(p.Contacts))
		for _, c := range p.Contacts {
			contacts = append(contacts, domain.Contact{
				ID:       c.ID,
				Name:     c.Name,
				Title:    c.Title,
				Email:    c.Email,
				Phone:    c.Phone,
				LinkedIn: c.LinkedIn,
			})
		}
		if len(contacts) == 0 {
			contacts = nil
		}

		companies = append(companies, domain.Company{
			ID:          id,
			Name:        p.Name,
			OrgNumber:   p.OrgNumber,
			Industry:    p.Industry,
			Sector:      p.Sector,
			Website:     p.Website,
			Description: p.Description,
			FoundedYear: p.FoundedYear,
			Location: domain.Location{
				City:       p.Location.City,
				County:     p.Location.County,
				Address:    p.Location.Address,
				PostalCode: p.Location.PostalCode,
			},
			Financials: domain.Financials{
				Revenue:   p.Financials.Revenue,
				Profit:    p.Financials.Profit,
				Assets:    p.Financials.Assets,
				Employees: p.Financials.Employees,
				Year:      p.Financials.Year,
			},
			Contacts: contacts,
		})
	}

	return companies, nil
}

func (m *Mapper) mapLists(props []ListProps, known map[string]struct{}) ([]domain.SavedList, error) {
	lists := make([]domain.SavedList, 0, len(props))
	seen := make(map[string]struct{}, len(props))

	for i, p := range props {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("list #%d has no id", i+1)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate list id %q", id)
		}
		seen[id] = struct{}{}

		for _, cid := range p.CompanyIDs {
			if _, ok := known[cid]; !ok {
				return nil, fmt.Errorf("list %q references unknown company %q", id, cid)
			}
		}
		companyIDs, _ := domain.MergeIDs(nil, p.CompanyIDs)

		created, err := parseDate(p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("list %q createdAt: %w", id, err)
		}
		updated := created
		if p.UpdatedAt != "" {
			if updated, err = parseDate(p.UpdatedAt); err != nil {
				return nil, fmt.Errorf("list %q updatedAt: %w", id, err)
			}
		}

		lists = append(lists, domain.SavedList{
			ID:         id,
			Name:       p.Name,
			CompanyIDs: companyIDs,
			CreatedAt:  created,
			UpdatedAt:  updated,
		})
	}

	return lists, nil
}

func (m *Mapper) mapAlerts(props []AlertProps) ([]domain.AlertTrigger, error) {
	alerts := make([]domain.AlertTrigger, 0, len(props))
	seen := make(map[string]struct{}, len(props))

	for i, p := range props {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("alert #%d has no id", i+1)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate alert id %q", id)
		}
		seen[id] = struct{}{}

		channels := make([]domain.Channel, 0, len(p.Configuration.NotifyVia))
		for _, c := range p.Configuration.NotifyVia {
			channels = append(channels, domain.Channel(c))
		}

		alert, err := domain.AlertDraft{
			Name:      p.Name,
			Type:      domain.TriggerType(p.Type),
			ListID:    p.ListID,
			Enabled:   p.Enabled,
			Threshold: p.Configuration.Threshold,
			NotifyVia: channels,
			Frequency: domain.Frequency(p.Configuration.Frequency),
		}.Normalize()
		if err != nil {
			return nil, fmt.Errorf("alert %q: %w", id, err)
		}

		created, err := parseDate(p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("alert %q createdAt: %w", id, err)
		}
		alert.ID = id
		alert.CreatedAt = created

		if p.LastTriggered != "" {
			last, err := parseDate(p.LastTriggered)
			if err != nil {
				return nil, fmt.Errorf("alert %q lastTriggered: %w", id, err)
			}
			alert.LastTriggered = &last
		}

		alerts = append(alerts, alert)
	}

	return alerts, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date %q", s)
}

func distinct(companies []domain.Company, field func(domain.Company) string) []string {
	var out []string
	for _, c := range companies {
		if v := field(c); v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
