package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
)

// Receipt acknowledges a list handed to the CRM.
type Receipt struct {
	ID       string    `json:"id"`
	ListID   string    `json:"listId"`
	Exported int       `json:"exported"`
	At       time.Time `json:"at"`
}

// CRMTarget pushes a list of companies into a CRM.
type CRMTarget interface {
	ExportList(ctx context.Context, list domain.SavedList, companies []domain.Company) (Receipt, error)
}

// FileTarget turns a list of companies into a downloadable file.
type FileTarget interface {
	DownloadAsFile(ctx context.Context, list domain.SavedList, companies []domain.Company) (FileHandle, error)
}

// SimulatedCRM accepts every export without calling anything.
type SimulatedCRM struct {
	Now func() time.Time
}

func (c SimulatedCRM) ExportList(ctx context.Context, list domain.SavedList, companies []domain.Company) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return Receipt{
		ID:       uuid.NewString(),
		ListID:   list.ID,
		Exported: len(companies),
		At:       now(),
	}, nil
}

// CSVTarget renders lists as CSV into a FileStore.
type CSVTarget struct {
	store *FileStore
}

// NewCSVTarget creates a target writing into store.
func NewCSVTarget(store *FileStore) *CSVTarget {
	return &CSVTarget{store: store}
}

var csvHeader = []string{
	"Name", "Org number", "Industry", "Sector", "City", "County",
	"Revenue", "Profit", "Employees", "Founded", "Website", "Contact", "Contact email",
}

// DownloadAsFile stores the CSV under the owner carried by ctx.
func (t *CSVTarget) DownloadAsFile(ctx context.Context, list domain.SavedList, companies []domain.Company) (FileHandle, error) {
	if err := ctx.Err(); err != nil {
		return FileHandle{}, err
	}

	data, err := RenderCSV(companies)
	if err != nil {
		return FileHandle{}, fmt.Errorf("render csv for list %s: %w", list.ID, err)
	}
	owner, _ := OwnerFromContext(ctx)
	return t.store.Put(owner, fileName(list.Name), "text/csv; charset=utf-8", data), nil
}

// RenderCSV writes one header row and one row per company.
func RenderCSV(companies []domain.Company) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, c := range companies {
		founded := ""
		if c.FoundedYear != nil {
			founded = strconv.Itoa(*c.FoundedYear)
		}
		contact, email := "", ""
		if len(c.Contacts) > 0 {
			contact, email = c.Contacts[0].Name, c.Contacts[0].Email
		}

		row := []string{
			c.Name,
			c.OrgNumber,
			c.Industry,
			c.Sector,
			c.Location.City,
			c.Location.County,
			strconv.FormatInt(c.Financials.Revenue, 10),
			strconv.FormatInt(c.Financials.Profit, 10),
			strconv.Itoa(c.Financials.Employees),
			founded,
			c.Website,
			contact,
			email,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fileName(listName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, strings.TrimSpace(listName))
	if name == "" {
		name = "list"
	}
	return name + ".csv"
}
