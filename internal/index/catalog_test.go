package index

import (
	"sync"
	"testing"

	"github.com/MrSnakeDoc/leadscout/internal/dataset"
	"github.com/MrSnakeDoc/leadscout/internal/domain"
)

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Facets: domain.Facets{Industries: []string{"Energi"}, Counties: []string{"Oslo"}},
		Companies: []domain.Company{
			{ID: "1", Name: "TechNorge AS"},
			{ID: "2", Name: "Bygg Partner Norge AS"},
		},
		Lists: []domain.SavedList{
			{ID: "list1", Name: "Tech", CompanyIDs: []string{"1"}},
		},
		Alerts: []domain.AlertTrigger{
			{ID: "alert1", Name: "Watch", ListID: "list1", Configuration: domain.AlertConfiguration{NotifyVia: []domain.Channel{domain.ChannelEmail}}},
		},
	}
}

func TestNewCatalog(t *testing.T) {
	catalog := NewCatalog()
	if catalog == nil {
		t.Fatal("NewCatalog() returned nil")
	}
	if catalog.Count() != 0 {
		t.Errorf("NewCatalog() should start empty, got %v", catalog.Count())
	}
	if !catalog.GetLastReload().IsZero() {
		t.Error("NewCatalog() should never have been reloaded")
	}
}

func TestReplace(t *testing.T) {
	catalog := NewCatalog()
	catalog.Replace(testDataset(), "embedded")

	if catalog.Count() != 2 {
		t.Errorf("Replace() stored %v companies, want 2", catalog.Count())
	}
	if catalog.Source() != "embedded" {
		t.Errorf("Source() = %q", catalog.Source())
	}
	if catalog.GetLastReload().IsZero() {
		t.Error("Replace() should record the reload time")
	}

	c, ok := catalog.Company("2")
	if !ok || c.Name != "Bygg Partner Norge AS" {
		t.Errorf("Company(2) = %+v, %v", c, ok)
	}
	if _, ok := catalog.Company("99"); ok {
		t.Error("Company(99) should not exist")
	}
}

func TestReplaceOverwrites(t *testing.T) {
	catalog := NewCatalog()
	catalog.Replace(testDataset(), "embedded")
	catalog.Replace(&dataset.Dataset{Companies: []domain.Company{{ID: "9", Name: "Nine"}}}, "/data/leads.yaml")

	if catalog.Count() != 1 {
		t.Errorf("Replace() should overwrite, got %v companies want 1", catalog.Count())
	}
	if _, ok := catalog.Company("1"); ok {
		t.Error("old company should be gone after Replace()")
	}
}

func TestCompaniesKeepsOrder(t *testing.T) {
	catalog := NewCatalog()
	catalog.Replace(testDataset(), "embedded")

	got := domain.CompanyIDs(catalog.Companies())
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("Companies() order = %v, want [1 2]", got)
	}
}

func TestSeedReturnsCopies(t *testing.T) {
	catalog := NewCatalog()
	catalog.Replace(testDataset(), "embedded")

	lists, alerts := catalog.Seed()
	lists[0].CompanyIDs[0] = "changed"
	alerts[0].Configuration.NotifyVia[0] = domain.ChannelSlack

	lists2, alerts2 := catalog.Seed()
	if lists2[0].CompanyIDs[0] != "1" {
		t.Error("Seed() lists share memory with the catalog")
	}
	if alerts2[0].Configuration.NotifyVia[0] != domain.ChannelEmail {
		t.Error("Seed() alerts share memory with the catalog")
	}
}

func TestConcurrentAccess(t *testing.T) {
	catalog := NewCatalog()
	catalog.Replace(testDataset(), "embedded")

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = catalog.Companies()
			_, _ = catalog.Seed()
		}()
		go func() {
			defer wg.Done()
			catalog.Replace(testDataset(), "embedded")
		}()
	}
	wg.Wait()

	if catalog.Count() != 2 {
		t.Errorf("Count() after concurrent replace = %v, want 2", catalog.Count())
	}
}
