package dataset

// File is the top-level structure of a dataset yaml document.
type File struct {
	Facets    FacetsProps    `yaml:"facets"`
	Companies []CompanyProps `yaml:"companies"`
	Lists     []ListProps    `yaml:"lists"`
	Alerts    []AlertProps   `yaml:"alerts"`
}

type FacetsProps struct {
	Industries []string `yaml:"industries"`
	Counties   []string `yaml:"counties"`
}

type CompanyProps struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	OrgNumber   string          `yaml:"orgNumber"`
	Industry    string          `yaml:"industry"`
	Sector      string          `yaml:"sector,omitempty"`
	Location    LocationProps   `yaml:"location"`
	Financials  FinancialsProps `yaml:"financials"`
	Contacts    []ContactProps  `yaml:"contacts,omitempty"`
	FoundedYear *int            `yaml:"foundedYear,omitempty"`
	Website     string          `yaml:"website,omitempty"`
	Description string          `yaml:"description,omitempty"`
}

type LocationProps struct {
	City       string `yaml:"city"`
	County     string `yaml:"county"`
	Address    string `yaml:"address,omitempty"`
	PostalCode string `yaml:"postalCode,omitempty"`
}

type FinancialsProps struct {
	Revenue   int64 `yaml:"revenue"`
	Profit    int64 `yaml:"profit"`
	Assets    int64 `yaml:"assets"`
	Employees int   `yaml:"employees"`
	Year      int   `yaml:"year"`
}

type ContactProps struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Email    string `yaml:"email,omitempty"`
	Phone    string `yaml:"phone,omitempty"`
	LinkedIn string `yaml:"linkedin,omitempty"`
}

type ListProps struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	CompanyIDs []string `yaml:"companyIds"`
	CreatedAt  string   `yaml:"createdAt"`
	UpdatedAt  string   `yaml:"updatedAt,omitempty"`
}

type AlertProps struct {
	ID            string             `yaml:"id"`
	Name          string             `yaml:"name"`
	Type          string             `yaml:"type"`
	ListID        string             `yaml:"listId"`
	Enabled       *bool              `yaml:"enabled,omitempty"`
	CreatedAt     string             `yaml:"createdAt"`
	LastTriggered string             `yaml:"lastTriggered,omitempty"`
	Configuration AlertConfigProps `yaml:"configuration"`
}

type AlertConfigProps struct {
	Threshold *int     `yaml:"threshold,omitempty"`
	NotifyVia []string `yaml:"notifyVia"`
	Frequency string   `yaml:"frequency,omitempty"`
}
