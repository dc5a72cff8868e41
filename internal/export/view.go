package export

import (
	"slices"
	"sync"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
)

// State is what the export view shows.
type State struct {
	Open         bool              `json:"open"`
	List         *domain.SavedList `json:"list,omitempty"`
	CompanyCount int               `json:"companyCount"`

	CRMInFlight       int `json:"crmInFlight"`
	DownloadsInFlight int `json:"downloadsInFlight"`

	// LastReceipt and LastFile are set when the matching path completes.
	LastReceipt string `json:"lastReceipt,omitempty"`
	LastFile    string `json:"lastFile,omitempty"`
}

// View is the per-session export panel. At most one list is shown at a time.
type View struct {
	mu        sync.Mutex
	state     State
	companies []domain.Company

	// gen changes on every Open so late timers can tell the view moved on.
	gen uint64

	// owner tags the files rendered from this view.
	owner string
}

// NewView returns a closed view whose downloads belong to owner.
func NewView(owner string) *View {
	return &View{owner: owner}
}

// Open shows list with its resolved companies, replacing whatever was shown.
func (v *View) Open(list domain.SavedList, companies []domain.Company) {
	v.mu.Lock()
	defer v.mu.Unlock()

	l := list.Clone()
	v.gen++
	v.companies = slices.Clone(companies)
	v.state = State{
		Open:              true,
		List:              &l,
		CompanyCount:      len(companies),
		CRMInFlight:       v.state.CRMInFlight,
		DownloadsInFlight: v.state.DownloadsInFlight,
	}
}

// Close hides the view. Running exports still complete.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.close()
}

func (v *View) close() {
	v.state.Open = false
	v.state.List = nil
	v.state.CompanyCount = 0
	v.companies = nil
}

// State returns a copy of the current state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := v.state
	if s.List != nil {
		l := s.List.Clone()
		s.List = &l
	}
	return s
}

type job struct {
	list      domain.SavedList
	companies []domain.Company
	gen       uint64
	owner     string
}

func (v *View) begin(crm bool) (job, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.state.Open || v.state.List == nil {
		return job{}, ErrNoExportView
	}
	if crm {
		v.state.CRMInFlight++
	} else {
		v.state.DownloadsInFlight++
	}
	return job{list: v.state.List.Clone(), companies: slices.Clone(v.companies), gen: v.gen, owner: v.owner}, nil
}

// finishCRM records a completed CRM export and closes the view, unless it
// was reopened on another list meanwhile. A failed export leaves it open.
func (v *View) finishCRM(j job, receipt string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.CRMInFlight--
	if receipt == "" {
		return
	}
	v.state.LastReceipt = receipt
	if v.gen == j.gen {
		v.close()
	}
}

func (v *View) finishDownload(file string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.DownloadsInFlight--
	if file != "" {
		v.state.LastFile = file
	}
}
