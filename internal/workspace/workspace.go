// Package workspace is the per-session store of the lead finder.
//
// A Workspace owns the session's company snapshot, its saved lists, its
// alerts and the current selection. Every mutation goes through its methods,
// is validated before anything changes and replaces the affected collection
// wholesale, so slices handed out earlier are never modified.
package workspace

import (
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
	"github.com/MrSnakeDoc/leadscout/internal/logger"
	"github.com/MrSnakeDoc/leadscout/internal/notify"
)

const (
	listIDPrefix  = "list"
	alertIDPrefix = "alert"

	// UnknownListName is displayed for alerts whose list no longer exists.
	UnknownListName = "Unknown list"
)

// Options configures a new workspace.
type Options struct {
	Companies []domain.Company
	Lists     []domain.SavedList
	Alerts    []domain.AlertTrigger

	Sink        notify.Sink
	Log         logger.Logger
	Now         func() time.Time
	UnknownList domain.UnknownListPolicy
	Collation   language.Tag
}

// Workspace is safe for concurrent use.
type Workspace struct {
	mu sync.Mutex

	companies []domain.Company
	byID      map[string]int
	lists     []domain.SavedList
	alerts    []domain.AlertTrigger
	selection []string

	pendingDeletion string

	listSeq  int
	alertSeq int
	revision uint64

	sink      notify.Sink
	log       logger.Logger
	now       func() time.Time
	policy    domain.UnknownListPolicy
	collation language.Tag
}

// New creates a workspace from the given collections. The slices are copied.
func New(opts Options) *Workspace {
	w := &Workspace{
		sink:      opts.Sink,
		log:       opts.Log,
		now:       opts.Now,
		policy:    opts.UnknownList,
		collation: opts.Collation,
	}
	if w.sink == nil {
		w.sink = notify.Discard
	}
	if w.log == nil {
		w.log = logger.Nop()
	}
	if w.now == nil {
		w.now = time.Now
	}
	if w.policy == "" {
		w.policy = domain.UnknownListReject
	}
	if w.collation == language.Und {
		w.collation = domain.DefaultCollation
	}

	w.setCompanies(opts.Companies)
	w.setLists(opts.Lists)
	w.setAlerts(opts.Alerts)
	w.selection = []string{}
	return w
}

func (w *Workspace) setCompanies(companies []domain.Company) {
	w.companies = make([]domain.Company, len(companies))
	copy(w.companies, companies)
	w.byID = make(map[string]int, len(companies))
	for i, c := range companies {
		w.byID[c.ID] = i
	}
}

func (w *Workspace) setLists(lists []domain.SavedList) {
	w.lists = make([]domain.SavedList, 0, len(lists))
	for _, l := range lists {
		w.lists = append(w.lists, l.Clone())
		w.listSeq = max(w.listSeq, idSuffix(l.ID, listIDPrefix))
	}
}

func (w *Workspace) setAlerts(alerts []domain.AlertTrigger) {
	w.alerts = make([]domain.AlertTrigger, 0, len(alerts))
	for _, a := range alerts {
		w.alerts = append(w.alerts, a.Clone())
		w.alertSeq = max(w.alertSeq, idSuffix(a.ID, alertIDPrefix))
	}
}

// Revision increases with every successful mutation.
func (w *Workspace) Revision() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.revision
}

// Companies returns the session's company snapshot in provider order.
func (w *Workspace) Companies() []domain.Company {
	w.mu.Lock()
	defer w.mu.Unlock()

	return slices.Clone(w.companies)
}

// Company looks up one company of the snapshot.
func (w *Workspace) Company(id string) (domain.Company, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i, ok := w.byID[id]
	if !ok {
		return domain.Company{}, domain.ErrCompanyNotFound
	}
	return w.companies[i], nil
}

// Search filters the snapshot with q and orders the result by key.
func (w *Workspace) Search(q domain.SearchQuery, key domain.SortKey) []domain.Company {
	w.mu.Lock()
	companies := w.companies
	w.mu.Unlock()

	result := domain.SortCompanies(domain.FilterCompanies(companies, q), key, w.collation)

	desc := "Refine the filters or add companies to a list."
	if len(result) == 0 {
		desc = "Try widening your search criteria."
	}
	w.emit(domain.SeverityInfo, domain.CountCompanies(len(result))+" found", desc)
	return result
}

// emit stamps a notification with the workspace clock and hands it to the sink.
func (w *Workspace) emit(sev domain.Severity, title, desc string) {
	w.sink.Notify(domain.Notification{
		Title:       title,
		Description: desc,
		Severity:    sev,
		At:          w.now(),
	})
}

func (w *Workspace) fail(err *domain.ValidationError) error {
	w.emit(domain.SeverityError, "Error", err.Message)
	return err
}

// bump must be called with w.mu held.
func (w *Workspace) bump() {
	w.revision++
}

func nextID(prefix string, seq *int) string {
	*seq++
	return prefix + strconv.Itoa(*seq)
}

// idSuffix returns N for ids shaped like prefixN, zero otherwise.
func idSuffix(id, prefix string) int {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
