package workspace

import (
	"slices"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
)

// Snapshot is the serializable state of a workspace.
type Snapshot struct {
	Companies []domain.Company      `json:"companies"`
	Lists     []domain.SavedList    `json:"lists"`
	Alerts    []domain.AlertTrigger `json:"alerts"`
	Selection []string              `json:"selection"`

	PendingDeletion string `json:"pendingDeletion,omitempty"`

	ListSeq  int    `json:"listSeq"`
	AlertSeq int    `json:"alertSeq"`
	Revision uint64 `json:"revision"`
}

// Snapshot captures the current state.
func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := Snapshot{
		Companies:       slices.Clone(w.companies),
		Lists:           make([]domain.SavedList, 0, len(w.lists)),
		Alerts:          make([]domain.AlertTrigger, 0, len(w.alerts)),
		Selection:       slices.Clone(w.selection),
		PendingDeletion: w.pendingDeletion,
		ListSeq:         w.listSeq,
		AlertSeq:        w.alertSeq,
		Revision:        w.revision,
	}
	for _, l := range w.lists {
		snap.Lists = append(snap.Lists, l.Clone())
	}
	for _, a := range w.alerts {
		snap.Alerts = append(snap.Alerts, a.Clone())
	}
	return snap
}

// Restore replaces the whole state with snap. Selected ids that are not in
// the snapshot's companies are dropped, and sequences never move backwards
// past the ids already present.
func (w *Workspace) Restore(snap Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.listSeq, w.alertSeq = 0, 0
	w.setCompanies(snap.Companies)
	w.setLists(snap.Lists)
	w.setAlerts(snap.Alerts)
	w.listSeq = max(w.listSeq, snap.ListSeq)
	w.alertSeq = max(w.alertSeq, snap.AlertSeq)

	w.selection = make([]string, 0, len(snap.Selection))
	for _, id := range snap.Selection {
		if _, ok := w.byID[id]; ok && !slices.Contains(w.selection, id) {
			w.selection = append(w.selection, id)
		}
	}

	w.pendingDeletion = ""
	if slices.ContainsFunc(w.alerts, func(a domain.AlertTrigger) bool { return a.ID == snap.PendingDeletion }) {
		w.pendingDeletion = snap.PendingDeletion
	}
	w.revision = snap.Revision
}
