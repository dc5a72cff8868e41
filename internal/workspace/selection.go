package workspace

import (
	"slices"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
)

// Select adds a company to the selection. Selecting twice is a no-op.
func (w *Workspace) Select(companyID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.byID[companyID]; !ok {
		return domain.ErrCompanyNotFound
	}
	if slices.Contains(w.selection, companyID) {
		return nil
	}

	next := make([]string, 0, len(w.selection)+1)
	next = append(next, w.selection...)
	w.selection = append(next, companyID)
	w.bump()
	return nil
}

// Unselect removes a company from the selection. Unknown ids are ignored.
func (w *Workspace) Unselect(companyID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !slices.Contains(w.selection, companyID) {
		return
	}
	w.selection = slices.DeleteFunc(slices.Clone(w.selection), func(id string) bool {
		return id == companyID
	})
	w.bump()
}

// Selection returns the selected ids in selection order.
func (w *Workspace) Selection() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return slices.Clone(w.selection)
}

// ClearSelection empties the selection.
func (w *Workspace) ClearSelection() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.clearSelection()
}

func (w *Workspace) clearSelection() {
	if len(w.selection) == 0 {
		return
	}
	w.selection = []string{}
	w.bump()
}
