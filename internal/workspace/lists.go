package workspace

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
	"github.com/MrSnakeDoc/leadscout/internal/logger"
)

const listNameMessage = "Please enter a name for the list"

// AddResult reports the outcome of adding the selection to a list.
type AddResult struct {
	List  domain.SavedList `json:"list"`
	Added int              `json:"added"`

	// Applied is false when the list was missing and the policy ignored it.
	Applied bool `json:"applied"`
}

// Lists returns the saved lists in creation order.
func (w *Workspace) Lists() []domain.SavedList {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]domain.SavedList, 0, len(w.lists))
	for _, l := range w.lists {
		out = append(out, l.Clone())
	}
	return out
}

// List returns one saved list.
func (w *Workspace) List(id string) (domain.SavedList, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.listIndex(id)
	if i < 0 {
		return domain.SavedList{}, domain.ErrListNotFound
	}
	return w.lists[i].Clone(), nil
}

// ListCompanies resolves the companies of a list in snapshot order.
// Ids without a matching company are skipped.
func (w *Workspace) ListCompanies(id string) ([]domain.Company, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.listIndex(id)
	if i < 0 {
		return nil, domain.ErrListNotFound
	}

	list := w.lists[i]
	out := make([]domain.Company, 0, len(list.CompanyIDs))
	for _, c := range w.companies {
		if list.Contains(c.ID) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListName returns the name of a list, or UnknownListName.
func (w *Workspace) ListName(id string) string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if i := w.listIndex(id); i >= 0 {
		return w.lists[i].Name
	}
	return UnknownListName
}

// SaveAsNewList stores the current selection under a new list and clears
// the selection. A blank name is rejected and nothing changes.
func (w *Workspace) SaveAsNewList(name string) (domain.SavedList, error) {
	if strings.TrimSpace(name) == "" {
		return domain.SavedList{}, w.fail(&domain.ValidationError{Field: "name", Message: listNameMessage})
	}

	w.mu.Lock()
	now := w.now()
	list := domain.SavedList{
		ID:         nextID(listIDPrefix, &w.listSeq),
		Name:       name,
		CompanyIDs: slices.Clone(w.selection),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	list = list.Clone()

	next := make([]domain.SavedList, 0, len(w.lists)+1)
	next = append(next, w.lists...)
	w.lists = append(next, list)
	w.bump()
	w.clearSelection()
	w.mu.Unlock()

	w.emit(domain.SeveritySuccess, "List created",
		fmt.Sprintf("The list %q with %s has been saved.", name, domain.CountCompanies(len(list.CompanyIDs))))
	return list.Clone(), nil
}

// AddToExistingList merges the selection into a list and clears the
// selection. Ids already in the list are not counted again.
//
// A missing list follows the workspace policy: reject returns
// ErrListNotFound, ignore returns a result with Applied false. Neither
// touches the selection.
func (w *Workspace) AddToExistingList(listID string) (AddResult, error) {
	w.mu.Lock()

	i := w.listIndex(listID)
	if i < 0 {
		w.mu.Unlock()
		if w.policy == domain.UnknownListIgnore {
			w.log.Info("Ignoring add to unknown list", logger.String("list_id", listID))
			return AddResult{}, nil
		}
		return AddResult{}, domain.ErrListNotFound
	}

	updated := w.lists[i].Clone()
	merged, added := domain.MergeIDs(updated.CompanyIDs, w.selection)
	updated.CompanyIDs = merged
	updated.UpdatedAt = w.now()

	next := slices.Clone(w.lists)
	next[i] = updated
	w.lists = next
	w.bump()
	w.clearSelection()
	w.mu.Unlock()

	w.emit(domain.SeveritySuccess, "Companies added",
		fmt.Sprintf("%d new %s added to %q.", added, domain.Plural(added, "company was", "companies were"), updated.Name))
	return AddResult{List: updated.Clone(), Added: added, Applied: true}, nil
}

// RenameList changes the name of a list.
func (w *Workspace) RenameList(id, name string) (domain.SavedList, error) {
	if strings.TrimSpace(name) == "" {
		return domain.SavedList{}, w.fail(&domain.ValidationError{Field: "name", Message: listNameMessage})
	}

	w.mu.Lock()
	i := w.listIndex(id)
	if i < 0 {
		w.mu.Unlock()
		return domain.SavedList{}, domain.ErrListNotFound
	}

	updated := w.lists[i].Clone()
	updated.Name = name
	updated.UpdatedAt = w.now()

	next := slices.Clone(w.lists)
	next[i] = updated
	w.lists = next
	w.bump()
	w.mu.Unlock()

	w.emit(domain.SeveritySuccess, "List updated", fmt.Sprintf("The list has been renamed to %q.", name))
	return updated.Clone(), nil
}

// DeleteList removes a list. Alerts watching it are kept and show
// UnknownListName from then on.
func (w *Workspace) DeleteList(id string) error {
	w.mu.Lock()
	i := w.listIndex(id)
	if i < 0 {
		w.mu.Unlock()
		return domain.ErrListNotFound
	}

	w.lists = slices.Delete(slices.Clone(w.lists), i, i+1)
	w.bump()
	w.mu.Unlock()

	w.emit(domain.SeveritySuccess, "List deleted", "The list has been deleted.")
	return nil
}

// listIndex must be called with w.mu held.
func (w *Workspace) listIndex(id string) int {
	return slices.IndexFunc(w.lists, func(l domain.SavedList) bool { return l.ID == id })
}
