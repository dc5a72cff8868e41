package workspace

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
)

// Alerts returns the alerts in creation order.
func (w *Workspace) Alerts() []domain.AlertTrigger {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]domain.AlertTrigger, 0, len(w.alerts))
	for _, a := range w.alerts {
		out = append(out, a.Clone())
	}
	return out
}

// Alert returns one alert.
func (w *Workspace) Alert(id string) (domain.AlertTrigger, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.alertIndex(id)
	if i < 0 {
		return domain.AlertTrigger{}, domain.ErrAlertNotFound
	}
	return w.alerts[i].Clone(), nil
}

// CreateAlert validates a draft and stores it as a new alert.
func (w *Workspace) CreateAlert(draft domain.AlertDraft) (domain.AlertTrigger, error) {
	alert, err := w.normalize(draft)
	if err != nil {
		return domain.AlertTrigger{}, err
	}

	w.mu.Lock()
	alert.ID = nextID(alertIDPrefix, &w.alertSeq)
	alert.CreatedAt = w.now()

	next := make([]domain.AlertTrigger, 0, len(w.alerts)+1)
	next = append(next, w.alerts...)
	w.alerts = append(next, alert)
	w.bump()
	w.mu.Unlock()

	w.emit(domain.SeveritySuccess, "Alert created", fmt.Sprintf("New alert %q is now active.", alert.Name))
	return alert.Clone(), nil
}

// UpdateAlert replaces the editable fields of an alert. Id, creation time
// and last trigger time are kept.
func (w *Workspace) UpdateAlert(id string, draft domain.AlertDraft) (domain.AlertTrigger, error) {
	alert, err := w.normalize(draft)
	if err != nil {
		return domain.AlertTrigger{}, err
	}

	w.mu.Lock()
	i := w.alertIndex(id)
	if i < 0 {
		w.mu.Unlock()
		return domain.AlertTrigger{}, domain.ErrAlertNotFound
	}

	prev := w.alerts[i]
	alert.ID = prev.ID
	alert.CreatedAt = prev.CreatedAt
	alert.LastTriggered = prev.Clone().LastTriggered

	next := slices.Clone(w.alerts)
	next[i] = alert
	w.alerts = next
	w.bump()
	w.mu.Unlock()

	w.emit(domain.SeveritySuccess, "Alert updated", fmt.Sprintf("The alert %q has been updated.", alert.Name))
	return alert.Clone(), nil
}

// ToggleAlert sets the enabled flag and nothing else.
func (w *Workspace) ToggleAlert(id string, enabled bool) (domain.AlertTrigger, error) {
	w.mu.Lock()
	i := w.alertIndex(id)
	if i < 0 {
		w.mu.Unlock()
		return domain.AlertTrigger{}, domain.ErrAlertNotFound
	}

	updated := w.alerts[i].Clone()
	updated.Enabled = enabled

	next := slices.Clone(w.alerts)
	next[i] = updated
	w.alerts = next
	w.bump()
	w.mu.Unlock()

	if enabled {
		w.emit(domain.SeveritySuccess, "Alert enabled", "The alert is now active.")
	} else {
		w.emit(domain.SeveritySuccess, "Alert disabled", "The alert is now inactive.")
	}
	return updated.Clone(), nil
}

// DuplicateAlert stores a copy of an alert under a fresh id. The copy is
// created now and has never triggered.
func (w *Workspace) DuplicateAlert(id string) (domain.AlertTrigger, error) {
	w.mu.Lock()
	i := w.alertIndex(id)
	if i < 0 {
		w.mu.Unlock()
		return domain.AlertTrigger{}, domain.ErrAlertNotFound
	}

	original := w.alerts[i]
	dup := original.Clone()
	dup.ID = nextID(alertIDPrefix, &w.alertSeq)
	dup.Name = original.Name + domain.CopySuffix
	dup.CreatedAt = w.now()
	dup.LastTriggered = nil

	next := make([]domain.AlertTrigger, 0, len(w.alerts)+1)
	next = append(next, w.alerts...)
	w.alerts = append(next, dup)
	w.bump()
	w.mu.Unlock()

	w.emit(domain.SeveritySuccess, "Alert duplicated", fmt.Sprintf("A copy of %q has been created.", original.Name))
	return dup.Clone(), nil
}

// RequestAlertDeletion marks an alert for deletion. Nothing is removed
// until ConfirmAlertDeletion.
func (w *Workspace) RequestAlertDeletion(id string) (domain.AlertTrigger, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.alertIndex(id)
	if i < 0 {
		return domain.AlertTrigger{}, domain.ErrAlertNotFound
	}
	if w.pendingDeletion != id {
		w.pendingDeletion = id
		w.bump()
	}
	return w.alerts[i].Clone(), nil
}

// PendingDeletion returns the id marked for deletion, if any.
func (w *Workspace) PendingDeletion() (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.pendingDeletion, w.pendingDeletion != ""
}

// CancelAlertDeletion clears the deletion mark.
func (w *Workspace) CancelAlertDeletion() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pendingDeletion != "" {
		w.pendingDeletion = ""
		w.bump()
	}
}

// ConfirmAlertDeletion removes the alert marked for deletion.
func (w *Workspace) ConfirmAlertDeletion() (domain.AlertTrigger, error) {
	w.mu.Lock()
	id := w.pendingDeletion
	if id == "" {
		w.mu.Unlock()
		return domain.AlertTrigger{}, domain.ErrNoPendingDeletion
	}
	w.pendingDeletion = ""

	i := w.alertIndex(id)
	if i < 0 {
		w.bump()
		w.mu.Unlock()
		return domain.AlertTrigger{}, domain.ErrAlertNotFound
	}

	removed := w.alerts[i]
	w.alerts = slices.Delete(slices.Clone(w.alerts), i, i+1)
	w.bump()
	w.mu.Unlock()

	w.emit(domain.SeveritySuccess, "Alert deleted", fmt.Sprintf("The alert %q has been deleted.", removed.Name))
	return removed.Clone(), nil
}

func (w *Workspace) normalize(draft domain.AlertDraft) (domain.AlertTrigger, error) {
	alert, err := draft.Normalize()
	if err == nil {
		return alert, nil
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return domain.AlertTrigger{}, w.fail(ve)
	}
	return domain.AlertTrigger{}, err
}

// alertIndex must be called with w.mu held.
func (w *Workspace) alertIndex(id string) int {
	return slices.IndexFunc(w.alerts, func(a domain.AlertTrigger) bool { return a.ID == id })
}
