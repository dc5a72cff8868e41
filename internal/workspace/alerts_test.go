package workspace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
)

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func draft(name string) domain.AlertDraft {
	return domain.AlertDraft{
		Name:      name,
		Type:      domain.TriggerNewCompany,
		ListID:    "list4",
		NotifyVia: []domain.Channel{domain.ChannelEmail},
	}
}

func seededAlert() domain.AlertTrigger {
	triggered := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	return domain.AlertTrigger{
		ID:            "alert2",
		Name:          "Revenue watch",
		Type:          domain.TriggerFinancialChange,
		ListID:        "list4",
		Enabled:       true,
		CreatedAt:     time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		LastTriggered: &triggered,
		Configuration: domain.AlertConfiguration{
			Threshold: intPtr(15),
			NotifyVia: []domain.Channel{domain.ChannelEmail, domain.ChannelSlack},
			Frequency: domain.FrequencyDaily,
		},
	}
}

func withSeededAlert(o *Options) {
	o.Lists = []domain.SavedList{seededList()}
	o.Alerts = []domain.AlertTrigger{seededAlert()}
}

func TestCreateAlert(t *testing.T) {
	f := newFixture(t, withSeededAlert)

	a, err := f.ws.CreateAlert(draft("New in Oslo"))
	require.NoError(t, err)

	assert.Equal(t, "alert3", a.ID)
	assert.True(t, a.Enabled)
	assert.Nil(t, a.Configuration.Threshold)
	assert.Equal(t, domain.FrequencyImmediately, a.Configuration.Frequency)
	assert.Equal(t, f.clock.Now(), a.CreatedAt)
	assert.Nil(t, a.LastTriggered)
	assert.Len(t, f.ws.Alerts(), 2)

	n := f.last(t)
	assert.Equal(t, "Alert created", n.Title)
	assert.Equal(t, `New alert "New in Oslo" is now active.`, n.Description)
}

func TestCreateAlertFinancialThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold *int
		want      int
	}{
		{name: "default", threshold: nil, want: domain.DefaultFinancialThreshold},
		{name: "explicit", threshold: intPtr(25), want: 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			d := draft("Money")
			d.Type = domain.TriggerFinancialChange
			d.Threshold = tt.threshold

			a, err := f.ws.CreateAlert(d)
			require.NoError(t, err)
			require.NotNil(t, a.Configuration.Threshold)
			assert.Equal(t, tt.want, *a.Configuration.Threshold)
		})
	}
}

func TestCreateAlertValidationIsAllOrNothing(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*domain.AlertDraft)
		field string
	}{
		{name: "blank name", edit: func(d *domain.AlertDraft) { d.Name = " " }, field: "name"},
		{name: "no list", edit: func(d *domain.AlertDraft) { d.ListID = "" }, field: "listId"},
		{name: "no channel", edit: func(d *domain.AlertDraft) { d.NotifyVia = nil }, field: "notifyVia"},
		{name: "bad threshold", edit: func(d *domain.AlertDraft) { d.Threshold = intPtr(101) }, field: "threshold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, withSeededAlert)
			d := draft("x")
			tt.edit(&d)

			_, err := f.ws.CreateAlert(d)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Len(t, f.ws.Alerts(), 1)
			assert.Equal(t, domain.SeverityError, f.last(t).Severity)
		})
	}
}

func TestUpdateAlertPreservesIdentity(t *testing.T) {
	f := newFixture(t, withSeededAlert)
	f.clock.Advance(24 * time.Hour)

	d := draft("Renamed")
	d.Type = domain.TriggerWebsiteChange
	d.Enabled = boolPtr(false)
	d.Frequency = domain.FrequencyWeekly

	a, err := f.ws.UpdateAlert("alert2", d)
	require.NoError(t, err)

	orig := seededAlert()
	assert.Equal(t, orig.ID, a.ID)
	assert.Equal(t, orig.CreatedAt, a.CreatedAt)
	require.NotNil(t, a.LastTriggered)
	assert.Equal(t, *orig.LastTriggered, *a.LastTriggered)

	assert.Equal(t, "Renamed", a.Name)
	assert.Equal(t, domain.TriggerWebsiteChange, a.Type)
	assert.False(t, a.Enabled)
	assert.Nil(t, a.Configuration.Threshold)
	assert.Equal(t, []domain.Channel{domain.ChannelEmail}, a.Configuration.NotifyVia)
	assert.Equal(t, domain.FrequencyWeekly, a.Configuration.Frequency)
	assert.Equal(t, `The alert "Renamed" has been updated.`, f.last(t).Description)
}

func TestUpdateAlertErrors(t *testing.T) {
	f := newFixture(t, withSeededAlert)

	_, err := f.ws.UpdateAlert("alert9", draft("x"))
	assert.ErrorIs(t, err, domain.ErrAlertNotFound)

	_, err = f.ws.UpdateAlert("alert2", draft(""))
	assert.True(t, domain.IsValidation(err))

	got, err := f.ws.Alert("alert2")
	require.NoError(t, err)
	assert.Equal(t, "Revenue watch", got.Name)
}

func TestToggleAlert(t *testing.T) {
	f := newFixture(t, withSeededAlert)

	a, err := f.ws.ToggleAlert("alert2", false)
	require.NoError(t, err)
	assert.False(t, a.Enabled)
	assert.Equal(t, "Alert disabled", f.last(t).Title)

	orig := seededAlert()
	assert.Equal(t, orig.Name, a.Name)
	assert.Equal(t, orig.Configuration.Threshold, a.Configuration.Threshold)

	a, err = f.ws.ToggleAlert("alert2", true)
	require.NoError(t, err)
	assert.True(t, a.Enabled)
	assert.Equal(t, "The alert is now active.", f.last(t).Description)

	_, err = f.ws.ToggleAlert("alert9", true)
	assert.ErrorIs(t, err, domain.ErrAlertNotFound)
}

func TestDuplicateAlert(t *testing.T) {
	f := newFixture(t, withSeededAlert)
	f.clock.Advance(time.Hour)

	dup, err := f.ws.DuplicateAlert("alert2")
	require.NoError(t, err)

	orig := seededAlert()
	assert.NotEqual(t, orig.ID, dup.ID)
	assert.Equal(t, "Revenue watch (copy)", dup.Name)
	assert.Equal(t, f.clock.Now(), dup.CreatedAt)
	assert.Nil(t, dup.LastTriggered)
	assert.Equal(t, orig.Configuration, dup.Configuration)
	assert.Equal(t, orig.ListID, dup.ListID)
	assert.Equal(t, `A copy of "Revenue watch" has been created.`, f.last(t).Description)

	// The copy does not share configuration storage with the original.
	dup.Configuration.NotifyVia[0] = domain.ChannelHubSpot
	got, err := f.ws.Alert("alert2")
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelEmail, got.Configuration.NotifyVia[0])
}

func TestAlertDeletionIsTwoStep(t *testing.T) {
	f := newFixture(t, withSeededAlert)

	_, err := f.ws.ConfirmAlertDeletion()
	require.ErrorIs(t, err, domain.ErrNoPendingDeletion)

	_, err = f.ws.RequestAlertDeletion("alert9")
	require.ErrorIs(t, err, domain.ErrAlertNotFound)

	_, err = f.ws.RequestAlertDeletion("alert2")
	require.NoError(t, err)
	assert.Len(t, f.ws.Alerts(), 1)
	id, ok := f.ws.PendingDeletion()
	assert.True(t, ok)
	assert.Equal(t, "alert2", id)

	f.ws.CancelAlertDeletion()
	_, ok = f.ws.PendingDeletion()
	assert.False(t, ok)
	_, err = f.ws.ConfirmAlertDeletion()
	require.ErrorIs(t, err, domain.ErrNoPendingDeletion)

	_, err = f.ws.RequestAlertDeletion("alert2")
	require.NoError(t, err)
	removed, err := f.ws.ConfirmAlertDeletion()
	require.NoError(t, err)
	assert.Equal(t, "alert2", removed.ID)
	assert.Empty(t, f.ws.Alerts())
	assert.Equal(t, `The alert "Revenue watch" has been deleted.`, f.last(t).Description)

	_, err = f.ws.ConfirmAlertDeletion()
	assert.ErrorIs(t, err, domain.ErrNoPendingDeletion)
}
