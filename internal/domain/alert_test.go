package domain

import (
	"errors"
	"testing"
)

func validDraft() AlertDraft {
	return AlertDraft{
		Name:      "New tech companies",
		Type:      TriggerNewCompany,
		ListID:    "list1",
		NotifyVia: []Channel{ChannelEmail},
	}
}

func TestAlertDraftNormalizeDefaults(t *testing.T) {
	a, err := validDraft().Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !a.Enabled {
		t.Error("enabled should default to true")
	}
	if a.Configuration.Frequency != FrequencyImmediately {
		t.Errorf("frequency = %q, want %q", a.Configuration.Frequency, FrequencyImmediately)
	}
	if a.Configuration.Threshold != nil {
		t.Errorf("threshold = %v, want nil for %s", *a.Configuration.Threshold, a.Type)
	}
}

func TestAlertDraftFinancialThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold *int
		want      int
	}{
		{name: "missing threshold defaults", threshold: nil, want: DefaultFinancialThreshold},
		{name: "zero threshold defaults", threshold: intPtr(0), want: DefaultFinancialThreshold},
		{name: "explicit threshold kept", threshold: intPtr(25), want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			d.Type = TriggerFinancialChange
			d.Threshold = tt.threshold

			a, err := d.Normalize()
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if a.Configuration.Threshold == nil || *a.Configuration.Threshold != tt.want {
				t.Errorf("threshold = %v, want %d", a.Configuration.Threshold, tt.want)
			}
		})
	}
}

func TestAlertDraftValidation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(d *AlertDraft)
		field string
	}{
		{name: "blank name", edit: func(d *AlertDraft) { d.Name = "  " }, field: "name"},
		{name: "missing list", edit: func(d *AlertDraft) { d.ListID = "" }, field: "listId"},
		{name: "no channels", edit: func(d *AlertDraft) { d.NotifyVia = nil }, field: "notifyVia"},
		{name: "unknown channel", edit: func(d *AlertDraft) { d.NotifyVia = []Channel{"fax"} }, field: "notifyVia"},
		{name: "unknown type", edit: func(d *AlertDraft) { d.Type = "weather" }, field: "type"},
		{name: "unknown frequency", edit: func(d *AlertDraft) { d.Frequency = "hourly" }, field: "frequency"},
		{name: "threshold too high", edit: func(d *AlertDraft) { d.Threshold = intPtr(101) }, field: "threshold"},
		{name: "negative threshold", edit: func(d *AlertDraft) { d.Threshold = intPtr(-5) }, field: "threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.edit(&d)

			_, err := d.Normalize()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Normalize() error = %v, want ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestAlertDraftCollapsesDuplicateChannels(t *testing.T) {
	d := validDraft()
	d.NotifyVia = []Channel{ChannelEmail, ChannelSlack, ChannelEmail}

	a, err := d.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(a.Configuration.NotifyVia) != 2 {
		t.Errorf("notifyVia = %v, want 2 distinct channels", a.Configuration.NotifyVia)
	}
}

func TestTriggerTypes(t *testing.T) {
	types := TriggerTypes()
	if len(types) != 10 {
		t.Fatalf("TriggerTypes() has %d kinds, want 10", len(types))
	}
	for _, typ := range types {
		if !typ.Valid() || typ.Label() == string(typ) {
			t.Errorf("trigger %q should be valid and labelled", typ)
		}
	}
	if TriggerType("other").Label() != "other" {
		t.Error("unknown trigger should label as its raw value")
	}
}
