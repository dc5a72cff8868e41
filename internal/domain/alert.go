package domain

import (
	"slices"
	"strings"
	"time"
)

// TriggerType is the kind of change an alert watches for.
type TriggerType string

const (
	TriggerNewCompany        TriggerType = "newCompany"
	TriggerFinancialChange   TriggerType = "financialChange"
	TriggerOwnershipChange   TriggerType = "ownershipChange"
	TriggerNewRoles          TriggerType = "newRoles"
	TriggerLeadershipChange  TriggerType = "leadershipChange"
	TriggerAddressChange     TriggerType = "addressChange"
	TriggerWebsiteChange     TriggerType = "websiteChange"
	TriggerNewTenders        TriggerType = "newTenders"
	TriggerCreditScoreChange TriggerType = "creditScoreChange"
	TriggerBankruptcyRisk    TriggerType = "bankruptcyRisk"
)

var triggerLabels = map[TriggerType]string{
	TriggerNewCompany:        "New companies",
	TriggerFinancialChange:   "Financial changes",
	TriggerOwnershipChange:   "Ownership change",
	TriggerNewRoles:          "New roles",
	TriggerLeadershipChange:  "Leadership change",
	TriggerAddressChange:     "Address change",
	TriggerWebsiteChange:     "Website update",
	TriggerNewTenders:        "New tenders",
	TriggerCreditScoreChange: "Credit score change",
	TriggerBankruptcyRisk:    "Bankruptcy risk",
}

// TriggerTypes returns every trigger kind in display order.
func TriggerTypes() []TriggerType {
	return []TriggerType{
		TriggerNewCompany, TriggerFinancialChange, TriggerOwnershipChange,
		TriggerNewRoles, TriggerLeadershipChange, TriggerAddressChange,
		TriggerWebsiteChange, TriggerNewTenders, TriggerCreditScoreChange,
		TriggerBankruptcyRisk,
	}
}

// Valid reports whether t is one of the ten known kinds.
func (t TriggerType) Valid() bool {
	_, ok := triggerLabels[t]
	return ok
}

// Label returns the human readable name, or the raw value when unknown.
func (t TriggerType) Label() string {
	if l, ok := triggerLabels[t]; ok {
		return l
	}
	return string(t)
}

// Channel is a notification target of an alert.
type Channel string

const (
	ChannelEmail   Channel = "email"
	ChannelHubSpot Channel = "hubspot"
	ChannelSlack   Channel = "slack"
)

func (c Channel) Valid() bool {
	return c == ChannelEmail || c == ChannelHubSpot || c == ChannelSlack
}

// Frequency is how often matched changes are delivered.
type Frequency string

const (
	FrequencyImmediately Frequency = "immediately"
	FrequencyDaily       Frequency = "daily"
	FrequencyWeekly      Frequency = "weekly"
)

func (f Frequency) Valid() bool {
	return f == FrequencyImmediately || f == FrequencyDaily || f == FrequencyWeekly
}

const (
	// DefaultFinancialThreshold applies to financial-change alerts saved
	// without a threshold.
	DefaultFinancialThreshold = 10

	MinThreshold = 1
	MaxThreshold = 100

	// CopySuffix is appended to the name of a duplicated alert.
	CopySuffix = " (copy)"
)

// AlertConfiguration holds the delivery settings of an alert.
type AlertConfiguration struct {
	// Threshold is a percentage in [1,100]; nil when not applicable.
	Threshold *int      `json:"threshold,omitempty"`
	NotifyVia []Channel `json:"notifyVia"`
	Frequency Frequency `json:"frequency"`
}

// AlertTrigger watches a saved list for one kind of change.
type AlertTrigger struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Type          TriggerType        `json:"type"`
	ListID        string             `json:"listId"`
	Enabled       bool               `json:"enabled"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastTriggered *time.Time         `json:"lastTriggered,omitempty"`
	Configuration AlertConfiguration `json:"configuration"`
}

// Clone returns a deep copy of a.
func (a AlertTrigger) Clone() AlertTrigger {
	a.Configuration.NotifyVia = slices.Clone(a.Configuration.NotifyVia)
	if a.Configuration.Threshold != nil {
		v := *a.Configuration.Threshold
		a.Configuration.Threshold = &v
	}
	if a.LastTriggered != nil {
		v := *a.LastTriggered
		a.LastTriggered = &v
	}
	return a
}

// AlertDraft is the user-editable part of an alert.
type AlertDraft struct {
	Name      string      `json:"name"`
	Type      TriggerType `json:"type"`
	ListID    string      `json:"listId"`
	Enabled   *bool       `json:"enabled,omitempty"`
	Threshold *int        `json:"threshold,omitempty"`
	NotifyVia []Channel   `json:"notifyVia"`
	Frequency Frequency   `json:"frequency,omitempty"`
}

// Normalize validates the draft and returns the resulting alert fields.
// The returned alert has no id or timestamps.
func (d AlertDraft) Normalize() (AlertTrigger, error) {
	if strings.TrimSpace(d.Name) == "" {
		return AlertTrigger{}, &ValidationError{Field: "name", Message: "Please enter a name for the alert"}
	}
	if strings.TrimSpace(d.ListID) == "" {
		return AlertTrigger{}, &ValidationError{Field: "listId", Message: "Please choose a list to monitor"}
	}
	if len(d.NotifyVia) == 0 {
		return AlertTrigger{}, &ValidationError{Field: "notifyVia", Message: "Choose at least one notification channel"}
	}

	typ := d.Type
	if typ == "" {
		typ = TriggerNewCompany
	}
	if !typ.Valid() {
		return AlertTrigger{}, &ValidationError{Field: "type", Message: "unknown trigger type " + string(typ)}
	}

	freq := d.Frequency
	if freq == "" {
		freq = FrequencyImmediately
	}
	if !freq.Valid() {
		return AlertTrigger{}, &ValidationError{Field: "frequency", Message: "unknown frequency " + string(freq)}
	}

	channels := make([]Channel, 0, len(d.NotifyVia))
	for _, c := range d.NotifyVia {
		if !c.Valid() {
			return AlertTrigger{}, &ValidationError{Field: "notifyVia", Message: "unknown notification channel " + string(c)}
		}
		if !slices.Contains(channels, c) {
			channels = append(channels, c)
		}
	}

	// Zero is treated as "not supplied".
	var threshold *int
	if d.Threshold != nil && *d.Threshold != 0 {
		if *d.Threshold < MinThreshold || *d.Threshold > MaxThreshold {
			return AlertTrigger{}, &ValidationError{Field: "threshold", Message: "Threshold must be between 1 and 100"}
		}
		v := *d.Threshold
		threshold = &v
	}
	if typ == TriggerFinancialChange && threshold == nil {
		v := DefaultFinancialThreshold
		threshold = &v
	}

	enabled := true
	if d.Enabled != nil {
		enabled = *d.Enabled
	}

	return AlertTrigger{
		Name:    d.Name,
		Type:    typ,
		ListID:  d.ListID,
		Enabled: enabled,
		Configuration: AlertConfiguration{
			Threshold: threshold,
			NotifyVia: channels,
			Frequency: freq,
		},
	}, nil
}
