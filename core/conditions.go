package core

import (
	"encoding/json"
	"time"
)

// Conditions is the conditional applicability of a permission.
// Every clause is optional; an empty document is unconditional.
type Conditions struct {
	Operator  LogicalOperator  `json:"operator,omitempty"`
	Time      *TimeClause      `json:"time,omitempty"`
	Location  *LocationClause  `json:"location,omitempty"`
	Hierarchy *HierarchyClause `json:"hierarchy,omitempty"`
	Resource  *ResourceClause  `json:"resource,omitempty"`
	Custom    *CustomClause    `json:"custom,omitempty"`
	Overrides *OverrideRecord  `json:"overrides,omitempty"`
}

// IsEmpty reports whether no evaluable clause is present.
// The overrides record is bookkeeping and does not count.
func (c *Conditions) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Time == nil && c.Location == nil && c.Hierarchy == nil && c.Resource == nil && c.Custom == nil
}

type TimeClause struct {
	StartTime  string     `json:"start_time,omitempty"` // HH:MM
	EndTime    string     `json:"end_time,omitempty"`   // HH:MM
	DaysOfWeek []int      `json:"days_of_week,omitempty"`
	DateRange  *DateRange `json:"date_range,omitempty"`
	Timezone   string     `json:"timezone,omitempty"`
}

type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

type LocationClause struct {
	AllowedIPs       []string `json:"allowed_ips,omitempty"`
	BlockedIPs       []string `json:"blocked_ips,omitempty"`
	AllowedCountries []string `json:"allowed_countries,omitempty"`
	AllowedRegions   []string `json:"allowed_regions,omitempty"`
}

type HierarchyClause struct {
	MinLevel           *int     `json:"min_level,omitempty"`
	MaxLevel           *int     `json:"max_level,omitempty"`
	AllowedNodes       []string `json:"allowed_nodes,omitempty"`
	BlockedNodes       []string `json:"blocked_nodes,omitempty"`
	AllowedDepartments []string `json:"allowed_departments,omitempty"`
}

type ResourceClause struct {
	OwnerOnly     bool             `json:"owner_only,omitempty"`
	Attributes    map[string][]any `json:"attributes,omitempty"`
	AllowedStates []string         `json:"allowed_states,omitempty"`
}

// CustomClause names an external hook. Exactly one of Script or Endpoint is expected.
type CustomClause struct {
	Script   string         `json:"script,omitempty"`
	Endpoint string         `json:"endpoint,omitempty"`
	Params   map[string]any `json:"params,omitempty"`
}

type OverrideRecord struct {
	ParentID       string `json:"parent_id"`
	OriginalEffect Effect `json:"original_effect"`
	Reason         string `json:"reason"`
}

// ToMap converts conditions into their json field map.
func (c Conditions) ToMap() (map[string]any, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	err = json.Unmarshal(b, &m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ConditionsFromMap is the inverse of ToMap.
func ConditionsFromMap(m map[string]any) (Conditions, error) {
	var c Conditions
	b, err := json.Marshal(m)
	if err != nil {
		return c, err
	}
	err = json.Unmarshal(b, &c)
	return c, err
}
