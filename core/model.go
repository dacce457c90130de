package core

import (
	"time"
)

// Node is an entry of the organizational hierarchy owned by the directory service
type Node struct {
	ID       string `json:"id"`
	ParentID string `json:"parentID,omitempty"`
	Level    int    `json:"level"`
	Type     string `json:"type"`
	Name     string `json:"name,omitempty"`
}

// RequestContext carries everything conditions may be evaluated against
type RequestContext struct {
	UserID         string         `json:"userID"`
	OrganizationID string         `json:"organizationID,omitempty"`
	UserRoles      []string       `json:"userRoles,omitempty"`
	UserNodeID     string         `json:"userNodeID,omitempty"`
	Timestamp      *time.Time     `json:"timestamp,omitempty"`
	Location       *Location      `json:"location,omitempty"`
	Resource       *Resource      `json:"resource,omitempty"`
	Attributes     map[string]any `json:"attributes,omitempty"`
}

// Now returns the request timestamp, or the wall clock when none was supplied.
func (rc RequestContext) Now() time.Time {
	if rc.Timestamp != nil {
		return *rc.Timestamp
	}
	return time.Now()
}

type Location struct {
	IP      string `json:"ip,omitempty"`
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
}

type Resource struct {
	ID         string         `json:"id,omitempty"`
	Type       string         `json:"type,omitempty"`
	OwnerID    string         `json:"ownerID,omitempty"`
	State      string         `json:"state,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}
