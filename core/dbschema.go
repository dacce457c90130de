package core

import (
	"time"

	"gorm.io/datatypes"
)

// Permission is the unit of policy
// mutable, soft-deactivated
type Permission struct {
	ID             string            `json:"id" gorm:"primaryKey;type:char(20)"`
	OrganizationID string            `json:"organizationID" gorm:"type:text;not null;index:idx_permission_lookup,priority:1"`
	RoleID         *string           `json:"roleID,omitempty" gorm:"type:text;index"`
	UserID         *string           `json:"userID,omitempty" gorm:"type:text;index"`
	NodeID         *string           `json:"nodeID,omitempty" gorm:"type:text;index"`
	ResourceType   string            `json:"resourceType" gorm:"type:text;not null;index:idx_permission_lookup,priority:2"`
	Action         string            `json:"action" gorm:"type:text;not null;index:idx_permission_lookup,priority:3"`
	Effect         Effect            `json:"effect" gorm:"type:text;not null"`
	Priority       int               `json:"priority" gorm:"type:integer;not null;default:0"`
	Conditions     Conditions        `json:"conditions" gorm:"type:json;serializer:json"`
	Template       bool              `json:"template" gorm:"type:boolean;default:false"`
	Active         bool              `json:"active" gorm:"type:boolean;not null"`
	EffectiveFrom  time.Time         `json:"effectiveFrom" gorm:"type:timestamp with time zone;not null"`
	EffectiveTo    *time.Time        `json:"effectiveTo,omitempty" gorm:"type:timestamp with time zone"`
	Metadata       datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:json"`
	CreatedBy      string            `json:"createdBy" gorm:"type:text"`
	UpdatedBy      string            `json:"updatedBy" gorm:"type:text"`
	CDate          time.Time         `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate          time.Time         `json:"mdate" gorm:"autoUpdateTime"`
}

// IsEffectiveAt reports whether the permission is active and inside its lifecycle window at t.
func (p Permission) IsEffectiveAt(t time.Time) bool {
	if !p.Active {
		return false
	}
	if t.Before(p.EffectiveFrom) {
		return false
	}
	if p.EffectiveTo != nil && t.After(*p.EffectiveTo) {
		return false
	}
	return true
}

// IsGlobal reports whether the permission has no role, user or node scope.
func (p Permission) IsGlobal() bool {
	return p.RoleID == nil && p.UserID == nil && p.NodeID == nil
}

// PermissionInheritance is a directed parent -> child edge between permissions
// mutable, soft-deactivated
type PermissionInheritance struct {
	ID            string                   `json:"id" gorm:"primaryKey;type:char(20)"`
	ParentID      string                   `json:"parentID" gorm:"type:char(20);not null;index;uniqueIndex:idx_active_inheritance_pair,where:active = true"`
	ChildID       string                   `json:"childID" gorm:"type:char(20);not null;index;uniqueIndex:idx_active_inheritance_pair,where:active = true"`
	Type          InheritanceType          `json:"type" gorm:"type:text;not null"`
	Weight        *float64                 `json:"weight,omitempty" gorm:"type:double precision;default:0.1"`
	Conditions    map[string]MergeStrategy `json:"conditions,omitempty" gorm:"type:json;serializer:json"`
	MaxDepth      int                      `json:"maxDepth" gorm:"type:integer;not null;default:10"`
	Reason        string                   `json:"reason,omitempty" gorm:"type:text"`
	Active        bool                     `json:"active" gorm:"type:boolean;not null"`
	EffectiveFrom time.Time                `json:"effectiveFrom" gorm:"type:timestamp with time zone;not null"`
	EffectiveTo   *time.Time               `json:"effectiveTo,omitempty" gorm:"type:timestamp with time zone"`
	CreatedBy     string                   `json:"createdBy" gorm:"type:text"`
	UpdatedBy     string                   `json:"updatedBy" gorm:"type:text"`
	CDate         time.Time                `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate         time.Time                `json:"mdate" gorm:"autoUpdateTime"`
}

// EffectiveWeight returns the configured weight or the default one.
func (e PermissionInheritance) EffectiveWeight() float64 {
	if e.Weight == nil {
		return DefaultInheritanceWeight
	}
	return *e.Weight
}

// IsEffectiveAt reports whether the edge is active and inside its lifecycle window at t.
func (e PermissionInheritance) IsEffectiveAt(t time.Time) bool {
	if !e.Active {
		return false
	}
	if t.Before(e.EffectiveFrom) {
		return false
	}
	if e.EffectiveTo != nil && t.After(*e.EffectiveTo) {
		return false
	}
	return true
}

type Job struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Author      string    `json:"author" gorm:"type:text"`
	Type        string    `json:"type" gorm:"type:text"`
	Payload     string    `json:"payload" gorm:"type:json"`
	Scheduled   time.Time `json:"scheduled" gorm:"type:timestamp with time zone"`
	Status      string    `json:"status" gorm:"type:text"` // pending, running, completed, failed, canceled
	Result      string    `json:"result" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	CompletedAt time.Time `json:"completedAt" gorm:"autoUpdateTime"`
	TraceID     string    `json:"traceID" gorm:"type:text"`
}
