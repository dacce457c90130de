package core

type Effect string

const (
	EffectAllow Effect = "allow"
	EffectDeny  Effect = "deny"
)

// Opposite returns the other effect.
func (e Effect) Opposite() Effect {
	if e == EffectAllow {
		return EffectDeny
	}
	return EffectAllow
}

func (e Effect) IsValid() bool {
	return e == EffectAllow || e == EffectDeny
}

type InheritanceType string

const (
	InheritanceFull        InheritanceType = "full"
	InheritanceConditional InheritanceType = "conditional"
	InheritancePriority    InheritanceType = "priority"
	InheritanceOverride    InheritanceType = "override"
)

func (t InheritanceType) IsValid() bool {
	switch t {
	case InheritanceFull, InheritanceConditional, InheritancePriority, InheritanceOverride:
		return true
	default:
		return false
	}
}

type MergeStrategy string

const (
	MergeChildOverrides MergeStrategy = "child_overrides"
	MergeParentPriority MergeStrategy = "parent_priority"
	MergeUnion          MergeStrategy = "merge"
	MergeIntersect      MergeStrategy = "intersect"
)

func (m MergeStrategy) IsValid() bool {
	switch m {
	case MergeChildOverrides, MergeParentPriority, MergeUnion, MergeIntersect:
		return true
	default:
		return false
	}
}

type LogicalOperator string

const (
	OperatorAnd LogicalOperator = "AND"
	OperatorOr  LogicalOperator = "OR"
)

const (
	Wildcard = "*"

	MinPriority = 0
	MaxPriority = 1000

	DefaultInheritanceWeight = 0.1
	DefaultMaxDepth          = 10
	MinMaxDepth              = 1
	HardMaxDepth             = 50

	NodeTypeDepartment = "department"

	PermissionCachePrefix = "permission:"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

const (
	IssueInvalidParent           = "INVALID_PARENT_PERMISSION"
	IssueInactiveParent          = "INACTIVE_PARENT_PERMISSION"
	IssueInvalidChild            = "INVALID_CHILD_PERMISSION"
	IssueInactiveChild           = "INACTIVE_CHILD_PERMISSION"
	IssueCircularInheritance     = "CIRCULAR_INHERITANCE"
	IssueDepthExceeded           = "INHERITANCE_DEPTH_EXCEEDED"
	IssueInvalidType             = "INVALID_INHERITANCE_TYPE"
	IssueInvalidWeight           = "INVALID_WEIGHT"
	IssueInvalidMergeStrategy    = "INVALID_MERGE_STRATEGY"
	IssueEffectMismatch          = "EFFECT_MISMATCH"
	IssueResourceTypeMismatch    = "RESOURCE_TYPE_MISMATCH"
	IssueOverlappingConditions   = "OVERLAPPING_CONDITIONS"
	IssueEffectConflict          = "EFFECT_CONFLICT"
	ReasonNoApplicablePermission = "No applicable permission found"
)

const (
	MetadataInheritedFrom   = "inheritedFrom"
	MetadataInheritanceID   = "inheritanceId"
	MetadataInheritanceType = "inheritanceType"
)

const (
	JobTypeBulkApply     = "inheritance.bulk_apply"
	JobTypeValidateChain = "inheritance.validate_chain"
)
