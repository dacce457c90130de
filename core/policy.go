package core

import (
	"fmt"
)

// Decision is the outcome of an evaluation
type Decision struct {
	Allowed           bool    `json:"allowed"`
	MatchedPermission *string `json:"matchedPermission,omitempty"`
	Reason            string  `json:"reason"`
}

// Issue is a single validation finding
type Issue struct {
	Code     string         `json:"code"`
	Severity Severity       `json:"severity"`
	Message  string         `json:"message"`
	Details  map[string]any `json:"details,omitempty"`
}

func NewIssue(code string, severity Severity, format string, args ...any) Issue {
	return Issue{
		Code:     code,
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
	}
}

type ValidationResult struct {
	IsValid bool    `json:"isValid"`
	Issues  []Issue `json:"issues"`
}

func NewValidationResult() ValidationResult {
	return ValidationResult{IsValid: true, Issues: []Issue{}}
}

// Add appends an issue and keeps IsValid consistent with the error-severity findings.
func (v *ValidationResult) Add(issue Issue) {
	v.Issues = append(v.Issues, issue)
	if issue.Severity == SeverityError {
		v.IsValid = false
	}
}

// Errors returns only the blocking issues.
func (v ValidationResult) Errors() []Issue {
	var errs []Issue
	for _, issue := range v.Issues {
		if issue.Severity == SeverityError {
			errs = append(errs, issue)
		}
	}
	return errs
}

// HasCode reports whether an issue with the given code was found.
func (v ValidationResult) HasCode(code string) bool {
	for _, issue := range v.Issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

type ChainValidationResult struct {
	IsValid     bool    `json:"isValid"`
	Issues      []Issue `json:"issues"`
	ChainLength int     `json:"chainLength"`
}

type Conflict struct {
	Code          string `json:"code"`
	PermissionID  string `json:"permissionID"`
	ConflictingID string `json:"conflictingID"`
	Message       string `json:"message"`
}
