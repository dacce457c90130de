package core

import (
	"errors"
	"strings"
)

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorAlreadyExists struct {
}

func (e ErrorAlreadyExists) Error() string {
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}

type ErrorAlreadyDeleted struct {
}

func (e ErrorAlreadyDeleted) Error() string {
	return "Already Deleted"
}

func NewErrorAlreadyDeleted() ErrorAlreadyDeleted {
	return ErrorAlreadyDeleted{}
}

type ErrorInvalidArgument struct {
	Reason string
}

func (e ErrorInvalidArgument) Error() string {
	return "Invalid Argument: " + e.Reason
}

func NewErrorInvalidArgument(reason string) ErrorInvalidArgument {
	return ErrorInvalidArgument{Reason: reason}
}

// ValidationError carries the findings of a rejected inheritance edge
type ValidationError struct {
	Issues []Issue
}

func (e ValidationError) Error() string {
	codes := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		codes = append(codes, issue.Code)
	}
	return "Validation Failed: " + strings.Join(codes, ", ")
}

func NewValidationError(issues []Issue) ValidationError {
	return ValidationError{Issues: issues}
}

// IsNotFound reports whether err is, or wraps, ErrorNotFound.
func IsNotFound(err error) bool {
	var notFound ErrorNotFound
	return errors.As(err, &notFound)
}
