package git

import (
	"fmt"
	"strings"

	ierrors "github.com/insectengine/search.quarkus.io/internal/errors"
)

// Base typed git errors enabling structured classification without string parsing upstream.

// NotFoundError reports a path absent from a tree snapshot at read time.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("blob not found at %s: %v", e.Path, e.Err) }
func (e *NotFoundError) Unwrap() error { return e.Err }

// BranchNotFoundError reports that none of the candidate revisions resolved.
type BranchNotFoundError struct {
	Revisions []string
	Err       error
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("no existing revision among %v: %v", e.Revisions, e.Err)
}
func (e *BranchNotFoundError) Unwrap() error { return e.Err }

// AuthError marks authentication failures against the remote.
type AuthError struct {
	Op, URL string
	Err     error
}

func (e *AuthError) Error() string { return fmt.Sprintf("%s auth error for %s: %v", e.Op, e.URL, e.Err) }
func (e *AuthError) Unwrap() error { return e.Err }

// RemoteNotFoundError marks a missing remote repository.
type RemoteNotFoundError struct {
	Op, URL string
	Err     error
}

func (e *RemoteNotFoundError) Error() string {
	return fmt.Sprintf("%s remote not found %s: %v", e.Op, e.URL, e.Err)
}
func (e *RemoteNotFoundError) Unwrap() error { return e.Err }

// classifyCloneError wraps clone failures into typed variants when possible,
// falling back to a structured clone error.
func classifyCloneError(url string, err error) error {
	if err == nil {
		return nil
	}
	if typed := classify("clone", url, err); typed != nil {
		return typed
	}
	return ierrors.GitCloneError(url, err)
}

// classifyFetchError wraps fetch-origin failures into typed variants when possible.
func classifyFetchError(url string, err error) error {
	if err == nil {
		return nil
	}
	if typed := classify("fetch", url, err); typed != nil {
		return typed
	}
	return fmt.Errorf("fetch %s: %w", url, err)
}

// classify recognizes errors that warrant a dedicated type; nil means
// unrecognized.
func classify(op, url string, err error) error {
	l := strings.ToLower(err.Error())
	switch {
	case strings.Contains(l, "auth"):
		return &AuthError{Op: op, URL: url, Err: err}
	case strings.Contains(l, "not found") || strings.Contains(l, "repository does not exist"):
		return &RemoteNotFoundError{Op: op, URL: url, Err: err}
	default:
		return nil
	}
}
