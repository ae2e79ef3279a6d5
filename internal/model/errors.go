package model

import "fmt"

// ServiceError describes a failed round trip to the Mariposa service. The
// adapters never propagate it as a crash; they degrade to an absent result
// and, where the surface allows, render Message for the user.
type ServiceError struct {
	Op         string // "get_note", "list_notes", "delete_note", ...
	StatusCode int    // 0 when the transport failed before a response
	Message    string
	Cause      error
}

func (e *ServiceError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return e.Op + ": " + e.Message
}

func (e *ServiceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
