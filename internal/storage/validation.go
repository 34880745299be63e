package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hardhatlabs/hardhat/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrInvalidLead = errors.New("invalid lead")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateLeads validates a snapshot before it is written. An empty slice is
// fine (an empty source is a valid result); a lead without an id is not,
// because ids are the bookmark keys.
func validateLeads(leads []model.Lead) error {
	for i, lead := range leads {
		if strings.TrimSpace(lead.ID) == "" {
			return fmt.Errorf("%w: lead at index %d has no id", ErrInvalidLead, i)
		}
	}
	return nil
}
