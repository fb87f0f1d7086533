package validation

import (
	"errors"
	"time"

	"github.com/MassterJoe/developersFoundryAssignments/internal/models"
)

var (
	ErrMissingTitle       = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title must be at most 100 characters")
	ErrDescriptionTooLong = errors.New("description must be at most 500 characters")
	ErrMissingDeadline    = errors.New("deadline is required")
	ErrInvalidDeadline    = errors.New("deadline must be a valid date")
	ErrInvalidPriority    = errors.New("priority must be one of: low, medium, high")
	ErrInvalidStatus      = errors.New("status must be one of: pending, in progress, completed")
)

// The store used to enforce these as schema constraints; they are re-checked
// here so the service never depends on the store for correctness.

func ValidateTitle(title string) error {
	if title == "" {
		return ErrMissingTitle
	}
	if len(title) > 100 {
		return ErrTitleTooLong
	}
	return nil
}

func ValidateDescription(description string) error {
	if len(description) > 500 {
		return ErrDescriptionTooLong
	}
	return nil
}

func ValidatePriority(priority string) error {
	switch priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return nil
	}
	return ErrInvalidPriority
}

func ValidateStatus(status string) error {
	switch status {
	case models.StatusPending, models.StatusInProgress, models.StatusCompleted:
		return nil
	}
	return ErrInvalidStatus
}

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDeadline accepts the date formats the original API tolerated.
func ParseDeadline(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, ErrMissingDeadline
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDeadline
}
