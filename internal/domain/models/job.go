package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

type JobType string

const (
	FullTime JobType = "Full-time"
	PartTime JobType = "Part-time"
	Contract JobType = "Contract"
)

func ToJobType(s string) (JobType, error) {
	switch s {
	case string(FullTime):
		return FullTime, nil
	case string(PartTime):
		return PartTime, nil
	case string(Contract):
		return Contract, nil
	default:
		return "", errors.New("invalid job type")
	}
}

func JobTypes() []JobType {
	return []JobType{FullTime, PartTime, Contract}
}

// Job is a single posting as stored in the jobs collection. The backend
// assigns ID; UserID is set once at creation and never changed afterwards.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	JobType     JobType   `json:"job_type"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      string    `json:"user_id"`
}

// ShortDescription trims the description for list rendering.
func (j Job) ShortDescription() string {
	const maxLen = 150
	runes := []rune(j.Description)
	if len(runes) <= maxLen {
		return j.Description
	}
	return string(runes[:maxLen]) + "..."
}

// JobDraft holds the editable fields staged for a create or update.
// Identifier and owner are not part of the draft.
type JobDraft struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Company     string `json:"company" form:"company" validate:"required"`
	Description string `json:"description" form:"description" validate:"required"`
	Location    string `json:"location" form:"location" validate:"required"`
	JobType     string `json:"job_type" form:"job_type" validate:"required,oneof=Full-time Part-time Contract"`
}

var validate = validator.New()

// Validate enforces the input boundary: all fields non-empty and the job
// type drawn from the enumerated set. Repositories do not re-validate.
func (d JobDraft) Validate() error {
	return validate.Struct(d)
}
