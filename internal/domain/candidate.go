package domain

import (
	"context"
	"time"
)

// Seniority is the closed two-value classification of a candidate's
// experience tier.
type Seniority string

const (
	SeniorityJunior Seniority = "junior"
	SenioritySenior Seniority = "senior"
)

// Candidate is the persisted record. JSON field names follow the public
// API contract (camelCase).
type Candidate struct {
	ID                string    `json:"id"`
	Name              string    `json:"name" validate:"required,min=1,max=100"`
	Surname           string    `json:"surname" validate:"required,min=1,max=100"`
	Seniority         Seniority `json:"seniority" validate:"required,oneof=junior senior"`
	YearsOfExperience int       `json:"yearsOfExperience" validate:"min=0,max=50"`
	Availability      bool      `json:"availability"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CreateCandidateInput carries the identity fields supplied alongside
// the spreadsheet upload; attributes come from the file, never from
// this payload.
type CreateCandidateInput struct {
	Name    string `form:"name" json:"name" validate:"required,min=1,max=100"`
	Surname string `form:"surname" json:"surname" validate:"required,min=1,max=100"`
}

// UpdateCandidateInput is a partial update: nil fields keep the stored
// value, non-nil fields overwrite it.
type UpdateCandidateInput struct {
	Name              *string    `json:"name" validate:"omitempty,min=1,max=100"`
	Surname           *string    `json:"surname" validate:"omitempty,min=1,max=100"`
	Seniority         *Seniority `json:"seniority" validate:"omitempty,oneof=junior senior"`
	YearsOfExperience *int       `json:"yearsOfExperience" validate:"omitempty,min=0,max=50"`
	Availability      *bool      `json:"availability"`
}

type CandidateRepository interface {
	// Create persists the candidate and fills ID, CreatedAt, UpdatedAt.
	Create(ctx context.Context, candidate *Candidate) error
	// GetByID returns (nil, nil) when no candidate matches.
	GetByID(ctx context.Context, id string) (*Candidate, error)
	// GetAll returns candidates ordered by creation time descending.
	GetAll(ctx context.Context) ([]Candidate, error)
	// Update persists the mutable fields and refreshes UpdatedAt.
	Update(ctx context.Context, candidate *Candidate) error
	// Delete removes the row and reports whether one matched.
	Delete(ctx context.Context, id string) (bool, error)
}

type CandidateUsecase interface {
	Create(ctx context.Context, input CreateCandidateInput, fileBytes []byte) (*Candidate, error)
	GetByID(ctx context.Context, id string) (*Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	Update(ctx context.Context, id string, input UpdateCandidateInput) (*Candidate, error)
	Delete(ctx context.Context, id string) error
}
