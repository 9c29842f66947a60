package usecase

import (
	"context"
	"fmt"

	"github.com/Larissacdias1/scib-candidates-platform/internal/domain"
	"github.com/Larissacdias1/scib-candidates-platform/internal/ingest"
	"github.com/Larissacdias1/scib-candidates-platform/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

// Create runs the full ingestion pipeline and persists the result.
// Any stage failure aborts the call before the store is touched, so the
// repository only ever sees fully validated records.
func (u *candidateUsecase) Create(ctx context.Context, input domain.CreateCandidateInput, fileBytes []byte) (*domain.Candidate, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	attrs, err := ingest.Parse(fileBytes)
	if err != nil {
		return nil, apperror.BadRequestFrom(err)
	}

	candidate := assemble(input, attrs)
	if err := u.repo.Create(ctx, candidate); err != nil {
		return nil, fmt.Errorf("create candidate: %w", err)
	}
	return candidate, nil
}

// assemble merges identity fields with the extracted attributes into a
// pre-persistence record. Identity passes through unchanged; id and
// timestamps belong to the store.
func assemble(input domain.CreateCandidateInput, attrs ingest.Attributes) *domain.Candidate {
	return &domain.Candidate{
		Name:              input.Name,
		Surname:           input.Surname,
		Seniority:         attrs.Seniority,
		YearsOfExperience: attrs.YearsOfExperience,
		Availability:      attrs.Availability,
	}
}

func (u *candidateUsecase) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

func (u *candidateUsecase) List(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return candidates, nil
}

// Update overwrites only the fields present in input; absent fields
// keep their stored value. The read and the write are separate store
// round trips, so concurrent updates on one id are last-write-wins.
func (u *candidateUsecase) Update(ctx context.Context, id string, input domain.UpdateCandidateInput) (*domain.Candidate, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	if input.Name != nil {
		candidate.Name = *input.Name
	}
	if input.Surname != nil {
		candidate.Surname = *input.Surname
	}
	if input.Seniority != nil {
		candidate.Seniority = *input.Seniority
	}
	if input.YearsOfExperience != nil {
		candidate.YearsOfExperience = *input.YearsOfExperience
	}
	if input.Availability != nil {
		candidate.Availability = *input.Availability
	}

	if err := u.repo.Update(ctx, candidate); err != nil {
		return nil, fmt.Errorf("update candidate: %w", err)
	}
	return candidate, nil
}

func (u *candidateUsecase) Delete(ctx context.Context, id string) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	if !deleted {
		return apperror.NotFound("Candidate not found")
	}
	return nil
}
