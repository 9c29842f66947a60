package postgres

import (
	"context"
	"errors"

	"github.com/Larissacdias1/scib-candidates-platform/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	candidate.ID = uuid.New().String()

	query := `
		INSERT INTO candidates (id, name, surname, seniority, years_of_experience, availability, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		candidate.ID, candidate.Name, candidate.Surname,
		candidate.Seniority, candidate.YearsOfExperience, candidate.Availability,
	).Scan(&candidate.CreatedAt, &candidate.UpdatedAt)
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `
		SELECT id, name, surname, seniority, years_of_experience, availability, created_at, updated_at
		FROM candidates WHERE id = $1`

	var c domain.Candidate
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Surname, &c.Seniority,
		&c.YearsOfExperience, &c.Availability, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepository) GetAll(ctx context.Context) ([]domain.Candidate, error) {
	// Secondary key keeps the order stable when timestamps collide.
	query := `
		SELECT id, name, surname, seniority, years_of_experience, availability, created_at, updated_at
		FROM candidates ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		var c domain.Candidate
		err := rows.Scan(
			&c.ID, &c.Name, &c.Surname, &c.Seniority,
			&c.YearsOfExperience, &c.Availability, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepository) Update(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		UPDATE candidates
		SET name = $1, surname = $2, seniority = $3, years_of_experience = $4, availability = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	return r.db.QueryRow(ctx, query,
		candidate.Name, candidate.Surname, candidate.Seniority,
		candidate.YearsOfExperience, candidate.Availability, candidate.ID,
	).Scan(&candidate.UpdatedAt)
}

func (r *candidateRepository) Delete(ctx context.Context, id string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
