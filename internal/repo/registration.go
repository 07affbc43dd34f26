package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/topraga-donus/backend/internal/domain"
)

// RegistrationRepo persists school sign-ups from the public registration form.
type RegistrationRepo interface {
	// Create inserts a new registration and returns the persisted record.
	Create(ctx context.Context, reg domain.SchoolRegistration) (domain.SchoolRegistration, error)
}

type pgRegistrationRepo struct {
	db db
}

// NewRegistrationRepo constructs a RegistrationRepo backed by the provided db connection.
func NewRegistrationRepo(db db) RegistrationRepo {
	return &pgRegistrationRepo{db: db}
}

func (r *pgRegistrationRepo) Create(ctx context.Context, reg domain.SchoolRegistration) (domain.SchoolRegistration, error) {
	const q = `
		INSERT INTO school_registrations
			(school_name, city, district, teacher_name, email, phone, student_count, activities, status)
		VALUES
			(@school_name, @city, @district, @teacher_name, @email, @phone, @student_count, @activities, @status)
		RETURNING id, school_name, city, district, teacher_name, email, phone,
		          student_count, activities, status, created_at`

	args := pgx.NamedArgs{
		"school_name":   reg.SchoolName,
		"city":          reg.City,
		"district":      reg.District,
		"teacher_name":  reg.TeacherName,
		"email":         string(reg.Email),
		"phone":         reg.Phone,
		"student_count": reg.StudentCount,
		"activities":    reg.Activities,
		"status":        reg.Status,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanRegistration(row)
	if err != nil {
		return domain.SchoolRegistration{}, fmt.Errorf("repo.RegistrationRepo.Create: %w", classify(err))
	}
	return result, nil
}

// scanRegistration maps a single database row into a domain.SchoolRegistration.
func scanRegistration(s scanner) (domain.SchoolRegistration, error) {
	var (
		reg   domain.SchoolRegistration
		id    pgtype.UUID
		email string
	)

	err := s.Scan(&id, &reg.SchoolName, &reg.City, &reg.District, &reg.TeacherName,
		&email, &reg.Phone, &reg.StudentCount, &reg.Activities, &reg.Status,
		&reg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SchoolRegistration{}, domain.ErrNotFound
		}
		return domain.SchoolRegistration{}, err
	}

	reg.ID = uuid.UUID(id.Bytes)
	reg.Email = openapi_types.Email(email)
	return reg, nil
}
