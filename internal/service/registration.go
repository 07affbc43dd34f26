package service

import (
	"context"
	"fmt"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/repo"
)

// RegistrationService handles school sign-ups from the public form.
type RegistrationService struct {
	repo repo.RegistrationRepo
}

// NewRegistrationService constructs a RegistrationService backed by the provided repo.
func NewRegistrationService(r repo.RegistrationRepo) *RegistrationService {
	return &RegistrationService{repo: r}
}

// Create validates and persists a school registration. Validation mirrors the
// form's required-field constraints; everything else is stored as submitted.
func (s *RegistrationService) Create(ctx context.Context, reg domain.SchoolRegistration) (domain.SchoolRegistration, error) {
	if reg.SchoolName == "" {
		return domain.SchoolRegistration{}, fmt.Errorf("service.RegistrationService.Create: %w: school name is required", domain.ErrValidation)
	}
	if reg.TeacherName == "" {
		return domain.SchoolRegistration{}, fmt.Errorf("service.RegistrationService.Create: %w: teacher name is required", domain.ErrValidation)
	}
	if reg.Email == "" {
		return domain.SchoolRegistration{}, fmt.Errorf("service.RegistrationService.Create: %w: email is required", domain.ErrValidation)
	}
	if reg.Activities == nil {
		reg.Activities = []string{}
	}

	reg.Status = domain.StatusPending

	created, err := s.repo.Create(ctx, reg)
	if err != nil {
		return domain.SchoolRegistration{}, fmt.Errorf("service.RegistrationService.Create: %w", err)
	}
	return created, nil
}
