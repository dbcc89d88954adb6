package services

import (
	"context"
	"fmt"

	"github.com/omniport/acadsync/internal/app/models/dto"
	"github.com/omniport/acadsync/internal/app/repositories"
)

// DirectoryService exposes read-only views over imported persons and the
// lookup tables.
type DirectoryService struct {
	personRepo     *repositories.PersonRepository
	departmentRepo *repositories.DepartmentRepository
	centreRepo     *repositories.CentreRepository
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(
	personRepo *repositories.PersonRepository,
	departmentRepo *repositories.DepartmentRepository,
	centreRepo *repositories.CentreRepository,
) *DirectoryService {
	return &DirectoryService{
		personRepo:     personRepo,
		departmentRepo: departmentRepo,
		centreRepo:     centreRepo,
	}
}

// ListPersons retrieves imported persons with their usernames
func (s *DirectoryService) ListPersons(ctx context.Context, limit, offset int) ([]*dto.PersonResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	persons, err := s.personRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing persons: %w", err)
	}

	responses := make([]*dto.PersonResponse, 0, len(persons))
	for _, person := range persons {
		resp := &dto.PersonResponse{
			ID:       person.ID,
			FullName: person.FullName,
		}
		if person.User != nil {
			resp.Username = person.User.Username
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// ListDepartments retrieves all departments with display names
func (s *DirectoryService) ListDepartments(ctx context.Context) ([]*dto.DepartmentResponse, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}

	responses := make([]*dto.DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		responses = append(responses, &dto.DepartmentResponse{
			ID:   department.ID,
			Code: department.Code,
			Name: department.Name(),
		})
	}

	return responses, nil
}

// ListCentres retrieves all centres with display names
func (s *DirectoryService) ListCentres(ctx context.Context) ([]*dto.CentreResponse, error) {
	centres, err := s.centreRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing centres: %w", err)
	}

	responses := make([]*dto.CentreResponse, 0, len(centres))
	for _, centre := range centres {
		responses = append(responses, &dto.CentreResponse{
			ID:   centre.ID,
			Code: centre.Code,
			Name: centre.Name(),
		})
	}

	return responses, nil
}
