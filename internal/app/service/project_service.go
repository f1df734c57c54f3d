package service

import (
	"context"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

type ProjectService struct {
	projectRepository ports.ProjectRepository
}

func NewProjectService(projectRepository ports.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepository: projectRepository}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepository.ListProjects(ctx)
}

var _ ports.ProjectService = (*ProjectService)(nil)
