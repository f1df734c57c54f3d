package ports

import (
	"context"

	"tasklist/internal/core/domain"
)

type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ProjectExists(ctx context.Context, projectID uint64) (bool, error)
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
}
