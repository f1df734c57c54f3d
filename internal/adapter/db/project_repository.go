package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

const (
	listProjectsQuery  = "SELECT project_id, name FROM projects ORDER BY name ASC, project_id ASC"
	projectExistsQuery = "SELECT COUNT(*) FROM projects WHERE project_id = ?"
)

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID   uint64 `db:"project_id"`
	Name string `db:"name"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, listProjectsQuery); err != nil {
		return nil, &domain.StorageError{Op: "list projects", Err: err}
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, domain.Project{ID: row.ID, Name: row.Name})
	}
	return projects, nil
}

func (r *ProjectRepository) ProjectExists(ctx context.Context, projectID uint64) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, projectExistsQuery, projectID); err != nil {
		return false, &domain.StorageError{Op: "find project", Err: err}
	}
	return count > 0, nil
}
