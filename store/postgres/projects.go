package postgres

import (
	"context"

	"github.com/utkarshk014/catalyst/apperr"
	"github.com/utkarshk014/catalyst/model"
)

const projectColumns = `id, organization_id, name, description, status, due_date, created_at`

// ProjectsByOrganization lists all projects owned by one tenant. The filter
// predicate is the authorization context's organization, so there is nothing
// to leak.
func (s *Store) ProjectsByOrganization(ctx context.Context, orgID int64) ([]model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE organization_id = $1 ORDER BY id`

	rows, err := s.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to list projects")
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.Name, &p.Description, &p.Status, &p.DueDate, &p.CreatedAt); err != nil {
			return nil, apperr.Wrap(err, apperr.KindInternal, "failed to scan project")
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to list projects")
	}
	return projects, nil
}

// ProjectByID fetches a single project.
func (s *Store) ProjectByID(ctx context.Context, id int64) (*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	var p model.Project
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.OrganizationID, &p.Name, &p.Description, &p.Status, &p.DueDate, &p.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err, "Project not found")
	}
	return &p, nil
}

// CreateProject inserts a project under p.OrganizationID and fills the
// generated id.
func (s *Store) CreateProject(ctx context.Context, p *model.Project) error {
	query := `INSERT INTO projects (organization_id, name, description, status, due_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := s.pool.QueryRow(ctx, query,
		p.OrganizationID, p.Name, p.Description, p.Status, p.DueDate,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return mapError(err, "Project not found")
	}
	return nil
}

// UpdateProject saves mutable project fields. The organization reference is
// never updated.
func (s *Store) UpdateProject(ctx context.Context, p *model.Project) error {
	query := `UPDATE projects SET name = $2, description = $3, status = $4, due_date = $5 WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, p.ID, p.Name, p.Description, p.Status, p.DueDate)
	if err != nil {
		return apperr.Wrap(err, apperr.KindInternal, "failed to update project")
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "Project not found")
	}
	return nil
}

// DeleteProject removes a project; tasks and their comments cascade at the
// storage layer.
func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(err, apperr.KindInternal, "failed to delete project")
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "Project not found")
	}
	return nil
}

// ProjectOwner resolves the owning organization of a project.
func (s *Store) ProjectOwner(ctx context.Context, id int64) (int64, error) {
	var orgID int64
	err := s.pool.QueryRow(ctx, `SELECT organization_id FROM projects WHERE id = $1`, id).Scan(&orgID)
	if err != nil {
		return 0, mapError(err, "Project not found")
	}
	return orgID, nil
}

// TaskCounts returns the total and DONE task counts for a project.
func (s *Store) TaskCounts(ctx context.Context, projectID int64) (int, int, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $2) FROM tasks WHERE project_id = $1`

	var total, done int
	err := s.pool.QueryRow(ctx, query, projectID, model.TaskStatusDone).Scan(&total, &done)
	if err != nil {
		return 0, 0, apperr.Wrap(err, apperr.KindInternal, "failed to count tasks")
	}
	return total, done, nil
}
