package postgres

import (
	"context"

	"github.com/utkarshk014/catalyst/apperr"
	"github.com/utkarshk014/catalyst/model"
)

const taskColumns = `id, project_id, title, description, status, assignee_email, due_date, created_at`

// TasksByProject lists all tasks under one project.
func (s *Store) TasksByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = $1 ORDER BY id`

	rows, err := s.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to list tasks")
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.AssigneeEmail, &t.DueDate, &t.CreatedAt); err != nil {
			return nil, apperr.Wrap(err, apperr.KindInternal, "failed to scan task")
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to list tasks")
	}
	return tasks, nil
}

// TaskByID fetches a single task.
func (s *Store) TaskByID(ctx context.Context, id int64) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	var t model.Task
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.AssigneeEmail, &t.DueDate, &t.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err, "Task not found")
	}
	return &t, nil
}

// CreateTask inserts a task under t.ProjectID and fills the generated id.
func (s *Store) CreateTask(ctx context.Context, t *model.Task) error {
	query := `INSERT INTO tasks (project_id, title, description, status, assignee_email, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := s.pool.QueryRow(ctx, query,
		t.ProjectID, t.Title, t.Description, t.Status, t.AssigneeEmail, t.DueDate,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return mapError(err, "Project not found")
	}
	return nil
}

// UpdateTask saves mutable task fields. The project reference is never updated.
func (s *Store) UpdateTask(ctx context.Context, t *model.Task) error {
	query := `UPDATE tasks SET title = $2, description = $3, status = $4, assignee_email = $5, due_date = $6 WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, t.ID, t.Title, t.Description, t.Status, t.AssigneeEmail, t.DueDate)
	if err != nil {
		return apperr.Wrap(err, apperr.KindInternal, "failed to update task")
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "Task not found")
	}
	return nil
}

// DeleteTask removes a task; its comments cascade at the storage layer.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(err, apperr.KindInternal, "failed to delete task")
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "Task not found")
	}
	return nil
}

// TaskOwner resolves the owning organization of a task transitively through
// its project.
func (s *Store) TaskOwner(ctx context.Context, id int64) (int64, error) {
	query := `SELECT p.organization_id FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE t.id = $1`

	var orgID int64
	err := s.pool.QueryRow(ctx, query, id).Scan(&orgID)
	if err != nil {
		return 0, mapError(err, "Task not found")
	}
	return orgID, nil
}
