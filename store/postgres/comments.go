package postgres

import (
	"context"

	"github.com/utkarshk014/catalyst/apperr"
	"github.com/utkarshk014/catalyst/model"
)

// CommentsByTask lists all comments under one task, oldest first.
func (s *Store) CommentsByTask(ctx context.Context, taskID int64) ([]model.TaskComment, error) {
	query := `SELECT id, task_id, content, author_email, created_at
		FROM task_comments WHERE task_id = $1 ORDER BY id`

	rows, err := s.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to list comments")
	}
	defer rows.Close()

	comments := []model.TaskComment{}
	for rows.Next() {
		var c model.TaskComment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.Content, &c.AuthorEmail, &c.Timestamp); err != nil {
			return nil, apperr.Wrap(err, apperr.KindInternal, "failed to scan comment")
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to list comments")
	}
	return comments, nil
}

// CreateTaskComment inserts a comment under c.TaskID. The timestamp is set by
// the storage layer and immutable afterwards.
func (s *Store) CreateTaskComment(ctx context.Context, c *model.TaskComment) error {
	query := `INSERT INTO task_comments (task_id, content, author_email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := s.pool.QueryRow(ctx, query, c.TaskID, c.Content, c.AuthorEmail).Scan(&c.ID, &c.Timestamp)
	if err != nil {
		return mapError(err, "Task not found")
	}
	return nil
}
