// Package store defines the narrow storage interface the resolvers consume,
// along with the credential helpers and the ownership guard shared by every
// implementation.
package store

import (
	"context"

	"github.com/utkarshk014/catalyst/model"
)

// Store is the persistence boundary. All methods are safe for concurrent use.
// Implementations report failures with apperr kinds: lookups that find no row
// return KindNotFound, constraint violations that correspond to user input
// return KindValidation, and every other storage failure is KindInternal.
type Store interface {
	// Identity store
	CreateOrganization(ctx context.Context, name, contactEmail, rawPassword string) (*model.Organization, error)
	OrganizationByAPIKey(ctx context.Context, key string) (*model.Organization, error)
	OrganizationByEmail(ctx context.Context, email string) (*model.Organization, error)

	// Projects
	ProjectsByOrganization(ctx context.Context, orgID int64) ([]model.Project, error)
	ProjectByID(ctx context.Context, id int64) (*model.Project, error)
	CreateProject(ctx context.Context, p *model.Project) error
	UpdateProject(ctx context.Context, p *model.Project) error
	DeleteProject(ctx context.Context, id int64) error
	// ProjectOwner resolves the owning organization of a project.
	ProjectOwner(ctx context.Context, id int64) (int64, error)
	// TaskCounts returns total and DONE task counts for a project.
	TaskCounts(ctx context.Context, projectID int64) (total int, done int, err error)

	// Tasks
	TasksByProject(ctx context.Context, projectID int64) ([]model.Task, error)
	TaskByID(ctx context.Context, id int64) (*model.Task, error)
	CreateTask(ctx context.Context, t *model.Task) error
	UpdateTask(ctx context.Context, t *model.Task) error
	DeleteTask(ctx context.Context, id int64) error
	// TaskOwner resolves the owning organization of a task transitively
	// through its project.
	TaskOwner(ctx context.Context, id int64) (int64, error)

	// Comments
	CommentsByTask(ctx context.Context, taskID int64) ([]model.TaskComment, error)
	CreateTaskComment(ctx context.Context, c *model.TaskComment) error
}
