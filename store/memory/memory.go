// Package memory implements the storage interface in process memory. It
// mirrors the PostgreSQL implementation's semantics, including cascade
// deletes and uniqueness failures, and backs the HTTP-level test suite.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/utkarshk014/catalyst/apperr"
	"github.com/utkarshk014/catalyst/model"
	"github.com/utkarshk014/catalyst/store"
	"github.com/utkarshk014/catalyst/util"
)

// Store is a mutex-guarded map-backed implementation of store.Store.
type Store struct {
	mu sync.Mutex

	orgs     map[int64]*model.Organization
	projects map[int64]*model.Project
	tasks    map[int64]*model.Task
	comments map[int64]*model.TaskComment

	nextID int64
}

var _ store.Store = (*Store)(nil)

// New creates an empty Store.
func New() *Store {
	return &Store{
		orgs:     make(map[int64]*model.Organization),
		projects: make(map[int64]*model.Project),
		tasks:    make(map[int64]*model.Task),
		comments: make(map[int64]*model.TaskComment),
	}
}

func (s *Store) next() int64 {
	s.nextID++
	return s.nextID
}

// CreateOrganization persists a new tenant, enforcing email and slug
// uniqueness the way the database constraints do.
func (s *Store) CreateOrganization(_ context.Context, name, contactEmail, rawPassword string) (*model.Organization, error) {
	hash, err := store.HashCredential(rawPassword)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to hash credential")
	}
	apiKey, err := store.GenerateAPIKey()
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to generate API key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.orgs {
		if existing.ContactEmail == contactEmail {
			return nil, apperr.New(apperr.KindValidation, "Organization with this email already exists")
		}
	}

	slug := util.UniqueSlug(name)
	for taken := true; taken; {
		taken = false
		for _, existing := range s.orgs {
			if existing.Slug == slug {
				slug = util.UniqueSlug(name)
				taken = true
				break
			}
		}
	}

	org := &model.Organization{
		ID:           s.next(),
		Name:         name,
		Slug:         slug,
		ContactEmail: contactEmail,
		PasswordHash: hash,
		APIKey:       apiKey,
		CreatedAt:    time.Now(),
	}
	s.orgs[org.ID] = org

	copied := *org
	return &copied, nil
}

// OrganizationByAPIKey resolves the tenant an API key belongs to.
func (s *Store) OrganizationByAPIKey(_ context.Context, key string) (*model.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, org := range s.orgs {
		if org.APIKey == key {
			copied := *org
			return &copied, nil
		}
	}
	return nil, apperr.New(apperr.KindNotFound, "Organization not found")
}

// OrganizationByEmail resolves a tenant by its contact email.
func (s *Store) OrganizationByEmail(_ context.Context, email string) (*model.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, org := range s.orgs {
		if org.ContactEmail == email {
			copied := *org
			return &copied, nil
		}
	}
	return nil, apperr.New(apperr.KindNotFound, "Organization not found")
}

// ProjectsByOrganization lists all projects owned by one tenant.
func (s *Store) ProjectsByOrganization(_ context.Context, orgID int64) ([]model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := []model.Project{}
	for _, p := range s.projects {
		if p.OrganizationID == orgID {
			projects = append(projects, *p)
		}
	}
	sortByID(projects, func(p model.Project) int64 { return p.ID })
	return projects, nil
}

// ProjectByID fetches a single project.
func (s *Store) ProjectByID(_ context.Context, id int64) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "Project not found")
	}
	copied := *p
	return &copied, nil
}

// CreateProject inserts a project and fills the generated id.
func (s *Store) CreateProject(_ context.Context, p *model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orgs[p.OrganizationID]; !ok {
		return apperr.New(apperr.KindNotFound, "Organization not found")
	}
	p.ID = s.next()
	p.CreatedAt = time.Now()
	copied := *p
	s.projects[p.ID] = &copied
	return nil
}

// UpdateProject saves mutable project fields.
func (s *Store) UpdateProject(_ context.Context, p *model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.projects[p.ID]
	if !ok {
		return apperr.New(apperr.KindNotFound, "Project not found")
	}
	existing.Name = p.Name
	existing.Description = p.Description
	existing.Status = p.Status
	existing.DueDate = p.DueDate
	return nil
}

// DeleteProject removes a project, cascading to its tasks and their comments.
func (s *Store) DeleteProject(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return apperr.New(apperr.KindNotFound, "Project not found")
	}
	delete(s.projects, id)
	for taskID, t := range s.tasks {
		if t.ProjectID == id {
			delete(s.tasks, taskID)
			for commentID, c := range s.comments {
				if c.TaskID == taskID {
					delete(s.comments, commentID)
				}
			}
		}
	}
	return nil
}

// ProjectOwner resolves the owning organization of a project.
func (s *Store) ProjectOwner(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return 0, apperr.New(apperr.KindNotFound, "Project not found")
	}
	return p.OrganizationID, nil
}

// TaskCounts returns total and DONE task counts for a project.
func (s *Store) TaskCounts(_ context.Context, projectID int64) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total, done := 0, 0
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			total++
			if t.Status == model.TaskStatusDone {
				done++
			}
		}
	}
	return total, done, nil
}

// TasksByProject lists all tasks under one project.
func (s *Store) TasksByProject(_ context.Context, projectID int64) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := []model.Task{}
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			tasks = append(tasks, *t)
		}
	}
	sortByID(tasks, func(t model.Task) int64 { return t.ID })
	return tasks, nil
}

// TaskByID fetches a single task.
func (s *Store) TaskByID(_ context.Context, id int64) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "Task not found")
	}
	copied := *t
	return &copied, nil
}

// CreateTask inserts a task and fills the generated id.
func (s *Store) CreateTask(_ context.Context, t *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[t.ProjectID]; !ok {
		return apperr.New(apperr.KindNotFound, "Project not found")
	}
	t.ID = s.next()
	t.CreatedAt = time.Now()
	copied := *t
	s.tasks[t.ID] = &copied
	return nil
}

// UpdateTask saves mutable task fields.
func (s *Store) UpdateTask(_ context.Context, t *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[t.ID]
	if !ok {
		return apperr.New(apperr.KindNotFound, "Task not found")
	}
	existing.Title = t.Title
	existing.Description = t.Description
	existing.Status = t.Status
	existing.AssigneeEmail = t.AssigneeEmail
	existing.DueDate = t.DueDate
	return nil
}

// DeleteTask removes a task, cascading to its comments.
func (s *Store) DeleteTask(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return apperr.New(apperr.KindNotFound, "Task not found")
	}
	delete(s.tasks, id)
	for commentID, c := range s.comments {
		if c.TaskID == id {
			delete(s.comments, commentID)
		}
	}
	return nil
}

// TaskOwner resolves the owning organization of a task through its project.
func (s *Store) TaskOwner(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return 0, apperr.New(apperr.KindNotFound, "Task not found")
	}
	p, ok := s.projects[t.ProjectID]
	if !ok {
		return 0, apperr.New(apperr.KindNotFound, "Task not found")
	}
	return p.OrganizationID, nil
}

// CommentsByTask lists all comments under one task.
func (s *Store) CommentsByTask(_ context.Context, taskID int64) ([]model.TaskComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := []model.TaskComment{}
	for _, c := range s.comments {
		if c.TaskID == taskID {
			comments = append(comments, *c)
		}
	}
	sortByID(comments, func(c model.TaskComment) int64 { return c.ID })
	return comments, nil
}

// CreateTaskComment inserts a comment and fills the generated id and timestamp.
func (s *Store) CreateTaskComment(_ context.Context, c *model.TaskComment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[c.TaskID]; !ok {
		return apperr.New(apperr.KindNotFound, "Task not found")
	}
	c.ID = s.next()
	c.Timestamp = time.Now()
	copied := *c
	s.comments[c.ID] = &copied
	return nil
}

func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
