package memory

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utkarshk014/catalyst/apperr"
	"github.com/utkarshk014/catalyst/model"
)

func TestCreateOrganization(t *testing.T) {
	st := New()
	ctx := context.Background()

	org, err := st.CreateOrganization(ctx, "Acme Corp", "ops@acme.io", "secret123")
	require.NoError(t, err)

	assert.NotZero(t, org.ID)
	assert.True(t, strings.HasPrefix(org.Slug, "acme-corp-"))
	assert.NotEmpty(t, org.APIKey)
	assert.NotEqual(t, "secret123", org.PasswordHash)
}

func TestCreateOrganizationDuplicateEmail(t *testing.T) {
	st := New()
	ctx := context.Background()

	_, err := st.CreateOrganization(ctx, "Acme", "ops@acme.io", "secret123")
	require.NoError(t, err)

	_, err = st.CreateOrganization(ctx, "Other", "ops@acme.io", "different")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.EqualError(t, err, "Organization with this email already exists")
}

func TestConcurrentSignupsWithIdenticalNames(t *testing.T) {
	st := New()
	ctx := context.Background()

	const n = 10
	results := make([]*model.Organization, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			org, err := st.CreateOrganization(ctx, "Acme", "ops"+string(rune('a'+i))+"@acme.io", "secret123")
			if assert.NoError(t, err) {
				results[i] = org
			}
		}(i)
	}
	wg.Wait()

	slugs := map[string]bool{}
	keys := map[string]bool{}
	for _, org := range results {
		require.NotNil(t, org)
		assert.False(t, slugs[org.Slug], "slug %q issued twice", org.Slug)
		assert.False(t, keys[org.APIKey], "API key issued twice")
		slugs[org.Slug] = true
		keys[org.APIKey] = true
	}
}

func TestOrganizationLookupRoundTrip(t *testing.T) {
	st := New()
	ctx := context.Background()

	created, err := st.CreateOrganization(ctx, "Acme", "ops@acme.io", "secret123")
	require.NoError(t, err)

	byKey, err := st.OrganizationByAPIKey(ctx, created.APIKey)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byKey.ID)
	assert.Equal(t, created.Slug, byKey.Slug)
	assert.NotEqual(t, "secret123", byKey.PasswordHash)

	_, err = st.OrganizationByAPIKey(ctx, "no-such-key")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	byEmail, err := st.OrganizationByEmail(ctx, "ops@acme.io")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestDeleteProjectCascades(t *testing.T) {
	st := New()
	ctx := context.Background()

	org, err := st.CreateOrganization(ctx, "Acme", "ops@acme.io", "secret123")
	require.NoError(t, err)

	project := &model.Project{OrganizationID: org.ID, Name: "Launch", Status: model.ProjectStatusActive}
	require.NoError(t, st.CreateProject(ctx, project))

	task := &model.Task{ProjectID: project.ID, Title: "Ship it", Status: model.TaskStatusTodo}
	require.NoError(t, st.CreateTask(ctx, task))

	comment := &model.TaskComment{TaskID: task.ID, Content: "on it", AuthorEmail: "dev@acme.io"}
	require.NoError(t, st.CreateTaskComment(ctx, comment))

	require.NoError(t, st.DeleteProject(ctx, project.ID))

	_, err = st.ProjectByID(ctx, project.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	_, err = st.TaskByID(ctx, task.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	comments, err := st.CommentsByTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestDeleteTaskCascadesToComments(t *testing.T) {
	st := New()
	ctx := context.Background()

	org, err := st.CreateOrganization(ctx, "Acme", "ops@acme.io", "secret123")
	require.NoError(t, err)
	project := &model.Project{OrganizationID: org.ID, Name: "Launch", Status: model.ProjectStatusActive}
	require.NoError(t, st.CreateProject(ctx, project))
	task := &model.Task{ProjectID: project.ID, Title: "Ship it", Status: model.TaskStatusTodo}
	require.NoError(t, st.CreateTask(ctx, task))
	comment := &model.TaskComment{TaskID: task.ID, Content: "on it", AuthorEmail: "dev@acme.io"}
	require.NoError(t, st.CreateTaskComment(ctx, comment))

	require.NoError(t, st.DeleteTask(ctx, task.ID))

	comments, err := st.CommentsByTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestTaskCounts(t *testing.T) {
	st := New()
	ctx := context.Background()

	org, err := st.CreateOrganization(ctx, "Acme", "ops@acme.io", "secret123")
	require.NoError(t, err)
	project := &model.Project{OrganizationID: org.ID, Name: "Launch", Status: model.ProjectStatusActive}
	require.NoError(t, st.CreateProject(ctx, project))

	for _, status := range []string{model.TaskStatusTodo, model.TaskStatusDone, model.TaskStatusDone} {
		task := &model.Task{ProjectID: project.ID, Title: "t", Status: status}
		require.NoError(t, st.CreateTask(ctx, task))
	}

	total, done, err := st.TaskCounts(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, done)
}

func TestOwnerResolution(t *testing.T) {
	st := New()
	ctx := context.Background()

	org, err := st.CreateOrganization(ctx, "Acme", "ops@acme.io", "secret123")
	require.NoError(t, err)
	project := &model.Project{OrganizationID: org.ID, Name: "Launch", Status: model.ProjectStatusActive}
	require.NoError(t, st.CreateProject(ctx, project))
	task := &model.Task{ProjectID: project.ID, Title: "Ship it", Status: model.TaskStatusTodo}
	require.NoError(t, st.CreateTask(ctx, task))

	owner, err := st.ProjectOwner(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, org.ID, owner)

	owner, err = st.TaskOwner(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, org.ID, owner)

	_, err = st.TaskOwner(ctx, 9999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
