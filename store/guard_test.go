package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utkarshk014/catalyst/apperr"
)

func ownerReturning(orgID int64, err error) OwnerFunc {
	return func(context.Context, int64) (int64, error) { return orgID, err }
}

func TestRequireOwnedAllowsMatchingOrganization(t *testing.T) {
	id, err := RequireOwned(context.Background(), KindProject, "42", 7, ownerReturning(7, nil))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestRequireOwnedRejectsMalformedID(t *testing.T) {
	_, err := RequireOwned(context.Background(), KindProject, "abc", 7, ownerReturning(7, nil))
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.EqualError(t, err, "Invalid project ID: abc")
}

func TestRequireOwnedReportsMissingEntity(t *testing.T) {
	missing := apperr.New(apperr.KindNotFound, "Task not found")
	_, err := RequireOwned(context.Background(), KindTask, "99", 7, ownerReturning(0, missing))
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.EqualError(t, err, "Task with ID 99 does not exist")
}

func TestRequireOwnedRejectsForeignOrganization(t *testing.T) {
	_, err := RequireOwned(context.Background(), KindProject, "42", 7, ownerReturning(8, nil))
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	assert.EqualError(t, err, "Not authorized to access this project")
}

func TestRequireOwnedPropagatesLookupFailure(t *testing.T) {
	boom := apperr.New(apperr.KindInternal, "storage failure")
	_, err := RequireOwned(context.Background(), KindTask, "1", 7, ownerReturning(0, boom))
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}
