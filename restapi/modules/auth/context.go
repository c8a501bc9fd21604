// Package auth implements the tenant authorization gate: it classifies each
// inbound GraphQL operation as public or tenant-scoped and resolves the
// acting organization before any handler runs.
package auth

import (
	"context"

	"github.com/utkarshk014/catalyst/apperr"
	"github.com/utkarshk014/catalyst/model"
)

type contextKey string

// OrgKey carries the resolved organization through the GraphQL execution
// context. The value is immutable; handlers read it and never replace it.
const OrgKey contextKey = "organization"

// WithOrganization binds the authorization context to ctx.
func WithOrganization(ctx context.Context, org *model.Organization) context.Context {
	return context.WithValue(ctx, OrgKey, org)
}

// OrganizationFromContext returns the resolved organization, if any.
func OrganizationFromContext(ctx context.Context) (*model.Organization, bool) {
	org, ok := ctx.Value(OrgKey).(*model.Organization)
	return org, ok
}

// RequireOrganization returns the authorization context or an AuthRequired
// failure. Resolvers call this first, so an operation that slips past the
// gate without a key still cannot reach tenant data.
func RequireOrganization(ctx context.Context) (*model.Organization, error) {
	org, ok := OrganizationFromContext(ctx)
	if !ok || org == nil {
		return nil, apperr.New(apperr.KindAuthRequired, "API key is required")
	}
	return org, nil
}
