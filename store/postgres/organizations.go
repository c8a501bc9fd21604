package postgres

import (
	"context"

	"github.com/utkarshk014/catalyst/apperr"
	"github.com/utkarshk014/catalyst/model"
	"github.com/utkarshk014/catalyst/store"
	"github.com/utkarshk014/catalyst/util"
)

// Slug and API-key collisions are resolved by regenerating and retrying
// against the unique constraints, never by pre-checking existence.
const maxCreateAttempts = 5

// CreateOrganization persists a new tenant. The contact email is unique
// across tenants; a duplicate is reported as a recoverable validation
// failure, not a crash.
func (s *Store) CreateOrganization(ctx context.Context, name, contactEmail, rawPassword string) (*model.Organization, error) {
	hash, err := store.HashCredential(rawPassword)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "failed to hash credential")
	}

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		apiKey, err := store.GenerateAPIKey()
		if err != nil {
			return nil, apperr.Wrap(err, apperr.KindInternal, "failed to generate API key")
		}

		org := &model.Organization{
			Name:         name,
			Slug:         util.UniqueSlug(name),
			ContactEmail: contactEmail,
			PasswordHash: hash,
			APIKey:       apiKey,
		}

		query := `INSERT INTO organizations (name, slug, contact_email, password_hash, api_key)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at`

		err = s.pool.QueryRow(ctx, query,
			org.Name, org.Slug, org.ContactEmail, org.PasswordHash, org.APIKey,
		).Scan(&org.ID, &org.CreatedAt)
		if err == nil {
			return org, nil
		}

		switch uniqueViolation(err) {
		case constraintEmail:
			return nil, apperr.New(apperr.KindValidation, "Organization with this email already exists")
		case constraintSlug, constraintAPIKey:
			continue
		default:
			return nil, apperr.Wrap(err, apperr.KindInternal, "failed to create organization")
		}
	}

	return nil, apperr.New(apperr.KindInternal, "could not allocate a unique slug")
}

const orgColumns = `id, name, slug, contact_email, password_hash, api_key, created_at`

// OrganizationByAPIKey resolves the tenant an API key belongs to.
func (s *Store) OrganizationByAPIKey(ctx context.Context, key string) (*model.Organization, error) {
	return s.organizationBy(ctx, `SELECT `+orgColumns+` FROM organizations WHERE api_key = $1`, key)
}

// OrganizationByEmail resolves a tenant by its contact email.
func (s *Store) OrganizationByEmail(ctx context.Context, email string) (*model.Organization, error) {
	return s.organizationBy(ctx, `SELECT `+orgColumns+` FROM organizations WHERE contact_email = $1`, email)
}

func (s *Store) organizationBy(ctx context.Context, query string, arg interface{}) (*model.Organization, error) {
	var org model.Organization
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&org.ID, &org.Name, &org.Slug, &org.ContactEmail,
		&org.PasswordHash, &org.APIKey, &org.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err, "Organization not found")
	}
	return &org, nil
}
