package store

import (
	"context"
	"strconv"
	"strings"

	"github.com/utkarshk014/catalyst/apperr"
)

// Entity kinds accepted by RequireOwned. Used only for error messages.
const (
	KindProject = "project"
	KindTask    = "task"
)

// OwnerFunc resolves the owning organization of an entity by id.
type OwnerFunc func(ctx context.Context, id int64) (int64, error)

// RequireOwned is the single ownership check applied at every resource
// boundary. It parses the client-supplied identifier, resolves the entity's
// owning organization and compares it to the authorization context's
// organization. Only a passing check yields the parsed id; handlers must not
// touch the entity otherwise.
func RequireOwned(ctx context.Context, kind, rawID string, orgID int64, owner OwnerFunc) (int64, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, apperr.New(apperr.KindNotFound, "Invalid %s ID: %s", kind, rawID)
	}

	ownerID, err := owner(ctx, id)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return 0, apperr.New(apperr.KindNotFound, "%s with ID %s does not exist", titled(kind), rawID)
		}
		return 0, err
	}

	if ownerID != orgID {
		return 0, apperr.New(apperr.KindForbidden, "Not authorized to access this %s", kind)
	}

	return id, nil
}

func titled(kind string) string {
	if kind == "" {
		return kind
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}
