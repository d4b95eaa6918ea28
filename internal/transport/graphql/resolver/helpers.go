package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
	"github.com/gatherhub/gatherhub-backend/pkg/ctxutil"
)

// actorID extracts the authenticated user from the context.
func actorID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// orgID extracts the organization scope from the context.
func orgID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.OrgIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
