package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
	"github.com/gatherhub/gatherhub-backend/pkg/ctxutil"
)

// NewErrorPresenter returns a gqlgen error presenter that maps domain errors
// to GraphQL error codes in extensions. Unknown errors are logged and replaced
// with a generic message so internals never leak to clients.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		// gqlgen wraps resolver errors in *gqlerror.Error.
		origErr := err
		if unwrapped := errors.Unwrap(err); unwrapped != nil {
			origErr = unwrapped
		}

		switch {
		case errors.Is(origErr, domain.ErrValidation):
			gqlErr.Extensions = map[string]interface{}{"code": "invalid_arguments"}
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				gqlErr.Extensions["issues"] = ve.Errors
			}

		case errors.Is(origErr, domain.ErrNotFound):
			gqlErr.Extensions = map[string]interface{}{"code": "arguments_associated_resources_not_found"}

		case errors.Is(origErr, domain.ErrAlreadyExists), errors.Is(origErr, domain.ErrConflict):
			gqlErr.Extensions = map[string]interface{}{"code": "invalid_arguments"}

		case errors.Is(origErr, domain.ErrUnauthorized):
			gqlErr.Extensions = map[string]interface{}{"code": "unauthorized"}

		case errors.Is(origErr, domain.ErrForbidden):
			gqlErr.Extensions = map[string]interface{}{"code": "forbidden"}

		case errors.Is(origErr, domain.ErrCorrupted):
			// Integrity faults are a server bug, not a client mistake: log loudly,
			// answer generically.
			log.ErrorContext(ctx, "corrupted state surfaced to GraphQL",
				slog.String("error", origErr.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]interface{}{"code": "unexpected"}

		default:
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", origErr.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]interface{}{"code": "unexpected"}
		}

		return gqlErr
	}
}
