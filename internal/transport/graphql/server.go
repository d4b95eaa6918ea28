package graphql

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql"
	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/playground"

	"github.com/gatherhub/gatherhub-backend/internal/config"
	"github.com/gatherhub/gatherhub-backend/internal/transport/graphql/generated"
	"github.com/gatherhub/gatherhub-backend/internal/transport/graphql/resolver"
)

// NewServer builds the gqlgen HTTP handler from the root resolver and
// applies the error presenter and server-level settings.
func NewServer(logger *slog.Logger, res *resolver.Resolver, cfg config.GraphQLConfig) *gqlhandler.Server {
	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})
	srv := gqlhandler.NewDefaultServer(schema)
	srv.SetErrorPresenter(NewErrorPresenter(logger))

	if !cfg.IntrospectionEnabled {
		srv.AroundOperations(disableIntrospection)
	}
	if cfg.ComplexityLimit > 0 {
		srv.Use(extension.FixedComplexityLimit(cfg.ComplexityLimit))
	}

	return srv
}

// PlaygroundHandler serves the GraphQL playground UI.
func PlaygroundHandler(endpoint string) http.Handler {
	return playground.Handler("GatherHub GraphQL", endpoint)
}

func disableIntrospection(ctx context.Context, next graphql.OperationHandler) graphql.ResponseHandler {
	graphql.GetOperationContext(ctx).DisableIntrospection = true
	return next(ctx)
}
