package resolver

import (
	"github.com/gatherhub/gatherhub-backend/internal/transport/graphql/generated"
)

// Root method wiring for the gqlgen executable schema. The generated package
// is produced by `go generate ./...` and is not committed.

func (r *Resolver) Query() generated.QueryResolver       { return &queryResolver{r} }
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }
func (r *Resolver) Event() generated.EventResolver       { return &eventResolver{r} }
func (r *Resolver) ResolvedInstance() generated.ResolvedInstanceResolver {
	return &resolvedInstanceResolver{r}
}
