// Package graphql provides the GraphQL transport layer for the GatherHub
// backend. It defines the schema, resolvers, dataloaders, and error handling
// for recurring event resolution and lifecycle mutations. The executable
// schema (generated/) is produced by gqlgen from the schema file.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
