//go:build tools

package tools

// This file keeps CLI tool dependencies in go.mod. The tools themselves run
// through tool directives: gqlgen regenerates the GraphQL executor, goose
// manages migrations.
