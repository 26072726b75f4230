// Package ent holds the generated database access layer. Run `go generate
// ./ent` after changing anything under ent/schema.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
