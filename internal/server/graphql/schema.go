// Package graphql exposes the person service as a GraphQL API served over HTTP.
package graphql

import (
	"context"
	_ "embed"
	"runtime/debug"

	gql "github.com/graph-gophers/graphql-go"

	"github.com/dmitrijs2005/personql/internal/logging"
)

//go:embed schema.graphql
var schemaSDL string

// NewSchema parses the embedded SDL and binds it to a resolver over svc.
func NewSchema(svc PersonService, l logging.Logger) (*gql.Schema, error) {
	l = l.With("module", "graphql")
	return gql.ParseSchema(schemaSDL, NewResolver(svc, l), gql.Logger(panicLogger{logger: l}))
}

// panicLogger routes resolver panics recovered by the engine to our logger.
type panicLogger struct {
	logger logging.Logger
}

func (p panicLogger) LogPanic(ctx context.Context, value interface{}) {
	p.logger.Error(ctx, "resolver panic", "panic", value, "stack", string(debug.Stack()))
}
