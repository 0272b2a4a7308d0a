package graph

import (
	"log/slog"
)

// GraphOption configures graph construction behavior.
type GraphOption func(*graphConfig)

// graphConfig holds internal configuration for a Graph.
type graphConfig struct {
	logger *slog.Logger
}

// WithLogger enables debug logging for graph operations.
//
// When set, the graph logs at Debug level:
//   - Node insertion (function, hash), including inferred nodes
//   - Edge insertion (relation), with separate messages for qualified and
//     unqualified edges
//   - AddNode and AddQualifiedEdge operation boundaries
//
// Citation/evidence validation failures are recorded as [Warning]s and are
// not logged.
//
// Pass nil to disable logging (the default).
func WithLogger(logger *slog.Logger) GraphOption {
	return func(cfg *graphConfig) {
		cfg.logger = logger
	}
}
