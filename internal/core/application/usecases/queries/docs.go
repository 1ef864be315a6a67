// Package queries contains the read side of the application: each query
// is a constructor-guarded value object paired with a handler that runs
// raw SQL against the read model and returns flat view structs. Queries
// never load aggregates and never mutate state.
package queries
