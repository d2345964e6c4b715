// Package timeouts provides centralized timeout values for handler
// operations.
//
// These are used with context.WithTimeout for database work inside HTTP
// handlers so every handler bounds its I/O the same way.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads or lookups
//   - Medium: list queries, writes touching more than one collection
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for simple single-document operations.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and multi-step writes.
func Medium() time.Duration { return medium }
