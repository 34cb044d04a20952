// Package delivery defines the entry points through which the application is driven.
package delivery

import "context"

// Delivery is a long-running transport front end (HTTP server, worker, ...).
// Serve blocks until the delivery stops or ctx is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
