// Package lifecycle holds process lifecycle constants shared by infra and delivery.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown steps (DB ping, server drain).
const DefaultTimeout = 10 * time.Second
