// Package lifecycle holds constants shared by startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long lifecycle hooks (DB ping, HTTP shutdown)
// may take before they are abandoned.
const DefaultTimeout = 10 * time.Second
