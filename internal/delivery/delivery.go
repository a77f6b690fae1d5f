// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running server that blocks in Serve until it fails or
// is shut down through the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
