// Package delivery holds the ways the storefront is served.
package delivery

import "context"

// Delivery is a server started by the binary once the dependency graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
