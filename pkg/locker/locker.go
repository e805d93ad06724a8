// Package locker serializes the read-modify-write cycles of a single entity.
//
// The economy stores whole documents, two interactions loading the same user
// and saving it back would silently drop one of the changes. Every mutation of
// a stored entity holds the lock of its key from the load until the save.
package locker

import (
	"context"
)

// Unlock releases a lock. It is safe to call more than once.
type Unlock func()

type Locker interface {
	// Lock blocks until the lock of key is acquired or ctx is done.
	Lock(ctx context.Context, key string) (Unlock, error)
}
