// Package storage holds the durable key-value store that keeps the
// session log between runs.
package storage

import "context"

// Store is a string key-value store. Set overwrites any prior value.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
