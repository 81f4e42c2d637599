// Package store provides the persistent key-value collaborator the wallet
// manager mirrors its state into. Values are opaque blobs (JSON in
// practice); the store itself knows nothing about cards or transactions.
package store

import "context"

// Fixed keys used by the wallet manager.
const (
	KeyCards        = "wallet_cards"
	KeyTransactions = "transactions"
)

// Store is a namespaced string key-value store. Get reports ok=false when
// the key has never been written, which is distinct from an error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
