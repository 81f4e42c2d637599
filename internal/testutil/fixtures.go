// Package testutil provides deterministic stand-ins for the manager's
// injected collaborators.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tapwallet/walletd/internal/store"
)

// SeqIDs hands out "p1", "p2", ... so tests can assert exact ids.
type SeqIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func NewSeqIDs(prefix string) *SeqIDs {
	return &SeqIDs{prefix: prefix}
}

func (s *SeqIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s%d", s.prefix, s.n)
}

// FixedClock always reports T.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// FlakyStore wraps a Store and fails operations on demand, for exercising
// the swallow-and-log persistence paths.
type FlakyStore struct {
	store.Store
	GetErr error
	SetErr error
}

func (f *FlakyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.GetErr != nil {
		return nil, false, f.GetErr
	}
	return f.Store.Get(ctx, key)
}

func (f *FlakyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	return f.Store.Set(ctx, key, value)
}
