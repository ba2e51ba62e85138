// Package state implements the persistence bridge: the aggregate document is
// read from the remote store first, then the local mirror, then the seed
// data, and every save goes to both sinks best-effort. Write
// failures are logged and never surfaced; the in-memory aggregate owned by
// the session controller stays the source of truth for the session.
package state

import (
	"context"

	"fifty3/models"
	"fifty3/utils"

	"go.uber.org/zap"
)

// Store is the read/write contract shared by the Mongo repository and the
// Redis mirror.
type Store interface {
	Get(ctx context.Context) (*models.Aggregate, error)
	Put(ctx context.Context, agg models.Aggregate) error
}

// Bridge composes the two stores behind the loadAggregate/saveAggregate
// operations.
type Bridge struct {
	Remote Store
	Local  Store
}

func NewBridge(remote, local Store) *Bridge {
	return &Bridge{Remote: remote, Local: local}
}

// Load returns the first successful non-empty aggregate: remote store, then
// local mirror, then seed data. Read errors are logged and treated as misses.
func (b *Bridge) Load(ctx context.Context) models.Aggregate {
	logger := utils.GetLogger()

	if b.Remote != nil {
		agg, err := b.Remote.Get(ctx)
		switch {
		case err != nil:
			logger.Error("state: remote read failed", zap.Error(err))
		case agg != nil && !agg.IsEmpty():
			logger.Info("state: loaded aggregate from remote store")
			return *agg
		}
	}

	if b.Local != nil {
		agg, err := b.Local.Get(ctx)
		switch {
		case err != nil:
			logger.Error("state: local mirror read failed", zap.Error(err))
		case agg != nil && !agg.IsEmpty():
			logger.Info("state: loaded aggregate from local mirror")
			return *agg
		}
	}

	logger.Info("state: no persisted aggregate found, seeding demo data")
	return Seed()
}

// Save writes the snapshot to both sinks asynchronously. Fire-and-forget:
// failures are logged, never retried, never reported to the caller.
func (b *Bridge) Save(agg models.Aggregate) {
	go func() {
		logger := utils.GetLogger()
		ctx := context.Background()

		if b.Local != nil {
			if err := b.Local.Put(ctx, agg); err != nil {
				logger.Error("state: local mirror write failed", zap.Error(err))
			}
		}
		if b.Remote != nil {
			if err := b.Remote.Put(ctx, agg); err != nil {
				logger.Error("state: remote write failed", zap.Error(err))
			}
		}
	}()
}
