// Package storage keeps a local copy of fetched message history in
// BadgerDB, so a room can warm-start and survive a temporarily
// unreachable backend. The cache is read-through: pages come from the
// backend first and fall back to disk.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"turnroom/contract"
	"turnroom/domain"
	"turnroom/errors"
)

type HistoryCache struct {
	db  *badger.DB
	log *slog.Logger
}

func NewHistoryCache(db *badger.DB, log *slog.Logger) *HistoryCache {
	return &HistoryCache{db: db, log: log}
}

// key formats as "msg:{room_id}:{timestamp_padded}:{id}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using the message id as a collision
//     disconnector if two messages arrive at the same nanosecond.
func key(m domain.Message) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", m.RoomID, m.CreatedAt.UnixNano(), m.ID))
}

// StorePage persists one fetched page. Optimistic entries never reach
// the cache: they have no server identity.
func (c *HistoryCache) StorePage(page []domain.Message) error {
	return c.db.Update(func(txn *badger.Txn) error {
		for _, m := range page {
			if m.IsOptimistic() {
				continue
			}
			encoded, err := json.Marshal(m)
			if err != nil {
				return err
			}
			if err := txn.Set(key(m), encoded); err != nil {
				return err
			}
		}
		return nil
	})
}

// Page reads up to limit messages older than before (or the newest
// ones when before is nil), oldest first, using a reverse prefix scan.
func (c *HistoryCache) Page(roomID string, before *time.Time, limit int) ([]domain.Message, error) {
	var page []domain.Message
	err := c.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", roomID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		if before != nil {
			seekKey = []byte(fmt.Sprintf("msg:%s:%019d", roomID, before.UnixNano()))
		}
		for it.Seek(seekKey); it.ValidForPrefix(prefix) && len(page) < limit; it.Next() {
			var m domain.Message
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &m)
			})
			if err != nil {
				return err
			}
			if before != nil && !m.CreatedAt.Before(*before) {
				continue
			}
			page = append(page, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(page) == 0 {
		return nil, errors.ErrCacheMiss
	}

	// Reverse scan yields newest first; callers expect ascending.
	for i, j := 0, len(page)-1; i < j; i, j = i+1, j-1 {
		page[i], page[j] = page[j], page[i]
	}
	return page, nil
}

// CachedPort decorates a data port with the history cache. Only
// message paging is intercepted; every other call passes through.
type CachedPort struct {
	contract.IDataPort
	cache *HistoryCache
	log   *slog.Logger
}

var _ contract.IDataPort = (*CachedPort)(nil)

func NewCachedPort(inner contract.IDataPort, cache *HistoryCache, log *slog.Logger) *CachedPort {
	return &CachedPort{IDataPort: inner, cache: cache, log: log}
}

// FetchMessages reads through the cache: a successful remote page is
// stored, a remote failure is served from disk when possible.
func (p *CachedPort) FetchMessages(ctx context.Context, roomID string, before *time.Time, limit int) ([]domain.Message, error) {
	page, err := p.IDataPort.FetchMessages(ctx, roomID, before, limit)
	if err == nil {
		if storeErr := p.cache.StorePage(page); storeErr != nil {
			p.log.Warn("History cache write failed", "error", storeErr)
		}
		return page, nil
	}

	cached, cacheErr := p.cache.Page(roomID, before, limit)
	if cacheErr != nil {
		return nil, err
	}
	p.log.Warn("Serving message page from local cache", "room", roomID, "size", len(cached), "error", err)
	return cached, nil
}
