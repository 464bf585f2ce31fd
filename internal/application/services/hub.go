package services

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	accdomain "github.com/kieeler123/cloud-service/internal/domain/account"
	domain "github.com/kieeler123/cloud-service/internal/domain/file"
)

// Subscription is one live view of an owner's drive. Each delivery is a full
// snapshot that replaces the previous one; the channel holds at most one
// pending snapshot and a newer one displaces it.
type Subscription struct {
	ownerUUID accdomain.UUID
	ownerID   accdomain.ID
	scope     domain.Scope

	mu     sync.Mutex
	closed bool
	ch     chan domain.Records
}

func (s *Subscription) Snapshots() <-chan domain.Records { return s.ch }

func (s *Subscription) push(snap domain.Records) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- snap:
	default:
		// latest wins
		select {
		case <-s.ch:
		default:
		}
		s.ch <- snap
	}
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

// SnapshotHub fans fresh snapshots out to live subscribers. Mutating services
// call Invalidate after every write; the hub re-queries per subscriber and
// pushes the projected result.
type SnapshotHub struct {
	logger            *zap.Logger
	fileRepository    domain.Repository
	accountRepository accdomain.Repository
	mCounter          *prometheus.CounterVec

	mu   sync.RWMutex
	subs map[accdomain.UUID]map[*Subscription]struct{}
}

func NewSnapshotHub(
	logger *zap.Logger,
	fileRepository domain.Repository,
	accountRepository accdomain.Repository,
	mCounter *prometheus.CounterVec,
) *SnapshotHub {
	return &SnapshotHub{
		logger:            logger,
		fileRepository:    fileRepository,
		accountRepository: accountRepository,
		mCounter:          mCounter,
		subs:              make(map[accdomain.UUID]map[*Subscription]struct{}),
	}
}

// Subscribe registers a live view and delivers the initial snapshot before
// returning. The subscription closes itself when ctx is done.
func (h *SnapshotHub) Subscribe(ctx context.Context, ownerUUID accdomain.UUID, scope domain.Scope) (*Subscription, error) {
	id, err := h.accountRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	sub := &Subscription{
		ownerUUID: ownerUUID,
		ownerID:   id,
		scope:     scope,
		ch:        make(chan domain.Records, 1),
	}

	snap, err := h.snapshot(ctx, sub)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	if h.subs[ownerUUID] == nil {
		h.subs[ownerUUID] = make(map[*Subscription]struct{})
	}
	h.subs[ownerUUID][sub] = struct{}{}
	h.mu.Unlock()

	sub.push(snap)
	h.mCounter.WithLabelValues("snapshot_subscriptions_total").Inc()

	go func() {
		<-ctx.Done()
		h.unsubscribe(sub)
	}()

	return sub, nil
}

// Invalidate re-queries and pushes a fresh snapshot to every subscriber of the
// owner. A failed query drops that one push; the subscriber keeps its last
// snapshot and catches up on the next invalidation.
func (h *SnapshotHub) Invalidate(ctx context.Context, ownerUUID accdomain.UUID) {
	h.mu.RLock()
	targets := make([]*Subscription, 0, len(h.subs[ownerUUID]))
	for sub := range h.subs[ownerUUID] {
		targets = append(targets, sub)
	}
	h.mu.RUnlock()

	for _, sub := range targets {
		snap, err := h.snapshot(ctx, sub)
		if err != nil {
			h.logger.Error("snapshot refresh failed",
				zap.String("owner", ownerUUID.String()),
				zap.Error(err),
			)
			continue
		}
		sub.push(snap)
		h.mCounter.WithLabelValues("snapshots_pushed_total").Inc()
	}
}

func (h *SnapshotHub) snapshot(ctx context.Context, sub *Subscription) (domain.Records, error) {
	var (
		recs domain.Records
		err  error
	)
	if sub.scope == domain.ScopeTrashed {
		recs, err = h.fileRepository.FetchTrashedByOwner(ctx, sub.ownerID)
	} else {
		recs, err = h.fileRepository.FetchByOwner(ctx, sub.ownerID)
	}
	if err != nil {
		return nil, err
	}

	return domain.Project(recs, sub.scope), nil
}

func (h *SnapshotHub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	if owned := h.subs[sub.ownerUUID]; owned != nil {
		delete(owned, sub)
		if len(owned) == 0 {
			delete(h.subs, sub.ownerUUID)
		}
	}
	h.mu.Unlock()

	sub.close()
}
