package app

import (
	"context"
	"log"
	"sync"

	"cybershield-service/internal/domain"

	"golang.org/x/sync/singleflight"
)

// LeaderboardService produces the ranked global leaderboard. Every snapshot
// is a full recomputation over all users and attempts, acceptable at this
// scale. Concurrent recomputations (cache misses and publishes alike) are
// collapsed through singleflight and results are held in a short-TTL cache.
// A materialized per-user aggregate would replace this if scale ever mattered.
type LeaderboardService struct {
	source LeaderboardSource
	cache  LeaderboardCache
	sf     singleflight.Group

	mu          sync.Mutex
	subscribers map[chan []domain.LeaderboardEntry]struct{}
}

func NewLeaderboardService(source LeaderboardSource, cache LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{
		source:      source,
		cache:       cache,
		subscribers: make(map[chan []domain.LeaderboardEntry]struct{}),
	}
}

// Snapshot returns the ranked top 50, serving from cache when fresh.
func (s *LeaderboardService) Snapshot(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	if s.cache != nil {
		if entries, ok := s.cache.Get(ctx); ok {
			return entries, nil
		}
	}
	return s.recompute(ctx)
}

// recompute aggregates, ranks, and caches. All callers share one in-flight
// recomputation per key so a burst never fans out into parallel full scans.
func (s *LeaderboardService) recompute(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	result, err, _ := s.sf.Do("leaderboard", func() (interface{}, error) {
		entries, err := s.source.Aggregate(ctx)
		if err != nil {
			return nil, err
		}
		ranked := RankLeaderboard(entries)
		if s.cache != nil {
			s.cache.Set(ctx, ranked)
		}
		return ranked, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.LeaderboardEntry), nil
}

// Subscribe returns a channel receiving ranked snapshots published after
// attempt submissions. The cancel function must be called to avoid leaks.
func (s *LeaderboardService) Subscribe() (<-chan []domain.LeaderboardEntry, func()) {
	ch := make(chan []domain.LeaderboardEntry, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// Publish recomputes the leaderboard and fans it out to subscribers. Called
// after a successful attempt submission; failures are logged, not surfaced,
// since the submission itself already succeeded. Concurrent publishes share
// one recomputation.
func (s *LeaderboardService) Publish(ctx context.Context) {
	ranked, err := s.recompute(ctx)
	if err != nil {
		log.Printf("leaderboard publish: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- ranked:
		default:
			// Drop the stale snapshot so a slow reader never blocks publishing.
			select {
			case <-ch:
			default:
			}
			ch <- ranked
		}
	}
}
