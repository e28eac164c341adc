package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"logtime/logtime"
)

// Locker guards the database file while a cached entry is read and refreshed.
// *filemutex.FileMutex satisfies it. It does not share cached entries between
// processes: each one reads its own copy of the database loaded at open.
type Locker interface {
	Lock() error
	Unlock() error
}

// CachedSource serves sessions from the repository while they are fresh and
// falls back to the wrapped source otherwise.
type CachedSource struct {
	source logtime.SessionSource
	repo   SessionRepository
	mu     sync.Mutex
	mux    Locker
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedSource(source logtime.SessionSource, repo SessionRepository, mux Locker, ttl time.Duration, logger *slog.Logger) *CachedSource {
	return &CachedSource{
		source: source,
		repo:   repo,
		mux:    mux,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedSource) FetchSessions(ctx context.Context, login string) ([]logtime.Session, error) {
	if c.ttl <= 0 {
		return c.source.FetchSessions(ctx, login)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.mux.Lock(); err != nil {
		return nil, err
	}
	defer c.mux.Unlock()

	ss, ok, err := c.repo.GetSessions(login)
	if err != nil {
		// a broken cache entry must not hide the source
		c.logger.Warn("read cached sessions", slog.String("login", login), slog.String("err", err.Error()))
	} else if ok {
		c.logger.Debug("sessions cache hit", slog.String("login", login), slog.Int("sessions", len(ss)))
		return ss, nil
	}

	ss, err = c.source.FetchSessions(ctx, login)
	if err != nil {
		return nil, err
	}
	if err := c.repo.SaveSessions(login, ss, c.ttl); err != nil {
		c.logger.Warn("cache sessions", slog.String("login", login), slog.String("err", err.Error()))
	}
	return ss, nil
}
