package holidays

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/storecraft/backoffice-backend/pkg/config"
	pkgerrors "github.com/storecraft/backoffice-backend/pkg/errors"
	"github.com/storecraft/backoffice-backend/pkg/logger"
	"github.com/storecraft/backoffice-backend/pkg/redis"
)

// Service exposes the upcoming public holidays, cached for the configured TTL
// so repeated dashboard loads do not hammer the public feed.
type Service interface {
	Upcoming(ctx context.Context) ([]Holiday, error)
}

type feed interface {
	NextPublicHolidays(ctx context.Context) ([]Holiday, error)
}

type cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(parts ...string) string
}

type service struct {
	feed  feed
	cache cache
	logg  *logger.Logger
	ttl   time.Duration
	key   string
}

// NewService builds the holiday service. The cache is optional; without it
// every call hits the feed.
func NewService(feedClient feed, cacheClient cache, cfg config.HolidayConfig, logg *logger.Logger) (Service, error) {
	if feedClient == nil {
		return nil, fmt.Errorf("holiday feed client required")
	}
	s := &service{
		feed:  feedClient,
		cache: cacheClient,
		logg:  logg,
		ttl:   cfg.CacheTTL,
		key:   "holidays:" + cfg.CountryCode,
	}
	return s, nil
}

func (s *service) Upcoming(ctx context.Context) ([]Holiday, error) {
	if cached, ok := s.readCache(ctx); ok {
		return cached, nil
	}

	entries, err := s.feed.NextPublicHolidays(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "holiday feed unavailable")
	}
	s.writeCache(ctx, entries)
	return entries, nil
}

func (s *service) readCache(ctx context.Context) ([]Holiday, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, s.cache.CacheKey(s.key))
	if err != nil {
		if !errors.Is(err, redis.Nil) && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "holiday cache read failed")
		}
		return nil, false
	}
	var entries []Holiday
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (s *service) writeCache(ctx context.Context, entries []Holiday) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.CacheKey(s.key), string(raw), s.ttl); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "holiday cache write failed")
	}
}
