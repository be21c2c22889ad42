package providers

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"benqqqq/weather-tool/internal/inmemorycache"
	"benqqqq/weather-tool/internal/observability"
)

// CachedGeocodingService serves repeat lookups of a city from the cache.
type CachedGeocodingService struct {
	inner   GeocodingService
	cache   inmemorycache.Cache
	ttl     time.Duration
	metrics *observability.Metrics
}

func NewCachedGeocodingService(inner GeocodingService, cache inmemorycache.Cache, ttl time.Duration, metrics *observability.Metrics) *CachedGeocodingService {
	return &CachedGeocodingService{
		inner:   inner,
		cache:   cache,
		ttl:     ttl,
		metrics: metrics,
	}
}

func (c *CachedGeocodingService) Geocode(ctx context.Context, city string) (GeoLocation, error) {
	cached, ok, err := c.cache.Get(city)
	if err != nil {
		log.Warn().Err(err).Str("city", city).Msg("geocode cache read failed")
	}
	if ok {
		c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return GeoLocation{
			Latitude:    cached.Latitude,
			Longitude:   cached.Longitude,
			DisplayName: cached.DisplayName,
		}, nil
	}
	c.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	location, err := c.inner.Geocode(ctx, city)
	if err != nil {
		// Only successful lookups are cached.
		return location, err
	}

	if err := c.cache.Set(city, &inmemorycache.GeoCacheData{
		Latitude:    location.Latitude,
		Longitude:   location.Longitude,
		DisplayName: location.DisplayName,
	}, c.ttl); err != nil {
		log.Warn().Err(err).Str("city", city).Msg("geocode cache write failed")
	}

	return location, nil
}
