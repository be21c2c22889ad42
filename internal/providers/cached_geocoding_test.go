package providers_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"benqqqq/weather-tool/internal/inmemorycache"
	"benqqqq/weather-tool/internal/mocks"
	"benqqqq/weather-tool/internal/observability"
	"benqqqq/weather-tool/internal/providers"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CachedGeocodingServiceTestSuite struct {
	suite.Suite
	inner   *mocks.MockGeocodingService
	cache   *mocks.MockCache
	metrics *observability.Metrics
	service *providers.CachedGeocodingService
}

func (s *CachedGeocodingServiceTestSuite) SetupTest() {
	s.inner = mocks.NewMockGeocodingService(s.T())
	s.cache = mocks.NewMockCache(s.T())
	s.metrics = observability.NewMetricsForTesting()
	s.service = providers.NewCachedGeocodingService(s.inner, s.cache, time.Hour, s.metrics)
}

func (s *CachedGeocodingServiceTestSuite) TestCacheHitSkipsGeocoder() {
	s.cache.On("Get", "Paris").Return(&inmemorycache.GeoCacheData{
		Latitude:    48.85,
		Longitude:   2.35,
		DisplayName: "Paris, France",
	}, true, nil)

	location, err := s.service.Geocode(context.Background(), "Paris")

	s.NoError(err)
	s.Equal(providers.GeoLocation{Latitude: 48.85, Longitude: 2.35, DisplayName: "Paris, France"}, location)
	s.inner.AssertNotCalled(s.T(), "Geocode", mock.Anything, mock.Anything)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.GeocodeCache.WithLabelValues("hit")))
}

func (s *CachedGeocodingServiceTestSuite) TestCacheMissStoresResult() {
	expected := providers.GeoLocation{Latitude: 35.68, Longitude: 139.69, DisplayName: "Tokyo, Tokyo, Japan"}

	s.cache.On("Get", "Tokyo").Return(nil, false, nil)
	s.inner.On("Geocode", mock.Anything, "Tokyo").Return(expected, nil).Once()
	s.cache.On("Set", "Tokyo", &inmemorycache.GeoCacheData{
		Latitude:    35.68,
		Longitude:   139.69,
		DisplayName: "Tokyo, Tokyo, Japan",
	}, time.Hour).Return(nil).Once()

	location, err := s.service.Geocode(context.Background(), "Tokyo")

	s.NoError(err)
	s.Equal(expected, location)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.GeocodeCache.WithLabelValues("miss")))
}

func (s *CachedGeocodingServiceTestSuite) TestFailureIsNotCached() {
	notFound := fmt.Errorf("geocoding: %w", providers.ErrLocationNotFound)

	s.cache.On("Get", "Atlantis").Return(nil, false, nil)
	s.inner.On("Geocode", mock.Anything, "Atlantis").Return(providers.GeoLocation{}, notFound)

	_, err := s.service.Geocode(context.Background(), "Atlantis")

	s.ErrorIs(err, providers.ErrLocationNotFound)
	s.cache.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CachedGeocodingServiceTestSuite) TestCacheErrorsDoNotFailLookup() {
	expected := providers.GeoLocation{Latitude: 52.37, Longitude: 4.89, DisplayName: "Amsterdam, North Holland, Netherlands"}

	s.cache.On("Get", "Amsterdam").Return(nil, false, errors.New("corrupt entry"))
	s.inner.On("Geocode", mock.Anything, "Amsterdam").Return(expected, nil)
	s.cache.On("Set", "Amsterdam", mock.Anything, time.Hour).Return(errors.New("write failed"))

	location, err := s.service.Geocode(context.Background(), "Amsterdam")

	s.NoError(err)
	s.Equal(expected, location)
}

func TestCachedGeocodingServiceSuite(t *testing.T) {
	suite.Run(t, new(CachedGeocodingServiceTestSuite))
}
