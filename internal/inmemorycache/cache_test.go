package inmemorycache_test

import (
	"context"
	"testing"
	"time"

	"benqqqq/weather-tool/internal/inmemorycache"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
)

type InMemoryCacheTestSuite struct {
	suite.Suite
	clock         *clockwork.FakeClock
	cacheProvider *inmemorycache.InMemoryCache
}

func (s *InMemoryCacheTestSuite) SetupTest() {
	s.clock = clockwork.NewFakeClock()
	s.cacheProvider = inmemorycache.NewInMemoryCacheProviderWithClock(s.clock, time.Minute)
}

func (s *InMemoryCacheTestSuite) TearDownTest() {
	s.cacheProvider.Close()
}

func (s *InMemoryCacheTestSuite) TestGetNonExistentKey() {
	value, exists, err := s.cacheProvider.Get("nonexistent")

	s.NoError(err)
	s.False(exists)
	s.Nil(value)
}

func (s *InMemoryCacheTestSuite) TestSetAndGet() {
	data := &inmemorycache.GeoCacheData{
		Latitude:    48.85,
		Longitude:   2.35,
		DisplayName: "Paris, Île-de-France, France",
	}

	err := s.cacheProvider.Set("Paris", data, 5*time.Minute)
	s.NoError(err)

	value, exists, err := s.cacheProvider.Get("Paris")
	s.NoError(err)
	s.True(exists)
	s.Require().NotNil(value)
	s.Equal(*data, *value)
}

func (s *InMemoryCacheTestSuite) TestKeyIsNormalized() {
	data := &inmemorycache.GeoCacheData{Latitude: 51.5, Longitude: -0.12, DisplayName: "London, England, United Kingdom"}

	s.NoError(s.cacheProvider.Set("  London ", data, 5*time.Minute))

	for _, city := range []string{"London", "london", "LONDON", " london"} {
		value, exists, err := s.cacheProvider.Get(city)
		s.NoError(err)
		s.True(exists, city)
		s.Require().NotNil(value)
		s.Equal("London, England, United Kingdom", value.DisplayName)
	}
}

func (s *InMemoryCacheTestSuite) TestExpiration() {
	data := &inmemorycache.GeoCacheData{Latitude: 52.52, Longitude: 13.41, DisplayName: "Berlin, Land Berlin, Germany"}

	s.NoError(s.cacheProvider.Set("Berlin", data, 50*time.Second))

	_, exists, err := s.cacheProvider.Get("Berlin")
	s.NoError(err)
	s.True(exists)

	s.clock.Advance(51 * time.Second)

	value, exists, err := s.cacheProvider.Get("Berlin")
	s.NoError(err)
	s.False(exists)
	s.Nil(value)
}

func (s *InMemoryCacheTestSuite) TestOverwrite() {
	first := &inmemorycache.GeoCacheData{Latitude: 41.89, Longitude: 12.48, DisplayName: "Rome, Lazio, Italy"}
	second := &inmemorycache.GeoCacheData{Latitude: 34.25, Longitude: -85.16, DisplayName: "Rome, Georgia, United States"}

	s.NoError(s.cacheProvider.Set("Rome", first, 5*time.Minute))
	s.NoError(s.cacheProvider.Set("Rome", second, 5*time.Minute))

	value, exists, err := s.cacheProvider.Get("Rome")
	s.NoError(err)
	s.True(exists)
	s.Require().NotNil(value)
	s.Equal("Rome, Georgia, United States", value.DisplayName)
}

func (s *InMemoryCacheTestSuite) TestAutomaticCleanup() {
	data := &inmemorycache.GeoCacheData{Latitude: -33.87, Longitude: 151.21, DisplayName: "Sydney, New South Wales, Australia"}

	s.NoError(s.cacheProvider.Set("Sydney", data, 30*time.Second))
	s.Equal(1, s.cacheProvider.Len())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Require().NoError(s.clock.BlockUntilContext(ctx, 1))

	s.clock.Advance(time.Minute)

	s.Eventually(func() bool {
		return s.cacheProvider.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func (s *InMemoryCacheTestSuite) TestConcurrentAccess() {
	iterations := 100
	data := &inmemorycache.GeoCacheData{Latitude: 40.42, Longitude: -3.70, DisplayName: "Madrid, Madrid, Spain"}

	s.NoError(s.cacheProvider.Set("Madrid", data, 5*time.Minute))

	done := make(chan bool)
	for i := 0; i < iterations; i++ {
		go func() {
			value, exists, err := s.cacheProvider.Get("Madrid")
			s.NoError(err)
			s.True(exists)
			s.NotNil(value)
			done <- true
		}()
	}

	for i := 0; i < iterations; i++ {
		<-done
	}

	for i := 0; i < iterations; i++ {
		go func(lat float64) {
			err := s.cacheProvider.Set("Madrid", &inmemorycache.GeoCacheData{Latitude: lat, DisplayName: "Madrid, Madrid, Spain"}, 5*time.Minute)
			s.NoError(err)
			done <- true
		}(float64(i))
	}

	for i := 0; i < iterations; i++ {
		<-done
	}

	value, exists, err := s.cacheProvider.Get("Madrid")
	s.NoError(err)
	s.True(exists)
	s.Require().NotNil(value)
	s.GreaterOrEqual(value.Latitude, 0.0)
	s.LessOrEqual(value.Latitude, float64(iterations-1))
}

func TestInMemoryCacheTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCacheTestSuite))
}
