package main

import (
	"context"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"benqqqq/weather-tool/config"
	"benqqqq/weather-tool/internal/api/v1/handlers"
	"benqqqq/weather-tool/internal/db/weatherquery"
	"benqqqq/weather-tool/internal/inmemorycache"
	"benqqqq/weather-tool/internal/observability"
	"benqqqq/weather-tool/internal/providers"
	"benqqqq/weather-tool/internal/service"
	"benqqqq/weather-tool/internal/tool"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var history weatherquery.Repository
	if conf.DatabaseEnabled() {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			logger.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		history = weatherquery.NewRepository(db)
	} else {
		logger.Info().Msg("DATABASE_HOST not set, lookup history disabled")
	}

	metrics := observability.NewMetrics()

	var geocoder providers.GeocodingService = providers.NewGeocodingService(conf.GeocodingBaseURL, conf.UpstreamTimeout, metrics)
	if conf.GeocodeCacheTTL > 0 {
		cacheProvider := inmemorycache.NewInMemoryCacheProvider(conf.GeocodeCacheCleanupInterval)
		defer cacheProvider.Close()
		geocoder = providers.NewCachedGeocodingService(geocoder, cacheProvider, conf.GeocodeCacheTTL, metrics)
	}
	forecaster := providers.NewForecastService(conf.ForecastBaseURL, conf.UpstreamTimeout, metrics)

	weatherService := service.NewWeatherService(geocoder, forecaster, history, metrics)

	tools := tool.NewManager()
	tools.Register(tool.NewWeatherTool(weatherService))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", handlers.NewWeatherHandler(weatherService, tools, conf.HTTPTimeoutDuration()))

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           mux,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
		weatherService.Shutdown()
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && serverErr != http.ErrServerClosed {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&weatherquery.WeatherQuery{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
