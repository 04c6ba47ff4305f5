package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/courtwatch/court-auction-BE/api"
	"github.com/courtwatch/court-auction-BE/internal/crawler"
	db "github.com/courtwatch/court-auction-BE/internal/db"
	"github.com/courtwatch/court-auction-BE/internal/storage"
	"github.com/courtwatch/court-auction-BE/internal/util"
	"github.com/courtwatch/court-auction-BE/internal/worker"
	"github.com/courtwatch/court-auction-BE/internal/ws"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/rs/zerolog/log"

	_ "github.com/courtwatch/court-auction-BE/docs"
)

//	@title			Court Auction API
//	@version		1.0.0
//	@description	API documentation for the court auction tracker

//	@host		localhost:8080
//	@BasePath	/v1
//	@schemes	http https

// @securityDefinitions.apikey	accessToken
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	log.Info().Msg("configurations loaded successfully ✅")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create connection pool
	connPool, err := pgxpool.New(context.Background(), config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string 😣")
	}

	pingErr := connPool.Ping(context.Background())
	if pingErr != nil {
		log.Fatal().Err(pingErr).Msg("failed to connect to db 😣")
	}
	log.Info().Msg("connected to db ✅")

	store := db.NewStore(connPool)

	redisDb := redis.NewClient(&redis.Options{
		Addr:     config.RedisServerAddress,
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	redisOpt := asynq.RedisClientOpt{
		Addr: config.RedisServerAddress,
	}

	fileStore := storage.NewCloudinaryStore(config.CloudinaryURL)
	log.Info().Msg("Cloudinary store created successfully ✅")

	// The hub is the only shared connection state; everything that delivers
	// notifications goes through it. It gets its own context so the HTTP
	// server can stop accepting before the remaining connections are
	// force-closed.
	hub := ws.NewHub(config.PingInterval)
	hubCtx, stopHub := context.WithCancel(context.Background())
	hubDone := make(chan struct{})
	go func() {
		hub.Run(hubCtx)
		close(hubDone)
	}()

	notifier := ws.NewNotifier(store, hub)

	taskDistributor := worker.NewTaskDistributor(redisOpt)
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, notifier)
	if err = taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}
	defer taskProcessor.Shutdown()
	log.Info().Msg("task processor started successfully ✅")

	auctionCrawler, err := crawler.NewCrawler(config, store, fileStore, taskDistributor, redisDb)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create auction crawler 😣")
	}
	if err = auctionCrawler.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start auction crawler 😣")
	}
	defer auctionCrawler.Stop()
	log.Info().Msg("auction crawler started successfully ✅")

	server, err := api.NewServer(store, hub, auctionCrawler, &config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start(config.HTTPServerAddress)
	}()
	log.Info().Msgf("HTTP server is listening at %s ✅", config.HTTPServerAddress)

	select {
	case err = <-serverErr:
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down HTTP server 😣")
	}

	// No new connections can arrive now; force-close the remaining ones so
	// every unregister fires before the process exits.
	stopHub()
	<-hubDone
	log.Info().Msg("HTTP server stopped ✅")
}
