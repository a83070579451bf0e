package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/likelion-sku/lionauth/accounts"
	"github.com/likelion-sku/lionauth/authrequest"
	"github.com/likelion-sku/lionauth/internal/config"
	"github.com/likelion-sku/lionauth/kv"
	"github.com/likelion-sku/lionauth/redirects"
	"github.com/likelion-sku/lionauth/server"
	"github.com/likelion-sku/lionauth/token/refresh"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load()
	c := config.New()
	displayAppname(c.GetAppName())

	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.GetRedisAddr(),
		Password: c.GetRedisPassword(),
		DB:       c.GetRedisDB(),
	})
	store := kv.NewRedisStore(redisClient)

	accountRepo, err := accounts.NewInMemoryRepoFromFile(filepath.Join(c.GetDataFolder(), "accounts.json"))
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}

	srv := server.New(
		c,
		accountRepo,
		authrequest.NewStore(store, c.GetAuthRequestTTL()),
		redirects.NewStore(store, c.GetRedirectTargetTTL()),
		refresh.NewManager(store, c.GetRefreshTokenExpiry()),
	)

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

func listenAndServe(server *http.Server) {
	log.Info().Str("addr", server.Addr).Msg("server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
