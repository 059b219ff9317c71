// @title           Job Board API
// @version         1.0
// @description     Job postings, candidate profiles and the shared skill catalogue.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"github.com/smartjob/job-board/internal/api"
	"github.com/smartjob/job-board/internal/api/handler"
	"github.com/smartjob/job-board/internal/api/middleware"
	"github.com/smartjob/job-board/internal/core/service"
	"github.com/smartjob/job-board/internal/pkg/config"
	"github.com/smartjob/job-board/pkg/logger"
)

const startupTimeout = 30 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "job-board",
	})

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	st, err := openStore(startCtx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}
	cache, cachePinger, closeCache := skillCache(startCtx, cfg, log)

	hasher := service.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := service.NewTokenService(service.TokenConfig{
		Secret: []byte(cfg.Auth.JWTSecret),
		TTL:    cfg.Auth.JWTTTL,
		Issuer: cfg.Auth.JWTIssuer,
	})
	skills := service.NewSkillRegistry(st.skills, cache, log)

	var optional []handler.Pinger
	if cachePinger != nil {
		optional = append(optional, cachePinger)
	}

	e := api.NewRouter(api.Dependencies{
		Auth:     service.NewAuthService(st.identities, hasher, tokens, log),
		Jobs:     service.NewJobService(st.jobs, skills, log),
		Profiles: service.NewProfileService(st.profiles, st.identities, skills, log),
		Tokens:   tokens,
		TokenTTL: tokens.TTL(),
		Policy:   middleware.DefaultPolicy(),
		Required: []handler.Pinger{st.pinger},
		Optional: optional,
		Logger:   log,
	}, api.Options{
		AuthRateLimit:    cfg.HTTP.AuthRateLimit,
		AuthRateBurst:    cfg.HTTP.AuthRateBurst,
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// The store closes only after the server has drained.
	operations := map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			log.Info().Msg("shutting down HTTP server")
			if err := e.Shutdown(ctx); err != nil {
				return err
			}
			log.Info().Str("store", st.name).Msg("closing store")
			return st.close(ctx)
		},
	}
	if closeCache != nil {
		operations["redis"] = closeCache
	}

	wait := gfshutdown.GracefulShutdown(context.Background(), cfg.HTTP.ShutdownTimeout, operations)
	code := <-wait
	log.Info().Int("exit_code", code).Msg("server stopped")
	os.Exit(code)
}
