// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/creatorstack/access-service/internal/config"
	"github.com/creatorstack/access-service/internal/db"
	"github.com/creatorstack/access-service/internal/identity"
	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring/prometheus"
	"github.com/creatorstack/access-service/internal/storage"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/pkg/authentication"
	"github.com/creatorstack/access-service/pkg/directory"
	"github.com/creatorstack/access-service/pkg/events"
	"github.com/creatorstack/access-service/pkg/gate"
	"github.com/creatorstack/access-service/pkg/invites"
	"github.com/creatorstack/access-service/pkg/membership"
	"github.com/creatorstack/access-service/pkg/roles"
	"github.com/creatorstack/access-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("access-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	identityClient := identity.NewClient(
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	var publisher events.PublisherInterface
	if specs.RedisAddr != "" {
		redisPublisher := events.NewRedisPublisher(specs.RedisAddr, specs.RedisPassword, specs.RedisDB, tracer, logger)
		if err := redisPublisher.Ping(context.Background()); err != nil {
			return fmt.Errorf("failed to reach redis: %v", err)
		}
		publisher = redisPublisher
		logger.Info("Membership events are published to redis")
	} else {
		publisher = events.NewNoopPublisher()
		logger.Info("Membership event publishing is disabled")
	}
	defer publisher.Close()

	recorder := events.NewRecorder(s, publisher, tracer, monitor, logger)
	inviteManager := invites.NewManager(s, tracer, monitor, logger)
	resolver := roles.NewResolver(specs.SuperAdminEmail)

	gateMiddleware := gate.NewMiddleware(
		s,
		identityClient,
		resolver,
		specs.SignInPath,
		specs.DefaultLandingPath,
		tracer,
		monitor,
		logger,
	)

	membershipService := membership.NewService(dbClient, s, inviteManager, recorder, tracer, monitor, logger)
	directoryService := directory.NewService(s, tracer, monitor, logger)

	var verifier authentication.TokenVerifierInterface
	if specs.OIDCIssuer != "" {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.OIDCJWKSURL,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create JWT authenticator: %v", err)
		}
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Warn("Token verification is disabled, tokens are trusted as-is")
	}
	authMiddleware := authentication.NewMiddleware(verifier, tracer, monitor, logger)

	var identityMiddleware *identity.Middleware
	if specs.TrustProxyHeader {
		identityMiddleware = identity.NewMiddleware(tracer, monitor, logger)
		logger.Warn("Trusting the proxy identity header for authentication")
	}

	router := web.NewRouter(
		membership.NewAPI(membershipService, gateMiddleware, tracer, monitor, logger),
		directory.NewAPI(directoryService, gateMiddleware, tracer, monitor, logger),
		authMiddleware,
		identityMiddleware,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
