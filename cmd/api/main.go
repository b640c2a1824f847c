package main

import (
	"context"
	"database/sql"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "southend_backend/internal/adapters/http_server"
	"southend_backend/internal/adapters/observability"
	redisad "southend_backend/internal/adapters/redis"
	smtpgw "southend_backend/internal/adapters/smtp"
	"southend_backend/internal/app"
	"southend_backend/internal/shared"
	mysqlrepo "southend_backend/internal/storage/mysql"
	"southend_backend/internal/storage/popupfile"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(reg)

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	gw, err := smtpgw.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("smtp gateway init failed")
	}

	hotels := app.NewHotelService(repo, cache, cfg.CacheTTL, cfg.StrictAllowList, cfg.OverwriteDescOnEmpty)
	testimonials := app.NewTestimonialService(repo, cache, cfg.CacheTTL)
	notify := app.NewNotificationService(gw, cfg.AdminEmail, cfg.MailFrom)
	popup := popupfile.New(cfg.PopupFile)

	// http
	srv := server.New(cfg.AllowedOrigins)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Hotels:       hotels,
		Testimonials: testimonials,
		Notify:       notify,
		Popup:        popup,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("shutdown complete")
}
