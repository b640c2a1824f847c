// Seeds the allow-listed hotels so the site has records to attach images and
// descriptions to. Safe to re-run: upsert leaves existing fields alone when
// nothing new is supplied.
package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"southend_backend/internal/adapters/observability"
	redisad "southend_backend/internal/adapters/redis"
	"southend_backend/internal/app"
	"southend_backend/internal/domain"
	"southend_backend/internal/shared"
	mysqlrepo "southend_backend/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("hotels", len(domain.AllowedHotelNames)).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	// overwriteDescOnEmpty stays off here: re-running the seeder must not
	// blank out descriptions edited through the admin panel.
	hotels := app.NewHotelService(repo, cache, cfg.CacheTTL, cfg.StrictAllowList, false)

	sem := semaphore.NewWeighted(4)
	var wg sync.WaitGroup

	for _, name := range domain.AllowedHotelNames {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(hotelName string) {
			defer wg.Done()
			defer sem.Release(1)

			_, created, err := hotels.Upsert(ctx, app.UpsertInput{Name: hotelName})
			if err != nil {
				log.Warn().Str("name", hotelName).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("name", hotelName).Bool("created", created).Msg("seed ok")
		}(name)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
