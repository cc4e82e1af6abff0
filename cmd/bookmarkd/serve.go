package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/jstern/bookmarkd/internal/api"
	"github.com/jstern/bookmarkd/internal/auth"
	"github.com/jstern/bookmarkd/internal/config"
	"github.com/jstern/bookmarkd/internal/db"
	"github.com/jstern/bookmarkd/internal/logger"
	"github.com/jstern/bookmarkd/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
			defer func() { _ = log.Sync() }()

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			bookmarkStore := store.NewBookmarkStore(database, cfg.DB.Driver)
			authMiddleware := auth.NewStaticTokenMiddleware(cfg.Auth.Token)

			r := chi.NewRouter()
			r.Use(api.RequestLogger(log))
			r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("ok"))
			})
			r.Handle("/metrics", promhttp.Handler())
			r.Mount("/bookmarks", api.NewAPIRouter(api.Deps{
				Auth:      authMiddleware,
				Bookmarks: bookmarkStore,
			}))

			log.Info("listening", logger.String("addr", cfg.HTTP.Addr))
			return http.ListenAndServe(cfg.HTTP.Addr, r)
		},
	}
}
