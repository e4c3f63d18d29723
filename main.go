package main

import (
	"os"
	"strings"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"

	"legalpages/config"
	"legalpages/handlers"
	"legalpages/pages"
	"legalpages/platform/shutdown"
)

func main() {
	if err := config.Initialize(); err != nil {
		logger.LogErr(err, "invalid configuration")
		os.Exit(1)
	}
	cfg := config.Get()

	store := pages.NewStore(cfg.ContentDir)
	router := handlers.NewRouter(handlers.NewTable(handlers.DefaultRoutes()), store, cfg.ServiceName, cfg.Verbose)

	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address(),
		Verbose: cfg.Verbose,
	})

	// Request logging
	s.Use(rweb.RequestInfo)

	handlers.SetupRoutes(s, router)

	logger.Info("Starting legal pages server",
		"port", cfg.Port,
		"content_dir", store.Dir(),
		"routes", strings.Join(router.Table().Paths(), " "),
	)
	if missing := store.Missing(); len(missing) > 0 {
		logger.Warn("Page files missing, they will be served as 404", "files", strings.Join(missing, ", "))
	}

	done := make(chan struct{})
	shutdown.InitShutdownService(done)
	shutdown.RegisterHook(func(grace time.Duration) error {
		logger.Info("Legal pages server stopping", "port", cfg.Port)
		return nil
	})

	go func() {
		if err := s.Run(); err != nil {
			logger.LogErr(err, "server stopped")
			os.Exit(1)
		}
	}()

	<-done
}
