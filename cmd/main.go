package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/jobdev/jobboard/internal/clients/supabase"
	"github.com/jobdev/jobboard/internal/config"
	"github.com/jobdev/jobboard/internal/logger"
	"github.com/jobdev/jobboard/internal/metrics"
	"github.com/jobdev/jobboard/internal/repositories"
	"github.com/jobdev/jobboard/internal/services"
	"github.com/jobdev/jobboard/internal/web"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	client := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
	client.SetRateLimit(cfg.Supabase.MaxRequestsPerSecond)

	jobs := repositories.NewJobsRepository(client)
	sessions := repositories.NewCachedSessions(repositories.NewSessionsRepository(client), cfg.Server.SessionCacheTTL)

	bus := EventBus.New()

	audit, err := services.NewAudit(bus)
	if err != nil {
		log.Fatalf("can't create audit service: %v", err)
	}
	defer audit.Stop()

	stats, err := services.NewStatsCollector(jobs, cfg.Server.StatsCron)
	if err != nil {
		log.Fatalf("can't create stats collector: %v", err)
	}
	defer stats.Stop()

	server, err := web.NewServer(web.Repositories{Jobs: jobs, Sessions: sessions}, bus)
	if err != nil {
		log.Fatalf("can't create web server: %v", err)
	}

	go func() {
		if err := server.Run(cfg.Server.Port); err != nil {
			log.Fatalf("web server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	stats.Stop()
	audit.Stop()
	log.Info("Services stopped.")
}
