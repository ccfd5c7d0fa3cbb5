package services

import (
	"context"

	"github.com/jobdev/jobboard/internal/domain/models"
	"github.com/jobdev/jobboard/internal/logger"
	"github.com/jobdev/jobboard/internal/metrics"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type boardRepository interface {
	ListAll(ctx context.Context) ([]models.Job, error)
}

// StatsCollector periodically refreshes the board-size gauge from the
// backend.
type StatsCollector struct {
	jobs boardRepository
	cron *cron.Cron
}

func NewStatsCollector(jobs boardRepository, cronSpec string) (*StatsCollector, error) {

	collector := &StatsCollector{
		jobs: jobs,
		cron: cron.New(),
	}

	_, err := collector.cron.AddFunc(cronSpec, collector.refresh)
	if err != nil {
		return nil, err
	}

	collector.cron.Start()
	log.Infof("stats collector started, schedule: %s", cronSpec)
	return collector, nil
}

func (s *StatsCollector) Stop() {
	s.cron.Stop()
}

func (s *StatsCollector) refresh() {

	jobs, err := s.jobs.ListAll(context.Background())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSupabase).
			Errorf("failed to refresh board stats: %v", err)
		return
	}

	metrics.JobsTotalGauge.Set(float64(len(jobs)))
}
