package services

import (
	"github.com/asaskevich/EventBus"
	"github.com/jobdev/jobboard/internal/events"
	"github.com/jobdev/jobboard/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// Audit records every job mutation in the log and in the mutation counters.
type Audit struct {
	bus EventBus.Bus
}

func NewAudit(bus EventBus.Bus) (*Audit, error) {

	audit := &Audit{bus: bus}
	if err := bus.Subscribe(events.JobChangedTopic, audit.onJobChanged); err != nil {
		return nil, err
	}
	return audit, nil
}

func (a *Audit) Stop() {
	_ = a.bus.Unsubscribe(events.JobChangedTopic, a.onJobChanged)
}

func (a *Audit) onJobChanged(event events.JobChanged) {

	log.WithFields(log.Fields{
		"job_id": event.JobID,
		"owner":  event.OwnerID,
	}).Infof("job %s", event.Action)

	switch event.Action {
	case events.ActionCreated:
		metrics.JobsCreatedCounter.Inc()
	case events.ActionDeleted:
		metrics.JobsDeletedCounter.Inc()
	}
}
