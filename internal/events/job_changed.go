package events

var JobChangedTopic = "JobChangedEvent"

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// JobChanged is published after a mutation completed against the backend.
type JobChanged struct {
	Action  Action
	JobID   int64
	OwnerID string
}
