package repositories

import (
	"context"
	"strconv"
	"time"

	"github.com/jobdev/jobboard/internal/clients/supabase"
	"github.com/jobdev/jobboard/internal/domain/models"
	"github.com/pkg/errors"
)

const jobsTable = "jobs"

type jobsClient interface {
	Select(ctx context.Context, token string, table string, query supabase.Query, dest any) error
	SelectSingle(ctx context.Context, token string, table string, query supabase.Query, dest any) error
	Insert(ctx context.Context, token string, table string, record any, dest any) error
	Update(ctx context.Context, token string, table string, query supabase.Query, fields any) error
	Delete(ctx context.Context, token string, table string, query supabase.Query) error
}

type Jobs struct {
	client jobsClient
}

func NewJobsRepository(client jobsClient) *Jobs {
	return &Jobs{client: client}
}

// ListAll returns every posting on the board, newest first.
func (r *Jobs) ListAll(ctx context.Context) ([]models.Job, error) {

	var jobs []models.Job
	err := r.client.Select(ctx, "", jobsTable,
		supabase.Query{OrderBy: "created_at", Descending: true}, &jobs)
	if err != nil {
		return nil, wrapError(err)
	}
	return jobs, nil
}

// ListByOwner returns the postings created by ownerID, newest first.
func (r *Jobs) ListByOwner(ctx context.Context, token string, ownerID string) ([]models.Job, error) {

	var jobs []models.Job
	err := r.client.Select(ctx, token, jobsTable,
		supabase.Query{Eq: map[string]string{"user_id": ownerID}, OrderBy: "created_at", Descending: true}, &jobs)
	if err != nil {
		return nil, wrapError(err)
	}
	return jobs, nil
}

// GetByID returns one posting. A missing row comes back as KindNotFound,
// distinguishable from transport and server failures.
func (r *Jobs) GetByID(ctx context.Context, id int64) (*models.Job, error) {

	var job models.Job
	err := r.client.SelectSingle(ctx, "", jobsTable,
		supabase.Query{Eq: map[string]string{"id": strconv.FormatInt(id, 10)}}, &job)
	if err != nil {
		return nil, wrapError(err)
	}
	return &job, nil
}

type jobInsert struct {
	models.JobDraft
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
}

// Create inserts a new posting owned by ownerID. The draft is assumed to be
// validated at the input boundary; the backend assigns the identifier.
func (r *Jobs) Create(ctx context.Context, token string, draft models.JobDraft, ownerID string) (*models.Job, error) {

	record := jobInsert{
		JobDraft:  draft,
		CreatedAt: time.Now().UTC(),
		UserID:    ownerID,
	}

	var created []models.Job
	err := r.client.Insert(ctx, token, jobsTable, record, &created)
	if err != nil {
		return nil, wrapError(err)
	}
	if len(created) != 1 {
		return nil, &Error{Kind: KindUnknown, cause: errors.Errorf("expected 1 created row, got %d", len(created))}
	}
	return &created[0], nil
}

// Update overwrites the editable fields of an existing posting. Identifier,
// owner and creation time are left untouched.
func (r *Jobs) Update(ctx context.Context, token string, id int64, draft models.JobDraft) error {

	err := r.client.Update(ctx, token, jobsTable,
		supabase.Query{Eq: map[string]string{"id": strconv.FormatInt(id, 10)}}, draft)
	return wrapError(err)
}

// Delete removes a posting by identifier. Confirmation is the caller's job.
func (r *Jobs) Delete(ctx context.Context, token string, id int64) error {

	err := r.client.Delete(ctx, token, jobsTable,
		supabase.Query{Eq: map[string]string{"id": strconv.FormatInt(id, 10)}})
	return wrapError(err)
}
