package models

import (
	"github.com/samber/lo"
)

// FilterCriteria holds the two independent, optional equality predicates of
// the listing view. An empty value means the criterion matches everything.
type FilterCriteria struct {
	Location string
	JobType  string
}

func (c FilterCriteria) IsZero() bool {
	return c.Location == "" && c.JobType == ""
}

func (c FilterCriteria) Matches(job Job) bool {
	return (c.Location == "" || job.Location == c.Location) &&
		(c.JobType == "" || string(job.JobType) == c.JobType)
}

// Apply derives the filtered subset, preserving the order of the source list.
func (c FilterCriteria) Apply(jobs []Job) []Job {
	if c.IsZero() {
		return jobs
	}
	return lo.Filter(jobs, func(job Job, _ int) bool {
		return c.Matches(job)
	})
}

// LocationOptions lists the distinct locations present in the job set, in
// order of first occurrence.
func LocationOptions(jobs []Job) []string {
	return lo.Uniq(lo.Map(jobs, func(job Job, _ int) string {
		return job.Location
	}))
}

// JobTypeOptions lists the distinct job types present in the job set, in
// order of first occurrence.
func JobTypeOptions(jobs []Job) []string {
	return lo.Uniq(lo.Map(jobs, func(job Job, _ int) string {
		return string(job.JobType)
	}))
}
