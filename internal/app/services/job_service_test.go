package services

import (
	"context"
	"testing"
	"time"

	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestValidityDays(t *testing.T) {
	tests := []struct {
		name    string
		in      *int
		want    int
		wantErr bool
	}{
		{"default", nil, 30, false},
		{"lower bound", intPtr(1), 1, false},
		{"upper bound", intPtr(90), 90, false},
		{"zero", intPtr(0), 0, true},
		{"too long", intPtr(91), 0, true},
		{"negative", intPtr(-5), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidityDays(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidValidity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateJob(t *testing.T) {
	jobs := newFakeJobRepo()
	svc := NewJobService(jobs, zerolog.Nop()).(*jobServiceImpl)
	svc.now = func() time.Time { return testNow }
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, &appauth.Identity{UserID: 7}, &dto.CreateJobRequest{
		Title:        "  Backend Engineer ",
		Company:      "Microsoft",
		ValidityDays: intPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, 10, job.ValidityDays)
	assert.Equal(t, testNow.AddDate(0, 0, 10), job.ExpiryDate)
	require.NotNil(t, job.PostedByID)
	assert.Equal(t, int64(7), *job.PostedByID)

	anon, err := svc.CreateJob(ctx, nil, &dto.CreateJobRequest{Title: "Designer"})
	require.NoError(t, err)
	assert.Nil(t, anon.PostedByID)
	assert.Equal(t, 30, anon.ValidityDays)

	_, err = svc.CreateJob(ctx, nil, &dto.CreateJobRequest{Title: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateJob(ctx, nil, &dto.CreateJobRequest{Title: "X", ValidityDays: intPtr(120)})
	assert.ErrorIs(t, err, apperrors.ErrInvalidValidity)
	assert.Len(t, jobs.jobs, 2)
}

func TestSearchJobs_PassesCriteria(t *testing.T) {
	jobs := newFakeJobRepo()
	svc := NewJobService(jobs, zerolog.Nop())

	_, err := svc.SearchJobs(context.Background(), &dto.JobSearchQuery{Q: "google", Location: "bang", Type: "full-time"})
	require.NoError(t, err)
	assert.Equal(t, "google", jobs.lastSeen.Query)
	assert.Equal(t, "bang", jobs.lastSeen.Location)
	assert.Equal(t, "full-time", jobs.lastSeen.Type)
}
