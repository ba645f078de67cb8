package repository_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/kikaportals/internal/database"
	"github.com/jask/kikaportals/internal/database/repository"
)

func openCatalog(t *testing.T) *repository.JobRepo {
	t.Helper()
	jobs, _ := openRepos(t)
	return jobs
}

func openRepos(t *testing.T) (*repository.JobRepo, *repository.ApplicationRepo) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.OpenCatalog(context.Background(), dsn, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewJobRepo(db), repository.NewApplicationRepo(db)
}

func TestJobRepoList(t *testing.T) {
	jobs := openCatalog(t)

	list, err := jobs.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, repository.JobPosting{
		ID:          1,
		Position:    "Frontend Developer",
		Company:     "Technologies- Krithika & Co",
		Location:    "New York, NY",
		SalaryRange: "$80k",
	}, list[0])
	require.Equal(t, "UX Designer", list[1].Position)
	require.Equal(t, "Chennai, TN", list[2].Location)
}

func TestJobRepoGet(t *testing.T) {
	jobs := openCatalog(t)
	ctx := context.Background()

	j, err := jobs.Get(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, j)
	require.Equal(t, "TCS Companies Association with Krithika & Co", j.Company)

	missing, err := jobs.Get(ctx, 99)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestApplicationRepoListNewestFirst(t *testing.T) {
	_, apps := openRepos(t)

	list, err := apps.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "2025-04-20", list[0].AppliedDate)
	require.Equal(t, repository.StatusUnderReview, list[0].Status)
	require.Equal(t, "2025-04-19", list[1].AppliedDate)
	require.Equal(t, repository.StatusInterviewScheduled, list[1].Status)
}

func TestApplicationRepoKeepsUnknownStatus(t *testing.T) {
	_, apps := openRepos(t)
	ctx := context.Background()

	require.NoError(t, apps.Upsert(ctx, repository.Application{
		ID: 3, Position: "UX Designer", Company: "TCS", AppliedDate: "2025-05-01", Status: "Offer Extended",
	}))
	list, err := apps.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, repository.ApplicationStatus("Offer Extended"), list[0].Status)
	require.Equal(t, repository.StatusOther, list[0].Status.Kind())
}

func TestStatusTone(t *testing.T) {
	cases := []struct {
		status repository.ApplicationStatus
		want   repository.Tone
	}{
		{repository.StatusUnderReview, repository.ToneWarning},
		{repository.StatusInterviewScheduled, repository.ToneSuccess},
		{repository.StatusRejected, repository.ToneDanger},
		{repository.StatusOther, repository.ToneSecondary},
		{"Archived", repository.ToneSecondary},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.status.Tone(), string(tc.status))
	}
}
