package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/domain"
	"github.com/fleetops/opsboard/internal/repository"
)

func TestLoadRepo_CreateGetList(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := repository.NewLoadRepo(tcPool)

	l := &domain.Load{
		ID:          "L-100",
		OrgID:       1,
		Reference:   "REF-100",
		Status:      "IN_TRANSIT",
		Origin:      "Chicago, IL",
		Destination: "Dallas, TX",
	}
	require.NoError(t, repo.Create(ctx, l))

	got, err := repo.Get(ctx, 1, "L-100")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "REF-100", got.Reference)
	require.Equal(t, domain.LoadStatus("IN_TRANSIT"), got.Status)
	require.False(t, got.CreatedAt.IsZero())

	// another org cannot see it
	other, err := repo.Get(ctx, 2, "L-100")
	require.NoError(t, err)
	require.Nil(t, other)

	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestLoadRepo_CreateDuplicate(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := repository.NewLoadRepo(tcPool)

	l := &domain.Load{ID: "L-1", OrgID: 1}
	require.NoError(t, repo.Create(ctx, l))
	err := repo.Create(ctx, l)
	require.True(t, errors.Is(err, apperr.Conflict))
}

func TestLoadRepo_UpdatePartial(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := repository.NewLoadRepo(tcPool)

	require.NoError(t, repo.Create(ctx, &domain.Load{ID: "L-1", OrgID: 1, Status: "PENDING"}))

	status := domain.LoadStatus("DELIVERED")
	pod := domain.PODStatus("RECEIVED")
	ok, err := repo.UpdatePartial(ctx, 1, domain.PartialLoadUpdate{ID: "L-1", Status: &status, PODStatus: &pod})
	require.NoError(t, err)
	require.True(t, ok)

	got, err := repo.Get(ctx, 1, "L-1")
	require.NoError(t, err)
	require.Equal(t, status, got.Status)
	require.Equal(t, pod, got.PODStatus)

	// untouched fields survive
	require.Equal(t, "", got.Reference)

	ok, err = repo.UpdatePartial(ctx, 1, domain.PartialLoadUpdate{ID: "missing", Status: &status})
	require.NoError(t, err)
	require.False(t, ok)
}
