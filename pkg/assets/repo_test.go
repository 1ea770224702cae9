package assets

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"assetmgmt/pkg/testhelpers"
)

func setupAssetRepo(t *testing.T) (AssetRepository, *pgxpool.Pool) {
	t.Helper()
	pool := testhelpers.SetupTestPool(t)
	testhelpers.CleanAssets(t, pool)
	return NewPostgresAssetRepository(pool), pool
}

func names(items []Asset) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.Name)
	}
	return out
}

func TestPostgresAssetRepository_CreateAndGet(t *testing.T) {
	repo, _ := setupAssetRepo(t)
	ctx := context.Background()

	created, err := repo.CreateAsset(ctx, Asset{Name: "Laptop", Description: "Dev box", Type: "hardware"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedOn.IsZero())
	require.False(t, created.UpdatedOn.Before(created.CreatedOn))

	got, err := repo.GetAssetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Laptop", got.Name)
	require.Equal(t, "Dev box", got.Description)
	require.Equal(t, "hardware", got.Type)
}

func TestPostgresAssetRepository_GetMissing(t *testing.T) {
	repo, _ := setupAssetRepo(t)

	_, err := repo.GetAssetByID(context.Background(), 123456)

	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestPostgresAssetRepository_UpdateAsset(t *testing.T) {
	repo, _ := setupAssetRepo(t)
	ctx := context.Background()

	created, err := repo.CreateAsset(ctx, Asset{Name: "Old name", Description: "old", Type: "T"})
	require.NoError(t, err)

	created.Name = "New name"
	created.Description = "updated"
	created.Type = "U"
	updated, err := repo.UpdateAsset(ctx, created)

	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.True(t, updated.CreatedOn.Equal(created.CreatedOn))
	require.False(t, updated.UpdatedOn.Before(created.UpdatedOn))
	require.Equal(t, created.Version+1, updated.Version)
	require.Equal(t, "New name", updated.Name)
}

func TestPostgresAssetRepository_UpdateAsset_StaleVersion(t *testing.T) {
	repo, _ := setupAssetRepo(t)
	ctx := context.Background()

	created, err := repo.CreateAsset(ctx, Asset{Name: "Laptop", Description: "Dev box", Type: "T"})
	require.NoError(t, err)

	_, err = repo.UpdateAsset(ctx, created)
	require.NoError(t, err)

	_, err = repo.UpdateAsset(ctx, created)
	require.ErrorIs(t, err, ErrVersionConflict)
}

func TestPostgresAssetRepository_UpdateAsset_Missing(t *testing.T) {
	repo, _ := setupAssetRepo(t)

	_, err := repo.UpdateAsset(context.Background(), Asset{ID: 999999, Name: "Ghost", Description: "none", Type: "T"})

	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestPostgresAssetRepository_DeleteTwice(t *testing.T) {
	repo, pool := setupAssetRepo(t)
	ctx := context.Background()

	id := testhelpers.CreateTestAsset(t, pool, "T")

	require.NoError(t, repo.DeleteAsset(ctx, id))
	require.ErrorIs(t, repo.DeleteAsset(ctx, id), ErrAssetNotFound)

	_, err := repo.GetAssetByID(ctx, id)
	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestPostgresAssetRepository_ListAssets_DefaultIsIDDescending(t *testing.T) {
	repo, pool := setupAssetRepo(t)
	ctx := context.Background()

	first := testhelpers.CreateTestAsset(t, pool, "T")
	second := testhelpers.CreateTestAsset(t, pool, "T")
	third := testhelpers.CreateTestAsset(t, pool, "T")

	items, err := repo.ListAssets(ctx, ResolveSort("", ""))

	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, []int64{third, second, first}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func TestPostgresAssetRepository_ListAssets_ByName(t *testing.T) {
	repo, _ := setupAssetRepo(t)
	ctx := context.Background()

	for _, n := range []string{"B", "A", "C"} {
		_, err := repo.CreateAsset(ctx, Asset{Name: n, Description: "letter " + n, Type: "T"})
		require.NoError(t, err)
	}

	desc, err := repo.ListAssets(ctx, ResolveSort("DESC", "name"))
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B", "A"}, names(desc))

	asc, err := repo.ListAssets(ctx, ResolveSort("ASC", "name"))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, names(asc))
}

func TestPostgresAssetRepository_ListAssets_ByCreatedOn(t *testing.T) {
	repo, pool := setupAssetRepo(t)

	testhelpers.CreateTestAsset(t, pool, "T")

	items, err := repo.ListAssets(context.Background(), ResolveSort("ASC", "createdOn"))

	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestPostgresAssetRepository_ListAssets_UnknownColumn(t *testing.T) {
	repo, pool := setupAssetRepo(t)

	testhelpers.CreateTestAsset(t, pool, "T")

	_, err := repo.ListAssets(context.Background(), ResolveSort("ASC", "colour"))

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	require.Equal(t, "42703", pgErr.Code)
}

func TestOrderColumn(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "id", want: "id"},
		{name: "createdOn", want: "created_on"},
		{name: "updatedOn", want: "updated_on"},
		{name: "colour", want: `"colour"`},
		{name: `na"me`, want: `"na""me"`},
		{name: "created_on", wantErr: true},
		{name: "updated_on", wantErr: true},
		{name: "version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := orderColumn(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPostgresAssetRepository_ListAssets_StorageColumnRejected(t *testing.T) {
	repo, pool := setupAssetRepo(t)

	testhelpers.CreateTestAsset(t, pool, "T")

	_, err := repo.ListAssets(context.Background(), ResolveSort("ASC", "created_on"))
	require.Error(t, err)
}
