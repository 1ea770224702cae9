package assets

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssetRepository interface {
	CreateAsset(ctx context.Context, input Asset) (Asset, error)
	UpdateAsset(ctx context.Context, input Asset) (Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
	GetAssetByID(ctx context.Context, id int64) (Asset, error)
	ListAssets(ctx context.Context, sort SortSpec) ([]Asset, error)
}

const assetColumns = `id, name, description, type, created_on, updated_on, version`

// sortColumns translates asset attribute names to table columns. Names outside this map are
// sent to the database as quoted identifiers.
var sortColumns = map[string]string{
	"id":          "id",
	"name":        "name",
	"description": "description",
	"type":        "type",
	"createdOn":   "created_on",
	"updatedOn":   "updated_on",
}

// storageOnlyColumns exist in the table but are not asset attributes, so they cannot be sorted on.
var storageOnlyColumns = map[string]struct{}{
	"created_on": {},
	"updated_on": {},
	"version":    {},
}

type postgresAssetRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAssetRepository(pool *pgxpool.Pool) AssetRepository {
	return &postgresAssetRepository{pool: pool}
}

func scanAsset(row pgx.Row) (Asset, error) {
	var a Asset
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.Type, &a.CreatedOn, &a.UpdatedOn, &a.Version)
	return a, err
}

func (r *postgresAssetRepository) CreateAsset(ctx context.Context, input Asset) (Asset, error) {
	query := `INSERT INTO assets (name, description, type, created_on, updated_on, version)
              VALUES ($1, $2, $3, NOW(), NOW(), 0)
              RETURNING ` + assetColumns

	created, err := scanAsset(r.pool.QueryRow(ctx, query, input.Name, input.Description, input.Type))
	if err != nil {
		return Asset{}, err
	}
	return created, nil
}

// UpdateAsset writes name, description and type when the stored version still equals
// input.Version, bumping the version and updated_on in the same statement.
func (r *postgresAssetRepository) UpdateAsset(ctx context.Context, input Asset) (Asset, error) {
	query := `UPDATE assets
              SET name = $1, description = $2, type = $3, updated_on = NOW(), version = version + 1
              WHERE id = $4 AND version = $5
              RETURNING ` + assetColumns

	updated, err := scanAsset(r.pool.QueryRow(ctx, query, input.Name, input.Description, input.Type, input.ID, input.Version))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Asset{}, err
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM assets WHERE id = $1)", input.ID).Scan(&exists); err != nil {
		return Asset{}, err
	}
	if !exists {
		return Asset{}, ErrAssetNotFound
	}
	return Asset{}, ErrVersionConflict
}

func (r *postgresAssetRepository) DeleteAsset(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM assets WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrAssetNotFound
	}
	return nil
}

func (r *postgresAssetRepository) GetAssetByID(ctx context.Context, id int64) (Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`

	a, err := scanAsset(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Asset{}, ErrAssetNotFound
		}
		return Asset{}, err
	}
	return a, nil
}

// ListAssets returns every asset ordered by sort. Rows with equal sort keys come back in
// whatever order PostgreSQL produces; no tie-break column is added.
func (r *postgresAssetRepository) ListAssets(ctx context.Context, sort SortSpec) ([]Asset, error) {
	column, err := orderColumn(sort.Column)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM assets ORDER BY %s %s`, assetColumns, column, orderDirection(sort.Direction))

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assetsList := make([]Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assetsList = append(assetsList, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assetsList, nil
}

func orderColumn(name string) (string, error) {
	if col, ok := sortColumns[name]; ok {
		return col, nil
	}
	if _, ok := storageOnlyColumns[name]; ok {
		return "", fmt.Errorf("no asset attribute named %q to sort by", name)
	}
	return pgx.Identifier{name}.Sanitize(), nil
}

func orderDirection(d SortDirection) string {
	if d == SortAsc {
		return "ASC"
	}
	return "DESC"
}
