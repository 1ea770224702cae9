// Package seed fills an empty development database with random assets.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/samber/lo"

	"assetmgmt/pkg/assets"
)

// Creator is the part of the asset store the seeder needs.
type Creator interface {
	CreateAsset(ctx context.Context, input assets.Asset) (assets.Asset, error)
}

// RandomAsset builds the i-th seed asset: a 6-letter name, a 10-letter description and a type
// cycling through "0".."4".
func RandomAsset(i int) assets.Asset {
	return assets.Asset{
		Name:        lo.RandomString(6, lo.LettersCharset),
		Description: lo.RandomString(10, lo.LettersCharset),
		Type:        strconv.Itoa(i % 5),
	}
}

// Run inserts count seed assets and returns how many were written before any error.
func Run(ctx context.Context, store Creator, count int, logger *slog.Logger) (int, error) {
	for i := 1; i <= count; i++ {
		if _, err := store.CreateAsset(ctx, RandomAsset(i)); err != nil {
			return i - 1, fmt.Errorf("insert seed asset %d: %w", i, err)
		}
	}

	logger.Info("inserted test records in db", slog.Int("count", count))
	return count, nil
}
