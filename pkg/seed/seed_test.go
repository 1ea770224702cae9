package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"unicode"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"assetmgmt/pkg/assets"
)

type mockCreator struct {
	mock.Mock
}

func (m *mockCreator) CreateAsset(ctx context.Context, input assets.Asset) (assets.Asset, error) {
	args := m.Called(ctx, input)
	asset, _ := args.Get(0).(assets.Asset)
	return asset, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func TestRandomAsset_Shape(t *testing.T) {
	a := RandomAsset(7)

	require.Len(t, a.Name, 6)
	require.Len(t, a.Description, 10)
	require.True(t, isLetters(a.Name))
	require.True(t, isLetters(a.Description))
	require.Equal(t, "2", a.Type)
	require.NoError(t, a.Input().Validate())
}

func TestRun_InsertsCount(t *testing.T) {
	store := new(mockCreator)
	store.On("CreateAsset", mock.Anything, mock.Anything).Return(assets.Asset{}, nil)

	n, err := Run(context.Background(), store, 5, discardLogger())

	require.NoError(t, err)
	require.Equal(t, 5, n)
	store.AssertNumberOfCalls(t, "CreateAsset", 5)
}

func TestRun_StopsOnError(t *testing.T) {
	store := new(mockCreator)
	store.On("CreateAsset", mock.Anything, mock.Anything).Return(assets.Asset{}, nil).Twice()
	store.On("CreateAsset", mock.Anything, mock.Anything).Return(assets.Asset{}, errors.New("db down")).Once()

	n, err := Run(context.Background(), store, 10, discardLogger())

	require.ErrorContains(t, err, "db down")
	require.Equal(t, 2, n)
	store.AssertNumberOfCalls(t, "CreateAsset", 3)
}
