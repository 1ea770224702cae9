package assets

import (
	"context"
	"errors"
)

type AssetService interface {
	CreateAsset(ctx context.Context, input AssetInput) (Asset, error)
	UpdateAsset(ctx context.Context, id int64, input AssetInput) (Asset, error)
	PatchAsset(ctx context.Context, id int64, fields map[string]any) (Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
	GetAssetByID(ctx context.Context, id int64) (Asset, error)
	ListAssets(ctx context.Context, sort SortSpec) ([]Asset, error)
}

type assetService struct {
	repo AssetRepository
}

func NewAssetService(repo AssetRepository) AssetService {
	return &assetService{repo: repo}
}

func (s *assetService) CreateAsset(ctx context.Context, input AssetInput) (Asset, error) {
	if err := input.Validate(); err != nil {
		return Asset{}, err
	}
	return s.repo.CreateAsset(ctx, Asset{Name: input.Name, Description: input.Description, Type: input.Type})
}

func (s *assetService) UpdateAsset(ctx context.Context, id int64, input AssetInput) (Asset, error) {
	if err := input.Validate(); err != nil {
		return Asset{}, err
	}

	current, err := s.GetAssetByID(ctx, id)
	if err != nil {
		return Asset{}, err
	}
	return s.save(ctx, current, input)
}

// PatchAsset merges fields onto the stored asset and persists the result through the same path
// as UpdateAsset. Nothing is written when a key is unknown or the merged asset is invalid.
func (s *assetService) PatchAsset(ctx context.Context, id int64, fields map[string]any) (Asset, error) {
	current, err := s.GetAssetByID(ctx, id)
	if err != nil {
		return Asset{}, err
	}

	merged, err := ApplyPatch(current, fields)
	if err != nil {
		return Asset{}, err
	}

	input := merged.Input()
	if err := input.Validate(); err != nil {
		return Asset{}, err
	}
	return s.save(ctx, current, input)
}

func (s *assetService) save(ctx context.Context, current Asset, input AssetInput) (Asset, error) {
	current.Name = input.Name
	current.Description = input.Description
	current.Type = input.Type

	updated, err := s.repo.UpdateAsset(ctx, current)
	if errors.Is(err, ErrAssetNotFound) {
		return Asset{}, &NotFoundError{ID: current.ID}
	}
	return updated, err
}

func (s *assetService) DeleteAsset(ctx context.Context, id int64) error {
	err := s.repo.DeleteAsset(ctx, id)
	if errors.Is(err, ErrAssetNotFound) {
		return &NotFoundError{ID: id}
	}
	return err
}

func (s *assetService) GetAssetByID(ctx context.Context, id int64) (Asset, error) {
	a, err := s.repo.GetAssetByID(ctx, id)
	if errors.Is(err, ErrAssetNotFound) {
		return Asset{}, &NotFoundError{ID: id}
	}
	return a, err
}

func (s *assetService) ListAssets(ctx context.Context, sort SortSpec) ([]Asset, error) {
	return s.repo.ListAssets(ctx, sort)
}
