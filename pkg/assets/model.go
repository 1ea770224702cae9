package assets

import "time"

type Asset struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	CreatedOn   time.Time `json:"createdOn"`
	UpdatedOn   time.Time `json:"updatedOn"`
	Version     int32     `json:"-"`
}

// AssetInput carries the client-writable attributes of an asset.
type AssetInput struct {
	Name        string `json:"name" validate:"required,min=3,max=256"`
	Description string `json:"description" validate:"required,min=3,max=1024"`
	Type        string `json:"type" validate:"required,max=32"`
}

// AssetResponse is the public representation returned by the API.
type AssetResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	CreatedOn   time.Time `json:"createdOn"`
}

func (a Asset) Input() AssetInput {
	return AssetInput{Name: a.Name, Description: a.Description, Type: a.Type}
}

func (a Asset) Response() AssetResponse {
	return AssetResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Type:        a.Type,
		CreatedOn:   a.CreatedOn,
	}
}
