package assets

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssetAPI_Lifecycle(t *testing.T) {
	repo, _ := setupAssetRepo(t)
	r := setupAssetRouter(NewAssetService(repo))

	w := doRequest(r, http.MethodPost, "/api/v1/assets", `{"name":"Laptop","description":"Dev box","type":"hardware"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created AssetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	path := fmt.Sprintf("/api/v1/assets/%d", created.ID)

	w = doRequest(r, http.MethodPut, path, `{"name":"Desktop","description":"Tower PC","type":"workstation"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodPatch, path, `{"description":"Refurbished tower","createdOn":"1999-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodPatch, path, `{"name":"Server","colour":"red"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got AssetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, created.ID, got.ID)
	require.True(t, created.CreatedOn.Equal(got.CreatedOn))
	require.Equal(t, "Desktop", got.Name)
	require.Equal(t, "Refurbished tower", got.Description)
	require.Equal(t, "workstation", got.Type)

	require.Equal(t, http.StatusNoContent, doRequest(r, http.MethodDelete, path, "").Code)
	require.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, path, "").Code)
	require.Equal(t, http.StatusNotFound, doRequest(r, http.MethodDelete, path, "").Code)
	require.Equal(t, http.StatusNotFound, doRequest(r, http.MethodPatch, path, `{"name":"Again"}`).Code)
}

func TestAssetAPI_SortByNameDescending(t *testing.T) {
	repo, _ := setupAssetRepo(t)
	r := setupAssetRouter(NewAssetService(repo))

	for _, n := range []string{"Alpha", "Bravo", "Charlie"} {
		body := fmt.Sprintf(`{"name":%q,"description":"phonetic","type":"T"}`, n)
		require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/v1/assets", body).Code)
	}

	w := doRequest(r, http.MethodGet, "/api/v1/assets?sortDirection=DESC&sortColumn=name", "")

	require.Equal(t, http.StatusOK, w.Code)
	var items []AssetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 3)
	require.Equal(t, []string{"Charlie", "Bravo", "Alpha"}, []string{items[0].Name, items[1].Name, items[2].Name})
}

func TestAssetAPI_BadSortColumnIsInternalError(t *testing.T) {
	repo, _ := setupAssetRepo(t)
	r := setupAssetRouter(NewAssetService(repo))

	w := doRequest(r, http.MethodGet, "/api/v1/assets?sortColumn=colour", "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
