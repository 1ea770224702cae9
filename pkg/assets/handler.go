package assets

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"assetmgmt/pkg/middleware"
	"assetmgmt/pkg/response"
)

type AssetHandler struct {
	service AssetService
	logger  *slog.Logger
}

func NewAssetHandler(service AssetService, logger *slog.Logger) *AssetHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssetHandler{service: service, logger: logger}
}

func (h *AssetHandler) RegisterRoutes(router gin.IRouter) {
	g := router.Group("/api/v1/assets")
	g.GET("", h.listAssets)
	g.GET("/:id", h.getAssetByID)
	g.POST("", h.createAsset)
	g.PUT("/:id", h.updateAsset)
	g.PATCH("/:id", h.patchAsset)
	g.DELETE("/:id", h.deleteAsset)
}

// writeError is the single place where service errors become HTTP responses.
func (h *AssetHandler) writeError(c *gin.Context, err error) {
	var (
		nf  *NotFoundError
		ve  *ValidationError
		fne *InvalidFieldNameError
		fve *InvalidFieldValueError
	)

	switch {
	case errors.As(err, &nf):
		response.SendError(c, http.StatusNotFound, nf.Error(), nil)
	case errors.Is(err, ErrAssetNotFound):
		response.SendError(c, http.StatusNotFound, "asset not found", nil)
	case errors.As(err, &ve):
		errs := make([]string, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			errs = append(errs, f.String())
		}
		response.SendError(c, http.StatusBadRequest, "", errs)
	case errors.As(err, &fne):
		response.SendError(c, http.StatusBadRequest, fne.Error(), nil)
	case errors.As(err, &fve):
		response.SendError(c, http.StatusBadRequest, "", []string{fve.Error()})
	case errors.Is(err, ErrMalformedBody):
		response.SendError(c, http.StatusBadRequest, "", []string{err.Error()})
	case errors.Is(err, ErrVersionConflict):
		response.SendError(c, http.StatusConflict, "Asset was modified concurrently", nil)
	default:
		h.logger.ErrorContext(c.Request.Context(), "request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
		response.SendError(c, http.StatusInternalServerError, "", nil)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "", []string{"id: invalid asset id"})
		return 0, false
	}
	return id, true
}

func toResponses(items []Asset) []AssetResponse {
	out := make([]AssetResponse, 0, len(items))
	for _, a := range items {
		out = append(out, a.Response())
	}
	return out
}

// @Summary      Get an asset by id
// @Description  Get an asset by id
// @Tags         assets
// @Produce      json
// @Param        id   path      int  true  "Asset ID"
// @Success      200  {object}  AssetResponse
// @Failure      400  {object}  response.APIError "Invalid asset ID"
// @Failure      404  {object}  response.APIError "Asset not found"
// @Failure      500  {object}  response.APIError "Internal error"
// @Router       /api/v1/assets/{id} [get]
func (h *AssetHandler) getAssetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.logger.InfoContext(c.Request.Context(), "get asset", slog.Int64("id", id))

	asset, err := h.service.GetAssetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SendJSON(c, http.StatusOK, asset.Response())
}

// @Summary      Get all assets
// @Description  Get all assets. Supports sorting; defaults to id descending.
// @Tags         assets
// @Produce      json
// @Param        sortDirection  query     string  false  "ASC or DESC" default(DESC)
// @Param        sortColumn     query     string  false  "Attribute to order by" default(id)
// @Success      200  {array}   AssetResponse
// @Failure      500  {object}  response.APIError "Internal error"
// @Router       /api/v1/assets [get]
func (h *AssetHandler) listAssets(c *gin.Context) {
	sort := ResolveSort(c.Query("sortDirection"), c.Query("sortColumn"))
	h.logger.InfoContext(c.Request.Context(), "list assets", slog.String("sort", sort.String()))

	items, err := h.service.ListAssets(c.Request.Context(), sort)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SendJSON(c, http.StatusOK, toResponses(items))
}

// @Summary      Create an asset
// @Description  Create an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        request body AssetInput true "Asset to create"
// @Success      201  {object}  AssetResponse
// @Failure      400  {object}  response.APIError "Bad request"
// @Failure      500  {object}  response.APIError "Internal error"
// @Router       /api/v1/assets [post]
func (h *AssetHandler) createAsset(c *gin.Context) {
	var req AssetInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, malformedBody(err))
		return
	}
	h.logger.InfoContext(c.Request.Context(), "create asset", slog.String("name", req.Name), slog.String("type", req.Type))

	asset, err := h.service.CreateAsset(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SendJSON(c, http.StatusCreated, asset.Response())
}

// @Summary      Replace an asset
// @Description  Replace the name, description and type of an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Asset ID"
// @Param        request body AssetInput true "New asset values"
// @Success      200  {object}  AssetResponse
// @Failure      400  {object}  response.APIError "Bad request"
// @Failure      404  {object}  response.APIError "Asset not found"
// @Failure      409  {object}  response.APIError "Concurrent modification"
// @Failure      500  {object}  response.APIError "Internal error"
// @Router       /api/v1/assets/{id} [put]
func (h *AssetHandler) updateAsset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AssetInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, malformedBody(err))
		return
	}
	h.logger.InfoContext(c.Request.Context(), "update asset", slog.Int64("id", id))

	asset, err := h.service.UpdateAsset(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SendJSON(c, http.StatusOK, asset.Response())
}

// @Summary      Update attributes of an asset
// @Description  Sets only the attributes present in the body. Unknown attribute names are rejected.
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Asset ID"
// @Param        request body object true "Attribute name to new value"
// @Success      200  {object}  AssetResponse
// @Failure      400  {object}  response.APIError "Unknown attribute or invalid value"
// @Failure      404  {object}  response.APIError "Asset not found"
// @Failure      409  {object}  response.APIError "Concurrent modification"
// @Failure      500  {object}  response.APIError "Internal error"
// @Router       /api/v1/assets/{id} [patch]
func (h *AssetHandler) patchAsset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.writeError(c, malformedBody(err))
		return
	}
	if fields == nil {
		h.writeError(c, malformedBody(errors.New("body must be a JSON object")))
		return
	}
	h.logger.InfoContext(c.Request.Context(), "patch asset", slog.Int64("id", id), slog.Int("fields", len(fields)))

	asset, err := h.service.PatchAsset(c.Request.Context(), id, fields)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SendJSON(c, http.StatusOK, asset.Response())
}

// @Summary      Delete an asset
// @Description  Delete an asset
// @Tags         assets
// @Param        id   path      int  true  "Asset ID"
// @Success      204  "Asset deleted"
// @Failure      400  {object}  response.APIError "Invalid asset ID"
// @Failure      404  {object}  response.APIError "Asset not found"
// @Failure      500  {object}  response.APIError "Internal error"
// @Router       /api/v1/assets/{id} [delete]
func (h *AssetHandler) deleteAsset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.logger.InfoContext(c.Request.Context(), "delete asset", slog.Int64("id", id))

	if err := h.service.DeleteAsset(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
