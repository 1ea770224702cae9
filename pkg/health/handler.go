package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/healthz", h.healthz)
	router.GET("/readyz", h.readyz)
}

// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  Response
// @Router       /healthz [get]
func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: "ok"})
}

// @Summary      Readiness probe
// @Description  Reports ready only when the database answers a ping
// @Tags         health
// @Produce      json
// @Success      200  {object}  Response
// @Failure      503  {object}  Response
// @Router       /readyz [get]
func (h *Handler) readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, Response{
			Status: "unavailable",
			Checks: map[string]string{"postgres": err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, Response{Status: "ok", Checks: map[string]string{"postgres": "ok"}})
}
