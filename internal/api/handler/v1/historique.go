package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduka/eduka-api/internal/api/handler/v1/response"
	"github.com/eduka/eduka-api/internal/api/middleware"
	"github.com/eduka/eduka-api/internal/domain"
)

type HistoriqueService interface {
	ListByUser(ctx context.Context, userID string) ([]domain.HistoriqueEntry, error)
}

type HistoriqueHandler struct {
	svc HistoriqueService
}

func NewHistoriqueHandler(svc HistoriqueService) *HistoriqueHandler {
	return &HistoriqueHandler{
		svc: svc,
	}
}

// HandleListHistorique godoc
// @Summary      List the user's activity feed, newest first
// @Tags         historique
// @Produce      json
// @Success      200  {array}   domain.HistoriqueEntry
// @Failure      500  {object}  response.Err
// @Router       /historique [get]
// @Security     BearerAuth
func (h *HistoriqueHandler) HandleListHistorique(ctx *gin.Context) {
	entries, err := h.svc.ListByUser(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListHistorique -> h.svc.ListByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, entries)
}
