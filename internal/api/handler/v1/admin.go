package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eduka/eduka-api/internal/api/handler/v1/request"
	"github.com/eduka/eduka-api/internal/api/handler/v1/response"
	"github.com/eduka/eduka-api/internal/api/middleware"
	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/service"
)

type DashboardService interface {
	Stats(ctx context.Context) (service.DashboardStats, error)
	RecentMissions(ctx context.Context, limit int) ([]domain.Mission, error)
	RecentPropositions(ctx context.Context, limit int) ([]domain.Proposition, error)
	EcolesAvecStats(ctx context.Context) ([]service.EcoleStats, error)
	FormateursAvecStats(ctx context.Context) ([]service.FormateurStats, error)
}

// AdminHandler serves the admin dashboard and the trainer management pages.
type AdminHandler struct {
	dashboard DashboardService
	users     UserService
}

func NewAdminHandler(dashboard DashboardService, users UserService) *AdminHandler {
	return &AdminHandler{
		dashboard: dashboard,
		users:     users,
	}
}

// HandleDashboardStats godoc
// @Summary      Global dashboard counters (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  service.DashboardStats
// @Failure      500  {object}  response.Err
// @Router       /admin/dashboard [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleDashboardStats(ctx *gin.Context) {
	stats, err := h.dashboard.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleDashboardStats -> h.dashboard.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleRecentMissions godoc
// @Summary      Most recently created missions (admin)
// @Tags         admin
// @Produce      json
// @Param        limit   query      int false "max entries, defaults to 5"
// @Success      200  {array}   domain.Mission
// @Failure      500  {object}  response.Err
// @Router       /admin/dashboard/missions [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleRecentMissions(ctx *gin.Context) {
	missions, err := h.dashboard.RecentMissions(ctx.Request.Context(), queryLimit(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleRecentMissions -> h.dashboard.RecentMissions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, missions)
}

// HandleRecentPropositions godoc
// @Summary      Most recently created propositions (admin)
// @Tags         admin
// @Produce      json
// @Param        limit   query      int false "max entries, defaults to 5"
// @Success      200  {array}   domain.Proposition
// @Failure      500  {object}  response.Err
// @Router       /admin/dashboard/propositions [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleRecentPropositions(ctx *gin.Context) {
	propositions, err := h.dashboard.RecentPropositions(ctx.Request.Context(), queryLimit(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleRecentPropositions -> h.dashboard.RecentPropositions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, propositions)
}

func queryLimit(ctx *gin.Context) int {
	limit := 5
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return limit
}

// HandleListEcoles godoc
// @Summary      Schools with their mission and revenue aggregates (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {array}   service.EcoleStats
// @Failure      500  {object}  response.Err
// @Router       /admin/ecoles [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleListEcoles(ctx *gin.Context) {
	ecoles, err := h.dashboard.EcolesAvecStats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListEcoles -> h.dashboard.EcolesAvecStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, ecoles)
}

// HandleListFormateurs godoc
// @Summary      Trainers with their mission aggregates (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {array}   service.FormateurStats
// @Failure      500  {object}  response.Err
// @Router       /admin/formateurs [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleListFormateurs(ctx *gin.Context) {
	formateurs, err := h.dashboard.FormateursAvecStats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListFormateurs -> h.dashboard.FormateursAvecStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, formateurs)
}

// HandleGetFormateur godoc
// @Summary      Get one trainer profile (admin)
// @Tags         admin
// @Produce      json
// @Param        formateurID   path      string true "trainer ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/formateurs/{formateurID} [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleGetFormateur(ctx *gin.Context) {
	user, err := h.users.GetUser(ctx.Request.Context(), ctx.Param("formateurID"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetFormateur -> h.users.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleAjouterAlerteFormateur godoc
// @Summary      Raise an alert on a trainer profile (admin)
// @Tags         admin
// @Produce      json
// @Param        formateurID   path      string true "trainer ID"
// @Param        request       body      request.AlerteIntervenantRequest true "request body"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/formateurs/{formateurID}/alertes [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleAjouterAlerteFormateur(ctx *gin.Context) {
	req := request.AlerteIntervenantRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.users.AjouterAlerteIntervenant(ctx.Request.Context(),
		ctx.Param("formateurID"), req.Type, req.Titre, req.Description, middleware.GetUserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleAjouterAlerteFormateur -> h.users.AjouterAlerteIntervenant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleResoudreAlerteFormateur godoc
// @Summary      Resolve a trainer alert (admin)
// @Tags         admin
// @Produce      json
// @Param        formateurID   path      string true "trainer ID"
// @Param        alerteID      path      string true "alerte ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/formateurs/{formateurID}/alertes/{alerteID}/resoudre [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleResoudreAlerteFormateur(ctx *gin.Context) {
	user, err := h.users.ResoudreAlerteIntervenant(ctx.Request.Context(),
		ctx.Param("formateurID"), ctx.Param("alerteID"), middleware.GetUserID(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrAlerteIntervenantNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		default:
			err = fmt.Errorf("v1.HandleResoudreAlerteFormateur -> h.users.ResoudreAlerteIntervenant -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, user)
}
