package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduka/eduka-api/internal/api/handler/v1/request"
	"github.com/eduka/eduka-api/internal/api/handler/v1/response"
	"github.com/eduka/eduka-api/internal/api/middleware"
	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/service"
)

type PropositionService interface {
	ListForFormateur(ctx context.Context, formateurID string) ([]domain.Proposition, error)
	ListWithCandidatureDe(ctx context.Context, formateurID string) ([]domain.Proposition, error)
	GetByID(ctx context.Context, id string) (domain.Proposition, error)
	Postuler(ctx context.Context, propositionID, formateurID, message string) (domain.Proposition, error)
	Accepter(ctx context.Context, propositionID string) (domain.Proposition, error)
	Refuser(ctx context.Context, propositionID string) (domain.Proposition, error)
	Create(ctx context.Context, input service.CreateInput) (domain.Proposition, error)
	Filter(ctx context.Context, opts service.FilterOptions) ([]domain.Proposition, error)
	Stats(ctx context.Context) (service.PropositionStats, error)
}

type PropositionHistorique interface {
	Record(ctx context.Context, userID, typ, description string, metadata map[string]string) error
}

type PropositionHandler struct {
	svc        PropositionService
	historique PropositionHistorique
}

func NewPropositionHandler(svc PropositionService, historique PropositionHistorique) *PropositionHandler {
	return &PropositionHandler{
		svc:        svc,
		historique: historique,
	}
}

// HandleListPropositions godoc
// @Summary      List propositions visible to the authenticated trainer
// @Tags         propositions
// @Produce      json
// @Success      200  {array}   domain.Proposition
// @Failure      500  {object}  response.Err
// @Router       /propositions [get]
// @Security     BearerAuth
func (h *PropositionHandler) HandleListPropositions(ctx *gin.Context) {
	propositions, err := h.svc.ListForFormateur(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListPropositions -> h.svc.ListForFormateur -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, propositions)
}

// HandleListMesCandidatures godoc
// @Summary      List propositions the trainer has applied to
// @Tags         propositions
// @Produce      json
// @Success      200  {array}   domain.Proposition
// @Failure      500  {object}  response.Err
// @Router       /propositions/candidatures [get]
// @Security     BearerAuth
func (h *PropositionHandler) HandleListMesCandidatures(ctx *gin.Context) {
	propositions, err := h.svc.ListWithCandidatureDe(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListMesCandidatures -> h.svc.ListWithCandidatureDe -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, propositions)
}

// HandleGetProposition godoc
// @Summary      Get one proposition
// @Tags         propositions
// @Produce      json
// @Param        propositionID   path      string true "proposition ID"
// @Success      200  {object}  domain.Proposition
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /propositions/{propositionID} [get]
// @Security     BearerAuth
func (h *PropositionHandler) HandleGetProposition(ctx *gin.Context) {
	proposition, err := h.svc.GetByID(ctx.Request.Context(), ctx.Param("propositionID"))
	if err != nil {
		if errors.Is(err, service.ErrPropositionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetProposition -> h.svc.GetByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, proposition)
}

// HandlePostuler godoc
// @Summary      Apply to a proposition
// @Tags         propositions
// @Produce      json
// @Param        propositionID   path      string true "proposition ID"
// @Param        request         body      request.PostulerRequest false "request body"
// @Success      200  {object}  domain.Proposition
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /propositions/{propositionID}/postuler [post]
// @Security     BearerAuth
func (h *PropositionHandler) HandlePostuler(ctx *gin.Context) {
	req := request.PostulerRequest{}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	userID := middleware.GetUserID(ctx)
	proposition, err := h.svc.Postuler(ctx.Request.Context(), ctx.Param("propositionID"), userID, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrPropositionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandlePostuler -> h.svc.Postuler -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	err = h.historique.Record(ctx.Request.Context(), userID,
		domain.TypeActionPropositionSoumise,
		"Candidature envoyée",
		map[string]string{"propositionId": proposition.ID})
	if err != nil {
		err = fmt.Errorf("v1.HandlePostuler -> h.historique.Record -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, proposition)
}

// HandleAdminListPropositions godoc
// @Summary      Filter propositions (admin)
// @Tags         admin
// @Produce      json
// @Param        search   query      string false "free text over cours, ecole, classe and description"
// @Param        statut   query      string false "status filter"
// @Param        type     query      string false "type filter"
// @Success      200  {array}   domain.Proposition
// @Failure      500  {object}  response.Err
// @Router       /admin/propositions [get]
// @Security     BearerAuth
func (h *PropositionHandler) HandleAdminListPropositions(ctx *gin.Context) {
	propositions, err := h.svc.Filter(ctx.Request.Context(), service.FilterOptions{
		Search: ctx.Query("search"),
		Statut: ctx.Query("statut"),
		Type:   ctx.Query("type"),
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleAdminListPropositions -> h.svc.Filter -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, propositions)
}

// HandlePropositionStats godoc
// @Summary      Proposition counters (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  service.PropositionStats
// @Failure      500  {object}  response.Err
// @Router       /admin/propositions/stats [get]
// @Security     BearerAuth
func (h *PropositionHandler) HandlePropositionStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandlePropositionStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleCreateProposition godoc
// @Summary      Create a proposition (admin)
// @Tags         admin
// @Produce      json
// @Param        request   body      request.CreatePropositionRequest true "request body"
// @Success      201  {object}  domain.Proposition
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/propositions [post]
// @Security     BearerAuth
func (h *PropositionHandler) HandleCreateProposition(ctx *gin.Context) {
	req := request.CreatePropositionRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	proposition, err := h.svc.Create(ctx.Request.Context(), service.CreateInput{
		CoursID:          req.CoursID,
		EcoleID:          req.EcoleID,
		ClasseID:         req.ClasseID,
		DateDebut:        req.DateDebut,
		DateFin:          req.DateFin,
		HeureDebut:       req.HeureDebut,
		HeureFin:         req.HeureFin,
		Type:             req.Type,
		FormateurCibleID: req.FormateurCibleID,
		Description:      req.Description,
		Remuneration:     req.Remuneration,
		DateExpiration:   req.DateExpiration,
		CreatedBy:        middleware.GetUserID(ctx),
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateProposition -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, proposition)
}

// HandleAccepterProposition godoc
// @Summary      Accept a proposition (admin)
// @Tags         admin
// @Produce      json
// @Param        propositionID   path      string true "proposition ID"
// @Success      200  {object}  domain.Proposition
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/propositions/{propositionID}/accepter [post]
// @Security     BearerAuth
func (h *PropositionHandler) HandleAccepterProposition(ctx *gin.Context) {
	h.renderStatutUpdate(ctx, h.svc.Accepter)
}

// HandleRefuserProposition godoc
// @Summary      Refuse a proposition (admin)
// @Tags         admin
// @Produce      json
// @Param        propositionID   path      string true "proposition ID"
// @Success      200  {object}  domain.Proposition
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/propositions/{propositionID}/refuser [post]
// @Security     BearerAuth
func (h *PropositionHandler) HandleRefuserProposition(ctx *gin.Context) {
	h.renderStatutUpdate(ctx, h.svc.Refuser)
}

func (h *PropositionHandler) renderStatutUpdate(ctx *gin.Context, update func(context.Context, string) (domain.Proposition, error)) {
	proposition, err := update(ctx.Request.Context(), ctx.Param("propositionID"))
	if err != nil {
		if errors.Is(err, service.ErrPropositionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.renderStatutUpdate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, proposition)
}
