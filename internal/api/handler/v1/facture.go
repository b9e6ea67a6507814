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
	"github.com/eduka/eduka-api/internal/pdf"
	"github.com/eduka/eduka-api/internal/service"
)

type FactureService interface {
	ListAll(ctx context.Context) ([]domain.Facture, error)
	ListByFormateur(ctx context.Context, formateurID string) ([]domain.Facture, error)
	GetByID(ctx context.Context, id string) (domain.Facture, error)
	Create(ctx context.Context, formateurID string, lignes []service.LigneInput, notes string) (domain.Facture, error)
	Soumettre(ctx context.Context, factureID string) (domain.Facture, error)
	Valider(ctx context.Context, factureID string) (domain.Facture, error)
	Payer(ctx context.Context, factureID string) (domain.Facture, error)
	Refuser(ctx context.Context, factureID, remarques string) (domain.Facture, error)
	StatsByFormateur(ctx context.Context, formateurID string) (service.FactureStats, error)
}

type FactureHistorique interface {
	Record(ctx context.Context, userID, typ, description string, metadata map[string]string) error
}

type FactureHandler struct {
	svc        FactureService
	historique FactureHistorique
}

func NewFactureHandler(svc FactureService, historique FactureHistorique) *FactureHandler {
	return &FactureHandler{
		svc:        svc,
		historique: historique,
	}
}

// HandleListFactures godoc
// @Summary      List the trainer's factures, newest first
// @Tags         factures
// @Produce      json
// @Success      200  {array}   domain.Facture
// @Failure      500  {object}  response.Err
// @Router       /factures [get]
// @Security     BearerAuth
func (h *FactureHandler) HandleListFactures(ctx *gin.Context) {
	factures, err := h.svc.ListByFormateur(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListFactures -> h.svc.ListByFormateur -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, factures)
}

// HandleFactureStats godoc
// @Summary      Facture counters for the authenticated trainer
// @Tags         factures
// @Produce      json
// @Success      200  {object}  service.FactureStats
// @Failure      500  {object}  response.Err
// @Router       /factures/stats [get]
// @Security     BearerAuth
func (h *FactureHandler) HandleFactureStats(ctx *gin.Context) {
	stats, err := h.svc.StatsByFormateur(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleFactureStats -> h.svc.StatsByFormateur -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleGetFacture godoc
// @Summary      Get one facture
// @Tags         factures
// @Produce      json
// @Param        factureID   path      string true "facture ID"
// @Success      200  {object}  domain.Facture
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /factures/{factureID} [get]
// @Security     BearerAuth
func (h *FactureHandler) HandleGetFacture(ctx *gin.Context) {
	facture, err := h.svc.GetByID(ctx.Request.Context(), ctx.Param("factureID"))
	if err != nil {
		if errors.Is(err, service.ErrFactureNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetFacture -> h.svc.GetByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, facture)
}

// HandleDownloadFacturePDF godoc
// @Summary      Download a facture as PDF
// @Tags         factures
// @Produce      application/pdf
// @Param        factureID   path      string true "facture ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /factures/{factureID}/pdf [get]
// @Security     BearerAuth
func (h *FactureHandler) HandleDownloadFacturePDF(ctx *gin.Context) {
	facture, err := h.svc.GetByID(ctx.Request.Context(), ctx.Param("factureID"))
	if err != nil {
		if errors.Is(err, service.ErrFactureNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDownloadFacturePDF -> h.svc.GetByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	rendered, err := pdf.RenderFacture(facture)
	if err != nil {
		err = fmt.Errorf("v1.HandleDownloadFacturePDF -> pdf.RenderFacture -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", facture.Numero))
	ctx.Data(http.StatusOK, "application/pdf", rendered)
}

// HandleCreateFacture godoc
// @Summary      Create a draft facture
// @Tags         factures
// @Produce      json
// @Param        request   body      request.CreateFactureRequest true "request body"
// @Success      201  {object}  domain.Facture
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /factures [post]
// @Security     BearerAuth
func (h *FactureHandler) HandleCreateFacture(ctx *gin.Context) {
	req := request.CreateFactureRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	lignes := make([]service.LigneInput, len(req.Lignes))
	for i, l := range req.Lignes {
		lignes[i] = service.LigneInput{
			Description: l.Description,
			MissionID:   l.MissionID,
			Quantite:    l.Quantite,
			TauxHoraire: l.TauxHoraire,
		}
	}

	userID := middleware.GetUserID(ctx)
	facture, err := h.svc.Create(ctx.Request.Context(), userID, lignes, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrFactureSansLignes) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateFacture -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	err = h.historique.Record(ctx.Request.Context(), userID,
		domain.TypeActionFactureCreee,
		fmt.Sprintf("Facture %s créée", facture.Numero),
		map[string]string{"factureId": facture.ID})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateFacture -> h.historique.Record -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, facture)
}

// HandleSoumettreFacture godoc
// @Summary      Submit a draft facture for validation
// @Tags         factures
// @Produce      json
// @Param        factureID   path      string true "facture ID"
// @Success      200  {object}  domain.Facture
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /factures/{factureID}/soumettre [post]
// @Security     BearerAuth
func (h *FactureHandler) HandleSoumettreFacture(ctx *gin.Context) {
	facture, err := h.svc.Soumettre(ctx.Request.Context(), ctx.Param("factureID"))
	if err != nil {
		if errors.Is(err, service.ErrFactureNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleSoumettreFacture -> h.svc.Soumettre -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	err = h.historique.Record(ctx.Request.Context(), middleware.GetUserID(ctx),
		domain.TypeActionFactureSoumise,
		fmt.Sprintf("Facture %s soumise", facture.Numero),
		map[string]string{"factureId": facture.ID})
	if err != nil {
		err = fmt.Errorf("v1.HandleSoumettreFacture -> h.historique.Record -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, facture)
}

// HandleAdminListFactures godoc
// @Summary      List every facture (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Facture
// @Failure      500  {object}  response.Err
// @Router       /admin/factures [get]
// @Security     BearerAuth
func (h *FactureHandler) HandleAdminListFactures(ctx *gin.Context) {
	factures, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleAdminListFactures -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, factures)
}

// HandleValiderFacture godoc
// @Summary      Validate a submitted facture (admin)
// @Tags         admin
// @Produce      json
// @Param        factureID   path      string true "facture ID"
// @Success      200  {object}  domain.Facture
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/factures/{factureID}/valider [post]
// @Security     BearerAuth
func (h *FactureHandler) HandleValiderFacture(ctx *gin.Context) {
	h.renderStatutUpdate(ctx, h.svc.Valider)
}

// HandlePayerFacture godoc
// @Summary      Mark a facture as paid (admin)
// @Tags         admin
// @Produce      json
// @Param        factureID   path      string true "facture ID"
// @Success      200  {object}  domain.Facture
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/factures/{factureID}/payer [post]
// @Security     BearerAuth
func (h *FactureHandler) HandlePayerFacture(ctx *gin.Context) {
	h.renderStatutUpdate(ctx, h.svc.Payer)
}

// HandleRefuserFacture godoc
// @Summary      Refuse a facture with remarks (admin)
// @Tags         admin
// @Produce      json
// @Param        factureID   path      string true "facture ID"
// @Param        request     body      request.RefuserFactureRequest true "request body"
// @Success      200  {object}  domain.Facture
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/factures/{factureID}/refuser [post]
// @Security     BearerAuth
func (h *FactureHandler) HandleRefuserFacture(ctx *gin.Context) {
	req := request.RefuserFactureRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	facture, err := h.svc.Refuser(ctx.Request.Context(), ctx.Param("factureID"), req.Remarques)
	if err != nil {
		if errors.Is(err, service.ErrFactureNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleRefuserFacture -> h.svc.Refuser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, facture)
}

func (h *FactureHandler) renderStatutUpdate(ctx *gin.Context, update func(context.Context, string) (domain.Facture, error)) {
	facture, err := update(ctx.Request.Context(), ctx.Param("factureID"))
	if err != nil {
		if errors.Is(err, service.ErrFactureNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.renderStatutUpdate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, facture)
}
