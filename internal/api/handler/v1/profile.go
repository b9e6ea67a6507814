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

type UserService interface {
	GetUser(ctx context.Context, id string) (domain.User, error)
	ListFormateurs(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input service.ProfileInput) (domain.User, error)
	AjouterCompetence(ctx context.Context, userID, nom, niveau string) (domain.User, error)
	SupprimerCompetence(ctx context.Context, userID, competenceID string) (domain.User, error)
	AjouterDocument(ctx context.Context, userID, nom, typ string) (domain.User, error)
	SupprimerDocument(ctx context.Context, userID, documentID string) (domain.User, error)
	AjouterAlerteIntervenant(ctx context.Context, userID, typ, titre, description, adminID string) (domain.User, error)
	ResoudreAlerteIntervenant(ctx context.Context, userID, alerteID, adminID string) (domain.User, error)
}

type ProfileHistorique interface {
	Record(ctx context.Context, userID, typ, description string, metadata map[string]string) error
}

type ProfileHandler struct {
	svc        UserService
	historique ProfileHistorique
}

func NewProfileHandler(svc UserService, historique ProfileHistorique) *ProfileHandler {
	return &ProfileHandler{
		svc:        svc,
		historique: historique,
	}
}

// HandleGetProfile godoc
// @Summary      Get the authenticated user's profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) HandleGetProfile(ctx *gin.Context) {
	user, err := h.svc.GetUser(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetProfile -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleUpdateProfile godoc
// @Summary      Update the authenticated user's profile
// @Tags         profile
// @Produce      json
// @Param        request   body      request.UpdateProfileRequest true "request body"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) HandleUpdateProfile(ctx *gin.Context) {
	req := request.UpdateProfileRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	userID := middleware.GetUserID(ctx)
	user, err := h.svc.UpdateProfile(ctx.Request.Context(), userID, service.ProfileInput{
		Telephone:    req.Telephone,
		Adresse:      req.Adresse,
		Ville:        req.Ville,
		CodePostal:   req.CodePostal,
		TarifHoraire: req.TarifHoraire,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateProfile -> h.svc.UpdateProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	err = h.historique.Record(ctx.Request.Context(), userID,
		domain.TypeActionProfilModifie, "Profil mis à jour", nil)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateProfile -> h.historique.Record -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleAjouterCompetence godoc
// @Summary      Add a skill to the profile
// @Tags         profile
// @Produce      json
// @Param        request   body      request.CompetenceRequest true "request body"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /profile/competences [post]
// @Security     BearerAuth
func (h *ProfileHandler) HandleAjouterCompetence(ctx *gin.Context) {
	req := request.CompetenceRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.AjouterCompetence(ctx.Request.Context(), middleware.GetUserID(ctx), req.Nom, req.Niveau)
	if err != nil {
		err = fmt.Errorf("v1.HandleAjouterCompetence -> h.svc.AjouterCompetence -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleSupprimerCompetence godoc
// @Summary      Remove a skill from the profile
// @Tags         profile
// @Produce      json
// @Param        competenceID   path      string true "competence ID"
// @Success      200  {object}  domain.User
// @Failure      500  {object}  response.Err
// @Router       /profile/competences/{competenceID} [delete]
// @Security     BearerAuth
func (h *ProfileHandler) HandleSupprimerCompetence(ctx *gin.Context) {
	user, err := h.svc.SupprimerCompetence(ctx.Request.Context(), middleware.GetUserID(ctx), ctx.Param("competenceID"))
	if err != nil {
		err = fmt.Errorf("v1.HandleSupprimerCompetence -> h.svc.SupprimerCompetence -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleAjouterDocument godoc
// @Summary      Record an uploaded document on the profile
// @Tags         profile
// @Produce      json
// @Param        request   body      request.DocumentRequest true "request body"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /profile/documents [post]
// @Security     BearerAuth
func (h *ProfileHandler) HandleAjouterDocument(ctx *gin.Context) {
	req := request.DocumentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	userID := middleware.GetUserID(ctx)
	user, err := h.svc.AjouterDocument(ctx.Request.Context(), userID, req.Nom, req.Type)
	if err != nil {
		err = fmt.Errorf("v1.HandleAjouterDocument -> h.svc.AjouterDocument -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	err = h.historique.Record(ctx.Request.Context(), userID,
		domain.TypeActionDocumentAjoute,
		fmt.Sprintf("Document %s ajouté", req.Nom), nil)
	if err != nil {
		err = fmt.Errorf("v1.HandleAjouterDocument -> h.historique.Record -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleSupprimerDocument godoc
// @Summary      Remove a document from the profile
// @Tags         profile
// @Produce      json
// @Param        documentID   path      string true "document ID"
// @Success      200  {object}  domain.User
// @Failure      500  {object}  response.Err
// @Router       /profile/documents/{documentID} [delete]
// @Security     BearerAuth
func (h *ProfileHandler) HandleSupprimerDocument(ctx *gin.Context) {
	user, err := h.svc.SupprimerDocument(ctx.Request.Context(), middleware.GetUserID(ctx), ctx.Param("documentID"))
	if err != nil {
		err = fmt.Errorf("v1.HandleSupprimerDocument -> h.svc.SupprimerDocument -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}
