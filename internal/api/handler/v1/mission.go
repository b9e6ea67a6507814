package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eduka/eduka-api/internal/api/handler/v1/request"
	"github.com/eduka/eduka-api/internal/api/handler/v1/response"
	"github.com/eduka/eduka-api/internal/api/middleware"
	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/service"
)

type MissionService interface {
	ListEnriched(ctx context.Context) ([]domain.Mission, error)
	ListByFormateur(ctx context.Context, formateurID string) ([]domain.Mission, error)
	GetByID(ctx context.Context, id string) (domain.Mission, error)
	CalendarEvents(ctx context.Context, formateurID string) ([]service.CalendarEvent, error)
	Demarrer(ctx context.Context, missionID, userID string, incident *service.IncidentInput) (domain.Mission, error)
	Terminer(ctx context.Context, missionID string) (domain.Mission, error)
	Annuler(ctx context.Context, missionID string) (domain.Mission, error)
	AjouterFichierNote(ctx context.Context, missionID, nom, userID string) (domain.Mission, error)
	UpdateStatutSuivi(ctx context.Context, missionID, statutSuivi string) (domain.Mission, error)
	AjouterAlerte(ctx context.Context, missionID, typ, titre, description, adminID string) (domain.Mission, error)
	ResoudreAlerte(ctx context.Context, missionID, alerteID, adminID string) (domain.Mission, error)
	Stats(ctx context.Context) (service.MissionStats, error)
	HistoriqueAnnuel(ctx context.Context, formateurID string, annee int) (service.AnnualStats, error)
}

type MissionHandler struct {
	svc MissionService
}

func NewMissionHandler(svc MissionService) *MissionHandler {
	return &MissionHandler{
		svc: svc,
	}
}

// HandleListMissions godoc
// @Summary      List the authenticated trainer's missions
// @Tags         missions
// @Produce      json
// @Success      200  {array}   domain.Mission
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /missions [get]
// @Security     BearerAuth
func (h *MissionHandler) HandleListMissions(ctx *gin.Context) {
	missions, err := h.svc.ListByFormateur(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListMissions -> h.svc.ListByFormateur -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, missions)
}

// HandleGetMission godoc
// @Summary      Get one mission
// @Tags         missions
// @Produce      json
// @Param        missionID   path      string true "mission ID"
// @Success      200  {object}  domain.Mission
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /missions/{missionID} [get]
// @Security     BearerAuth
func (h *MissionHandler) HandleGetMission(ctx *gin.Context) {
	mission, err := h.svc.GetByID(ctx.Request.Context(), ctx.Param("missionID"))
	if err != nil {
		if errors.Is(err, service.ErrMissionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetMission -> h.svc.GetByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, mission)
}

// HandleGetCalendar godoc
// @Summary      Get the trainer's missions as calendar events
// @Tags         missions
// @Produce      json
// @Success      200  {array}   service.CalendarEvent
// @Failure      500  {object}  response.Err
// @Router       /missions/calendar [get]
// @Security     BearerAuth
func (h *MissionHandler) HandleGetCalendar(ctx *gin.Context) {
	events, err := h.svc.CalendarEvents(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCalendar -> h.svc.CalendarEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleDemarrerMission godoc
// @Summary      Start a mission, optionally reporting an incident
// @Tags         missions
// @Produce      json
// @Param        missionID   path      string true "mission ID"
// @Param        request     body      request.DemarrerMissionRequest false "request body"
// @Success      200  {object}  domain.Mission
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /missions/{missionID}/demarrer [post]
// @Security     BearerAuth
func (h *MissionHandler) HandleDemarrerMission(ctx *gin.Context) {
	req := request.DemarrerMissionRequest{}
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

	var incident *service.IncidentInput
	if req.Incident != nil {
		incident = &service.IncidentInput{
			Type:        req.Incident.Type,
			Description: req.Incident.Description,
		}
	}

	mission, err := h.svc.Demarrer(ctx.Request.Context(), ctx.Param("missionID"), middleware.GetUserID(ctx), incident)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissionNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrMissionDejaDemarree):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleDemarrerMission -> h.svc.Demarrer -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, mission)
}

// HandleTerminerMission godoc
// @Summary      Mark a mission as completed
// @Tags         missions
// @Produce      json
// @Param        missionID   path      string true "mission ID"
// @Success      200  {object}  domain.Mission
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /missions/{missionID}/terminer [post]
// @Security     BearerAuth
func (h *MissionHandler) HandleTerminerMission(ctx *gin.Context) {
	mission, err := h.svc.Terminer(ctx.Request.Context(), ctx.Param("missionID"))
	if err != nil {
		if errors.Is(err, service.ErrMissionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleTerminerMission -> h.svc.Terminer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, mission)
}

// HandleAjouterFichierNote godoc
// @Summary      Attach a note file to a mission
// @Tags         missions
// @Produce      json
// @Param        missionID   path      string true "mission ID"
// @Param        request     body      request.FichierNoteRequest true "request body"
// @Success      200  {object}  domain.Mission
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /missions/{missionID}/fichiers [post]
// @Security     BearerAuth
func (h *MissionHandler) HandleAjouterFichierNote(ctx *gin.Context) {
	req := request.FichierNoteRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	mission, err := h.svc.AjouterFichierNote(ctx.Request.Context(), ctx.Param("missionID"), req.Nom, middleware.GetUserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrMissionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleAjouterFichierNote -> h.svc.AjouterFichierNote -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, mission)
}

// HandleHistoriqueAnnuel godoc
// @Summary      Completed missions for one year, with totals
// @Tags         missions
// @Produce      json
// @Param        annee   query      int false "year, defaults to the current one"
// @Success      200  {object}  service.AnnualStats
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /missions/historique [get]
// @Security     BearerAuth
func (h *MissionHandler) HandleHistoriqueAnnuel(ctx *gin.Context) {
	annee := time.Now().Year()
	if raw := ctx.Query("annee"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		annee = parsed
	}

	stats, err := h.svc.HistoriqueAnnuel(ctx.Request.Context(), middleware.GetUserID(ctx), annee)
	if err != nil {
		err = fmt.Errorf("v1.HandleHistoriqueAnnuel -> h.svc.HistoriqueAnnuel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleAdminListMissions godoc
// @Summary      List every mission (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Mission
// @Failure      500  {object}  response.Err
// @Router       /admin/missions [get]
// @Security     BearerAuth
func (h *MissionHandler) HandleAdminListMissions(ctx *gin.Context) {
	missions, err := h.svc.ListEnriched(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleAdminListMissions -> h.svc.ListEnriched -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, missions)
}

// HandleMissionStats godoc
// @Summary      Per-status mission counters (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  service.MissionStats
// @Failure      500  {object}  response.Err
// @Router       /admin/missions/stats [get]
// @Security     BearerAuth
func (h *MissionHandler) HandleMissionStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleMissionStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleAnnulerMission godoc
// @Summary      Cancel a mission (admin)
// @Tags         admin
// @Produce      json
// @Param        missionID   path      string true "mission ID"
// @Success      200  {object}  domain.Mission
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/missions/{missionID}/annuler [post]
// @Security     BearerAuth
func (h *MissionHandler) HandleAnnulerMission(ctx *gin.Context) {
	mission, err := h.svc.Annuler(ctx.Request.Context(), ctx.Param("missionID"))
	if err != nil {
		if errors.Is(err, service.ErrMissionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleAnnulerMission -> h.svc.Annuler -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, mission)
}

// HandleUpdateStatutSuivi godoc
// @Summary      Update the follow-up status of a mission (admin)
// @Tags         admin
// @Produce      json
// @Param        missionID   path      string true "mission ID"
// @Param        request     body      request.StatutSuiviRequest true "request body"
// @Success      200  {object}  domain.Mission
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/missions/{missionID}/suivi [put]
// @Security     BearerAuth
func (h *MissionHandler) HandleUpdateStatutSuivi(ctx *gin.Context) {
	req := request.StatutSuiviRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	mission, err := h.svc.UpdateStatutSuivi(ctx.Request.Context(), ctx.Param("missionID"), req.StatutSuivi)
	if err != nil {
		if errors.Is(err, service.ErrMissionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateStatutSuivi -> h.svc.UpdateStatutSuivi -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, mission)
}

// HandleAjouterAlerte godoc
// @Summary      Attach a follow-up alert to a mission (admin)
// @Tags         admin
// @Produce      json
// @Param        missionID   path      string true "mission ID"
// @Param        request     body      request.AlerteRequest true "request body"
// @Success      200  {object}  domain.Mission
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/missions/{missionID}/alertes [post]
// @Security     BearerAuth
func (h *MissionHandler) HandleAjouterAlerte(ctx *gin.Context) {
	req := request.AlerteRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	mission, err := h.svc.AjouterAlerte(ctx.Request.Context(), ctx.Param("missionID"),
		req.Type, req.Titre, req.Description, middleware.GetUserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrMissionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleAjouterAlerte -> h.svc.AjouterAlerte -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, mission)
}

// HandleResoudreAlerte godoc
// @Summary      Resolve a mission alert (admin)
// @Tags         admin
// @Produce      json
// @Param        missionID   path      string true "mission ID"
// @Param        alerteID    path      string true "alerte ID"
// @Success      200  {object}  domain.Mission
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/missions/{missionID}/alertes/{alerteID}/resoudre [post]
// @Security     BearerAuth
func (h *MissionHandler) HandleResoudreAlerte(ctx *gin.Context) {
	mission, err := h.svc.ResoudreAlerte(ctx.Request.Context(),
		ctx.Param("missionID"), ctx.Param("alerteID"), middleware.GetUserID(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissionNotFound), errors.Is(err, service.ErrAlerteNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		default:
			err = fmt.Errorf("v1.HandleResoudreAlerte -> h.svc.ResoudreAlerte -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, mission)
}
