package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduka/eduka-api/internal/api/handler/v1/request"
	"github.com/eduka/eduka-api/internal/api/handler/v1/response"
	"github.com/eduka/eduka-api/internal/api/middleware"
	"github.com/eduka/eduka-api/internal/domain"
)

type ContactNotifier interface {
	NotifyAdmins(ctx context.Context, typ, titre, message string, metadata map[string]string) error
}

type ContactHandler struct {
	notifier ContactNotifier
}

func NewContactHandler(notifier ContactNotifier) *ContactHandler {
	return &ContactHandler{
		notifier: notifier,
	}
}

// HandleContact godoc
// @Summary      Send a message to the administrators
// @Tags         contact
// @Produce      json
// @Param        request   body      request.ContactRequest true "request body"
// @Success      202  "accepted"
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /contact [post]
// @Security     BearerAuth
func (h *ContactHandler) HandleContact(ctx *gin.Context) {
	req := request.ContactRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	err := h.notifier.NotifyAdmins(ctx.Request.Context(),
		domain.TypeNotificationMessageAdmin,
		req.Sujet,
		req.Message,
		map[string]string{
			"email":  req.Email,
			"userId": middleware.GetUserID(ctx),
		})
	if err != nil {
		err = fmt.Errorf("v1.HandleContact -> h.notifier.NotifyAdmins -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusAccepted)
}
