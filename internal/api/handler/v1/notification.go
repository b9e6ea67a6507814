package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduka/eduka-api/internal/api/handler/v1/response"
	"github.com/eduka/eduka-api/internal/api/middleware"
	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/service"
)

type NotificationService interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, id string) (domain.Notification, error)
	MarkAllAsRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string) error
}

type NotificationHandler struct {
	svc NotificationService
}

func NewNotificationHandler(svc NotificationService) *NotificationHandler {
	return &NotificationHandler{
		svc: svc,
	}
}

// HandleListNotifications godoc
// @Summary      List the user's notifications, newest first
// @Tags         notifications
// @Produce      json
// @Success      200  {array}   domain.Notification
// @Failure      500  {object}  response.Err
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *NotificationHandler) HandleListNotifications(ctx *gin.Context) {
	notifications, err := h.svc.ListByUser(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListNotifications -> h.svc.ListByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

// HandleUnreadCount godoc
// @Summary      Count unread notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      500  {object}  response.Err
// @Router       /notifications/unread [get]
// @Security     BearerAuth
func (h *NotificationHandler) HandleUnreadCount(ctx *gin.Context) {
	count, err := h.svc.UnreadCount(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleUnreadCount -> h.svc.UnreadCount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

// HandleMarkAsRead godoc
// @Summary      Mark one notification as read
// @Tags         notifications
// @Produce      json
// @Param        notificationID   path      string true "notification ID"
// @Success      200  {object}  domain.Notification
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /notifications/{notificationID}/lu [post]
// @Security     BearerAuth
func (h *NotificationHandler) HandleMarkAsRead(ctx *gin.Context) {
	notification, err := h.svc.MarkAsRead(ctx.Request.Context(), ctx.Param("notificationID"))
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleMarkAsRead -> h.svc.MarkAsRead -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, notification)
}

// HandleMarkAllAsRead godoc
// @Summary      Mark every notification of the user as read
// @Tags         notifications
// @Produce      json
// @Success      204  "no content"
// @Failure      500  {object}  response.Err
// @Router       /notifications/lu [post]
// @Security     BearerAuth
func (h *NotificationHandler) HandleMarkAllAsRead(ctx *gin.Context) {
	if err := h.svc.MarkAllAsRead(ctx.Request.Context(), middleware.GetUserID(ctx)); err != nil {
		err = fmt.Errorf("v1.HandleMarkAllAsRead -> h.svc.MarkAllAsRead -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteNotification godoc
// @Summary      Delete one notification
// @Tags         notifications
// @Produce      json
// @Param        notificationID   path      string true "notification ID"
// @Success      204  "no content"
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /notifications/{notificationID} [delete]
// @Security     BearerAuth
func (h *NotificationHandler) HandleDeleteNotification(ctx *gin.Context) {
	if err := h.svc.Delete(ctx.Request.Context(), ctx.Param("notificationID")); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteNotification -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
