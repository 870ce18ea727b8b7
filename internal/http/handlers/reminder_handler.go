// Reminder HTTP handlers.
//
// This file exposes the REST endpoints for release reminders:
//   - GET    /users/{userId}/reminders                    (list)
//   - POST   /users/{userId}/reminders/toggle             (toggle create/delete)
//   - GET    /users/{userId}/reminders/can-create         (capacity probe)
//   - POST   /users/{userId}/reminders/test-notification  (placeholder)
//   - DELETE /users/{userId}/reminders/{reminderId}       (delete)
//   - GET    /users/{userId}/reminders/stats              (aggregate read)
//
// Handlers are transport-thin: they validate input (identifier tokens must be
// well-formed UUIDs, dates must parse) before any store call, delegate to the
// reminder service, and translate service errors into HTTP results. Store
// error detail is logged with the request correlation id and never surfaced
// to the caller.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/seriestrack/go-reminder-backend/internal/domain"
	"github.com/seriestrack/go-reminder-backend/internal/http/middleware"
	"github.com/seriestrack/go-reminder-backend/internal/services"
	"github.com/seriestrack/go-reminder-backend/internal/utils"
)

// upgradeMessage is the user-facing text attached to quota rejections.
const upgradeMessage = "Reminder limit reached. Upgrade to premium to track more releases."

// ReminderService defines the reminder operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ReminderService interface {
	// List returns all reminders for a user, ascending by release date.
	List(ctx context.Context, userID string) ([]domain.Reminder, error)
	// Toggle flips reminder presence for a (user, release) pair.
	Toggle(ctx context.Context, userID string, in services.ToggleInput) (*services.ToggleResult, error)
	// CanCreate probes the capacity and premium state for a user.
	CanCreate(ctx context.Context, userID string) (*services.Quota, error)
	// SendTestNotification acknowledges a test request without delivering.
	SendTestNotification(ctx context.Context, userID string) (*services.TestNotificationReceipt, error)
	// Delete removes a reminder owned by the user and returns its push handle.
	Delete(ctx context.Context, userID, reminderID string) (*string, error)
	// Stats reads the precomputed per-user aggregate.
	Stats(ctx context.Context, userID string) (*domain.ReminderStats, error)
}

// Handlers groups the HTTP endpoints for release reminders. It depends on an
// abstract service interface to keep transport concerns separate from
// business logic.
type Handlers struct {
	svc ReminderService
}

// New constructs and returns a Handlers instance bound to the given service.
func New(svc ReminderService) *Handlers {
	return &Handlers{svc: svc}
}

// pathUUID validates that the named path parameter is a well-formed UUID
// token, rejecting the request with 400 before any store call otherwise.
// The second return value reports whether the request may proceed.
func pathUUID(c *gin.Context, name string) (string, bool) {
	v := c.Param(name)
	if _, err := uuid.Parse(v); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, name+" must be a valid UUID")
		return "", false
	}
	return v, true
}

//
// DTOs
//

// ToggleReminderRequest is the JSON payload for toggling a reminder.
type ToggleReminderRequest struct {
	// DramaID is the external catalog identifier of the release.
	DramaID int64 `json:"dramaId" binding:"required,gt=0" example:"42"`
	// DramaName is the display name recorded on lazy release creation.
	DramaName string `json:"dramaName" binding:"required,min=1,max=255" example:"Example"`
	// DramaPoster optionally references the poster image.
	DramaPoster *string `json:"dramaPoster,omitempty" example:"/poster.jpg"`
	// ReleaseDate is the release date, RFC3339 or YYYY-MM-DD.
	ReleaseDate string `json:"releaseDate" binding:"required" example:"2025-03-01"`
	// NotificationID optionally carries the handle of a scheduled push.
	NotificationID *string `json:"notificationId,omitempty" example:"push-abc123"`
}

// ToggleReminderResponse reports the outcome of a toggle.
type ToggleReminderResponse struct {
	Success        bool             `json:"success"`
	Action         string           `json:"action"`
	HasReminder    bool             `json:"hasReminder"`
	Reminder       *domain.Reminder `json:"reminder,omitempty"`
	NotificationID *string          `json:"notificationId,omitempty"`
}

// TestNotificationResponse acknowledges a test-notification request.
type TestNotificationResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// DeleteReminderResponse returns the push handle of the removed reminder so
// the caller can cancel the scheduled notification.
type DeleteReminderResponse struct {
	Success        bool    `json:"success"`
	NotificationID *string `json:"notificationId,omitempty"`
}

// ReminderStatsResponse is the per-user aggregate in its wire shape.
type ReminderStatsResponse struct {
	ActiveRemindersCount  int64      `json:"activeRemindersCount"`
	TotalRemindersCreated int64      `json:"totalRemindersCreated"`
	LastReminderCreated   *time.Time `json:"lastReminderCreated"`
}

//
// Endpoints
//

// ListReminders godoc
// @ID          listReminders
// @Summary     List a user's reminders
// @Description Returns all reminders for the user, ordered ascending by release date.
// @Tags        Reminders
// @Produce     json
// @Param       userId  path  string  true  "User ID (UUID)"  format(uuid)
// @Success     200  {array}  domain.Reminder
// @Failure     400  {object} handlers.ErrorResponse "Malformed user id"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /users/{userId}/reminders [get]
func (h *Handlers) ListReminders(c *gin.Context) {
	uid, okID := pathUUID(c, "userId")
	if !okID {
		return
	}

	items, err := h.svc.List(c.Request.Context(), uid)
	if err != nil {
		h.internal(c, err, "list reminders failed")
		return
	}
	if items == nil {
		items = []domain.Reminder{}
	}
	ok(c, http.StatusOK, items)
}

// ToggleReminder godoc
// @ID          toggleReminder
// @Summary     Toggle a reminder for a release
// @Description Creates the reminder when absent (subject to the tier quota) or deletes it when present, returning the stored push handle.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       userId  path  string  true  "User ID (UUID)"  format(uuid)
// @Param       body    body  handlers.ToggleReminderRequest true "Toggle payload"
// @Success     200  {object} handlers.ToggleReminderResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     403  {object} handlers.ErrorResponse "Reminder limit reached"
// @Failure     409  {object} handlers.ErrorResponse "Concurrent toggle conflict"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /users/{userId}/reminders/toggle [post]
func (h *Handlers) ToggleReminder(c *gin.Context) {
	uid, okID := pathUUID(c, "userId")
	if !okID {
		return
	}

	var req ToggleReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "dramaId, dramaName and releaseDate are required")
		return
	}
	releaseDate, err := utils.ParseDate(req.ReleaseDate)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "releaseDate must be an RFC3339 or YYYY-MM-DD date")
		return
	}

	res, err := h.svc.Toggle(c.Request.Context(), uid, services.ToggleInput{
		DramaID:        req.DramaID,
		DramaName:      req.DramaName,
		DramaPoster:    req.DramaPoster,
		ReleaseDate:    releaseDate,
		NotificationID: req.NotificationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDramaID), errors.Is(err, services.ErrEmptyDramaName):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, services.ErrReminderLimit):
			fail(c, http.StatusForbidden, ErrCodeForbidden, upgradeMessage)
		case errors.Is(err, services.ErrReminderExists):
			fail(c, http.StatusConflict, ErrCodeConflict, "reminder already exists")
		default:
			h.internal(c, err, "toggle reminder failed")
		}
		return
	}

	ok(c, http.StatusOK, ToggleReminderResponse{
		Success:        true,
		Action:         res.Action,
		HasReminder:    res.HasReminder,
		Reminder:       res.Reminder,
		NotificationID: res.NotificationID,
	})
}

// CanCreateReminder godoc
// @ID          canCreateReminder
// @Summary     Probe reminder capacity
// @Description Combines the external capacity check, the live reminder count, and the premium flag.
// @Tags        Reminders
// @Produce     json
// @Param       userId  path  string  true  "User ID (UUID)"  format(uuid)
// @Success     200  {object} services.Quota
// @Failure     400  {object} handlers.ErrorResponse "Malformed user id"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /users/{userId}/reminders/can-create [get]
func (h *Handlers) CanCreateReminder(c *gin.Context) {
	uid, okID := pathUUID(c, "userId")
	if !okID {
		return
	}

	q, err := h.svc.CanCreate(c.Request.Context(), uid)
	if err != nil {
		h.internal(c, err, "capacity probe failed")
		return
	}
	ok(c, http.StatusOK, q)
}

// SendTestNotification godoc
// @ID          sendTestNotification
// @Summary     Request a test notification
// @Description Placeholder for the future delivery pipeline; echoes success with a timestamp and persists nothing.
// @Tags        Reminders
// @Produce     json
// @Param       userId  path  string  true  "User ID (UUID)"  format(uuid)
// @Success     200  {object} handlers.TestNotificationResponse
// @Failure     400  {object} handlers.ErrorResponse "Malformed user id"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /users/{userId}/reminders/test-notification [post]
func (h *Handlers) SendTestNotification(c *gin.Context) {
	uid, okID := pathUUID(c, "userId")
	if !okID {
		return
	}

	rc, err := h.svc.SendTestNotification(c.Request.Context(), uid)
	if err != nil {
		h.internal(c, err, "test notification failed")
		return
	}
	ok(c, http.StatusOK, TestNotificationResponse{
		Success:   true,
		Message:   rc.Message,
		Timestamp: rc.Timestamp,
	})
}

// DeleteReminder godoc
// @ID          deleteReminder
// @Summary     Delete a reminder
// @Description Removes a reminder owned by the user and returns the stored push handle for cancellation.
// @Tags        Reminders
// @Produce     json
// @Param       userId      path  string  true  "User ID (UUID)"      format(uuid)
// @Param       reminderId  path  string  true  "Reminder ID (UUID)"  format(uuid)
// @Success     200  {object} handlers.DeleteReminderResponse
// @Failure     400  {object} handlers.ErrorResponse "Malformed id"
// @Failure     404  {object} handlers.ErrorResponse "Reminder not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /users/{userId}/reminders/{reminderId} [delete]
func (h *Handlers) DeleteReminder(c *gin.Context) {
	uid, okID := pathUUID(c, "userId")
	if !okID {
		return
	}
	rid, okID := pathUUID(c, "reminderId")
	if !okID {
		return
	}

	nid, err := h.svc.Delete(c.Request.Context(), uid, rid)
	if err != nil {
		if errors.Is(err, services.ErrReminderNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "reminder not found")
			return
		}
		h.internal(c, err, "delete reminder failed")
		return
	}
	ok(c, http.StatusOK, DeleteReminderResponse{Success: true, NotificationID: nid})
}

// GetReminderStats godoc
// @ID          getReminderStats
// @Summary     Read reminder statistics
// @Description Returns the externally maintained per-user aggregate; users without a stats row get zeros.
// @Tags        Reminders
// @Produce     json
// @Param       userId  path  string  true  "User ID (UUID)"  format(uuid)
// @Success     200  {object} handlers.ReminderStatsResponse
// @Failure     400  {object} handlers.ErrorResponse "Malformed user id"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /users/{userId}/reminders/stats [get]
func (h *Handlers) GetReminderStats(c *gin.Context) {
	uid, okID := pathUUID(c, "userId")
	if !okID {
		return
	}

	st, err := h.svc.Stats(c.Request.Context(), uid)
	if err != nil {
		h.internal(c, err, "read reminder stats failed")
		return
	}
	ok(c, http.StatusOK, ReminderStatsResponse{
		ActiveRemindersCount:  st.ActiveRemindersCount,
		TotalRemindersCreated: st.TotalRemindersCreated,
		LastReminderCreated:   st.LastReminderCreated,
	})
}

// internal logs the underlying error with the request-scoped logger and
// returns a generic 500. Store error detail stays in the logs, correlated by
// request id, and is never sent to the caller.
func (h *Handlers) internal(c *gin.Context, err error, msg string) {
	middleware.LoggerFrom(c).Error().Err(err).Msg(msg)
	fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
}
