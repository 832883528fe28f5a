package handlers

import (
	"errors"
	"net/http"

	"freshfold/models"
	"freshfold/services/booking"
	"freshfold/services/notification"
	"freshfold/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the wizard session endpoints.
type BookingHandler struct {
	svc      booking.WizardService
	notifier notification.NotificationService
	logger   *zap.Logger
}

func NewBookingHandler(svc booking.WizardService, notifier notification.NotificationService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, notifier: notifier, logger: logger}
}

// InitiateSession starts a new wizard session for the requested flow.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		Flow models.FlowKind `json:"flow"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.svc.InitiateSession(c.Request.Context(), input.Flow)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession returns the current session state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateFields applies a typed field patch to the session form.
func (h *BookingHandler) UpdateFields(c *gin.Context) {
	var patch models.BookingFormPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.svc.UpdateFields(c.Request.Context(), c.Param("sessionID"), patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ToggleLocker selects or deselects one locker.
func (h *BookingHandler) ToggleLocker(c *gin.Context) {
	var input struct {
		Locker string `json:"locker"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.svc.ToggleLocker(c.Request.Context(), c.Param("sessionID"), input.Locker)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectCustomerType records the new/returning choice; the service advances
// the wizard automatically exactly once.
func (h *BookingHandler) SelectCustomerType(c *gin.Context) {
	var input struct {
		CustomerType models.CustomerType `json:"customerType"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.svc.SelectCustomerType(c.Request.Context(), c.Param("sessionID"), input.CustomerType)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Advance moves the wizard forward when the current step validates.
func (h *BookingHandler) Advance(c *gin.Context) {
	session, missing, err := h.svc.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if len(missing) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"session": session,
			"missing": missing,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Retreat moves the wizard back one step.
func (h *BookingHandler) Retreat(c *gin.Context) {
	session, err := h.svc.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ResolveCustomer runs customer resolution for the session's email.
func (h *BookingHandler) ResolveCustomer(c *gin.Context) {
	session, err := h.svc.ResolveCustomer(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		var notFound *booking.CustomerNotFoundError
		if errors.As(err, &notFound) {
			// Recoverable: the session has already been flipped to the
			// new-customer path; tell the client to re-render that form.
			c.JSON(http.StatusNotFound, gin.H{
				"code":    "customerNotFound",
				"session": session,
			})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Submit finalizes the booking and returns the submission result for the
// confirmation/payment page.
func (h *BookingHandler) Submit(c *gin.Context) {
	result, err := h.svc.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// CancelSession drops the session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// DrainNotices returns and clears the session's pending toast notices.
func (h *BookingHandler) DrainNotices(c *gin.Context) {
	notices, err := h.notifier.Drain(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch notices", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": notices})
}

// respondError converts the booking error taxonomy to HTTP responses. Every
// remote failure surfaces exactly once, here, nearest the user action.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var (
		validation *booking.ValidationError
		duplicate  *booking.DuplicateCustomerError
		notFound   *booking.CustomerNotFoundError
		authErr    *booking.AuthenticationError
		orderErr   *booking.OrderCreationError
		remoteErr  *booking.RemoteRequestError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid fields", "fields": validation.Fields})
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, booking.ErrSubmissionInProgress):
		utils.JSONError(c, http.StatusConflict, "submission already in progress", "")
	case errors.Is(err, booking.ErrNotFinalStep):
		utils.JSONError(c, http.StatusConflict, "submission is only allowed from the final step", "")
	case errors.As(err, &duplicate):
		utils.JSONError(c, http.StatusConflict, "a customer already exists for this email", "use the returning customer option")
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "no customer registered for this email", "")
	case errors.As(err, &authErr):
		utils.JSONError(c, http.StatusInternalServerError, "could not set up your account", "please try again later")
	case errors.As(err, &orderErr), errors.As(err, &remoteErr):
		h.logger.Error("remote call failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "something went wrong, please try again later", "")
	default:
		h.logger.Error("unexpected booking error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
