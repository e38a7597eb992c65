package handlers

import (
	"net/http"

	"github.com/Jnyanu18/portfolio/internal/api/dto/common"
	"github.com/Jnyanu18/portfolio/internal/api/dto/v1/contact"
	"github.com/Jnyanu18/portfolio/internal/api/validation"
	"github.com/Jnyanu18/portfolio/internal/mailer"
	"github.com/Jnyanu18/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContactHandler runs the contact-submission pipeline:
// parse -> validate -> dispatch -> respond. Rate limiting is applied as
// route middleware before the handler runs, so a throttled request
// never reaches validation.
type ContactHandler struct {
	validator  *validation.ContactValidator
	dispatcher *mailer.Dispatcher
}

func NewContactHandler(dispatcher *mailer.Dispatcher) *ContactHandler {
	return &ContactHandler{
		validator:  validation.NewContactValidator(),
		dispatcher: dispatcher,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid input data"))
		return
	}

	normalized, fieldErrs := h.validator.Validate(req)
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest,
			common.NewValidationErrorResponse("Invalid input data", fieldErrs))
		return
	}

	err := h.dispatcher.Send(mailer.Submission{
		Name:    normalized.Name,
		Email:   normalized.Email,
		Subject: normalized.Subject,
		Message: normalized.Message,
	})
	if err != nil {
		// The transport defect stays in the server log; the caller only
		// learns that dispatch failed.
		utils.HandleAPIError(c, err, http.StatusInternalServerError,
			"Failed to send message. Please try again later.")
		return
	}

	utils.HandleSuccess(c, "Message sent successfully! I'll get back to you soon.")
}
