package transport

import (
	"net/http"

	"github.com/muhammadheryan/car-market/model"
)

// CreateMessage handler
// @Summary Contact support
// @Tags Support
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body model.CreateSupportMessageRequest true "Message"
// @Success 201 {object} model.SupportMessageEntity
// @Failure 400 {object} ErrorResponse
// @Router /api/contacter [post]
func (s *RestHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSupportMessageRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SupportApp.CreateMessage(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListMessages handler
// @Summary List support messages
// @Tags Admin
// @Produce json
// @Success 200 {array} model.SupportMessageEntity
// @Failure 403 {object} ErrorResponse
// @Router /allmessages [get]
func (s *RestHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	res, err := s.SupportApp.ListMessages(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteMessage handler
// @Summary Delete a support message
// @Tags Admin
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /deletemessage/{id} [delete]
func (s *RestHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.SupportApp.DeleteMessage(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "message deleted"})
}
