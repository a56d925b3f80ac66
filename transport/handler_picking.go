package transport

import (
	"net/http"

	"github.com/muhammadheryan/garment-erp/model"
)

// ListPickingOrders handler
// @Summary List orders with batch assignments to pick
// @Tags Picking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.Response{data=[]model.PickingOrder}
// @Router /picking/orders [get]
func (s *RestHandler) ListPickingOrders(w http.ResponseWriter, r *http.Request) {
	res, err := s.PickingApp.ListPickingOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetAssignment handler
// @Summary Get a batch assignment with per-size picking state
// @Tags Picking
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} transport.Response{data=model.AssignmentDetail}
// @Failure 404 {object} transport.Response
// @Router /assignments/{id} [get]
func (s *RestHandler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PickingApp.GetAssignment(r.Context(), assignmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RecordPick handler
// @Summary Record a pick delta for one size
// @Description Positive delta picks units, negative un-picks. The result stays within the pick window.
// @Tags Picking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body model.RecordPickRequest true "Pick delta"
// @Success 200 {object} transport.Response{data=model.RecordPickResponse}
// @Failure 400 {object} transport.Response
// @Failure 409 {object} transport.Response
// @Router /assignments/{id}/picks [post]
func (s *RestHandler) RecordPick(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.RecordPickRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.AssignmentID = assignmentID

	res, err := s.PickingApp.RecordPick(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// BackfillPickedFromNotes handler
// @Summary Copy legacy picked counts from assignment notes into the size rows
// @Tags Internal
// @Produce json
// @Param Authorization header string true "Bearer internal API key"
// @Success 200 {object} transport.Response{data=model.BackfillResponse}
// @Router /internal/v1/picks/backfill [post]
func (s *RestHandler) BackfillPickedFromNotes(w http.ResponseWriter, r *http.Request) {
	res, err := s.PickingApp.BackfillPickedFromNotes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
