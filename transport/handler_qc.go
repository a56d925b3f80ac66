package transport

import (
	"net/http"

	"github.com/muhammadheryan/garment-erp/constant"
	"github.com/muhammadheryan/garment-erp/model"
)

// ListOrdersByQCStatus handler
// @Summary List orders by derived QC status
// @Tags QC
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, partial or completed"
// @Success 200 {object} transport.Response{data=[]model.QCOrder}
// @Failure 400 {object} transport.Response
// @Router /qc/orders [get]
func (s *RestHandler) ListOrdersByQCStatus(w http.ResponseWriter, r *http.Request) {
	status := constant.QCStatus(r.URL.Query().Get("status"))

	res, err := s.QCApp.ListOrdersByQCStatus(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetAssignmentQC handler
// @Summary Get QC state and review history of an assignment
// @Tags QC
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} transport.Response{data=model.AssignmentQCResponse}
// @Failure 404 {object} transport.Response
// @Router /assignments/{id}/qc [get]
func (s *RestHandler) GetAssignmentQC(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.QCApp.GetAssignmentQC(r.Context(), assignmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SubmitReview handler
// @Summary Append a QC review for one size
// @Tags QC
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body model.SubmitReviewRequest true "Review"
// @Success 200 {object} transport.Response{data=model.SubmitReviewResponse}
// @Failure 400 {object} transport.Response
// @Router /assignments/{id}/qc-reviews [post]
func (s *RestHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.SubmitReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.AssignmentID = assignmentID

	res, err := s.QCApp.SubmitReview(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
