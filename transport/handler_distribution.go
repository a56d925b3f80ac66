package transport

import (
	"net/http"

	"github.com/muhammadheryan/garment-erp/model"
)

// ListAvailableBatches handler
// @Summary List active batches
// @Tags Distribution
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.Response{data=[]model.BatchEntity}
// @Router /batches [get]
func (s *RestHandler) ListAvailableBatches(w http.ResponseWriter, r *http.Request) {
	res, err := s.DistributionApp.ListAvailableBatches(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetDistribution handler
// @Summary Get batch distribution of an order
// @Description Size ledger totals with per-batch allocations and the max each batch may take
// @Tags Distribution
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} transport.Response{data=model.DistributionResponse}
// @Failure 404 {object} transport.Response
// @Router /orders/{id}/distribution [get]
func (s *RestHandler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DistributionApp.GetDistribution(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SaveDistribution handler
// @Summary Replace the batch distribution of an order
// @Tags Distribution
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body model.SaveDistributionRequest true "Distribution plan"
// @Success 200 {object} transport.Response{data=model.DistributionResponse}
// @Failure 400 {object} transport.Response
// @Failure 409 {object} transport.Response
// @Router /orders/{id}/distribution [put]
func (s *RestHandler) SaveDistribution(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.SaveDistributionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.OrderID = orderID

	res, err := s.DistributionApp.SaveDistribution(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
