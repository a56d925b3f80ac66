package transport

import (
	"net/http"

	"github.com/muhammadheryan/garment-erp/model"
)

// IdempotencyKeyHeader carries the client key for challan generation.
const IdempotencyKeyHeader = "Idempotency-Key"

// GetDispatchSummary handler
// @Summary Approved, dispatched and remaining quantities of an order
// @Tags Dispatch
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} transport.Response{data=model.DispatchSummary}
// @Failure 404 {object} transport.Response
// @Router /orders/{id}/dispatch [get]
func (s *RestHandler) GetDispatchSummary(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DispatchApp.GetDispatchSummary(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GenerateChallan handler
// @Summary Generate a delivery challan
// @Description Creates a pending dispatch order. Quantities are capped at what remains approved and undispatched.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param Idempotency-Key header string false "Replays return the original challan"
// @Param request body model.GenerateChallanRequest true "Challan items"
// @Success 200 {object} transport.Response{data=model.ChallanResponse}
// @Failure 400 {object} transport.Response
// @Failure 409 {object} transport.Response
// @Router /orders/{id}/challans [post]
func (s *RestHandler) GenerateChallan(w http.ResponseWriter, r *http.Request) {
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

	var req model.GenerateChallanRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.OrderID = orderID
	req.IdempotencyKey = r.Header.Get(IdempotencyKeyHeader)

	res, err := s.DispatchApp.GenerateChallan(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// MarkDispatched handler
// @Summary Ship a pending challan
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dispatch order ID"
// @Param request body model.MarkDispatchedRequest true "Courier details"
// @Success 200 {object} transport.Response{data=model.MarkDispatchedResponse}
// @Failure 400 {object} transport.Response
// @Router /dispatch-orders/{id}/ship [post]
func (s *RestHandler) MarkDispatched(w http.ResponseWriter, r *http.Request) {
	dispatchOrderID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.MarkDispatchedRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.DispatchOrderID = dispatchOrderID

	res, err := s.DispatchApp.MarkDispatched(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// MarkDelivered handler
// @Summary Mark a shipped challan as delivered
// @Tags Internal
// @Produce json
// @Param Authorization header string true "Bearer internal API key"
// @Param id path int true "Dispatch order ID"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /internal/v1/dispatch-orders/{id}/deliver [post]
func (s *RestHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	dispatchOrderID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.DispatchApp.MarkDelivered(r.Context(), dispatchOrderID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
