package transport

import "net/http"

// GetOrderLedger handler
// @Summary Per-size reconciliation of every stage of an order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} transport.Response{data=model.OrderLedgerResponse}
// @Failure 404 {object} transport.Response
// @Router /orders/{id}/ledger [get]
func (s *RestHandler) GetOrderLedger(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.GetOrderLedger(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
