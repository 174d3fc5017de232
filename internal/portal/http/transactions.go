package http

import (
	"net/http"

	"github.com/venturebothq/venturebot/internal/portal/service"
)

type TransactionsHandler struct {
	TransactionService *service.TransactionService
}

// ServeHTTP handles GET /api/transactions.
func (h *TransactionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	txns, err := h.TransactionService.ListTransactions(r.Context(), tenantID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toTransactions(txns))
}
