package http

import (
	"net/http"

	"github.com/venturebothq/venturebot/internal/portal/service"
	"github.com/venturebothq/venturebot/pkg/httpx"
)

type PaymentsHandler struct {
	PaymentService *service.PaymentService
}

type createOrderRequest struct {
	PackageID string `json:"packageId"`
}

type createSubscriptionOrderRequest struct {
	PlanID       string `json:"planId"`
	BillingCycle string `json:"billingCycle"`
}

type verifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// HandleCreateOrder handles POST /api/payments/create-order.
func (h *PaymentsHandler) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.PaymentService.CreateOrder(r.Context(), tenantID(r), req.PackageID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, order)
}

// HandleCreateSubscriptionOrder handles POST /api/payments/create-subscription-order.
func (h *PaymentsHandler) HandleCreateSubscriptionOrder(w http.ResponseWriter, r *http.Request) {
	var req createSubscriptionOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.PaymentService.CreateSubscriptionOrder(r.Context(), tenantID(r), req.PlanID, req.BillingCycle)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, order)
}

// HandleVerifyPayment handles POST /api/payments/verify-payment.
func (h *PaymentsHandler) HandleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	txn, err := h.PaymentService.VerifyPayment(r.Context(), tenantID(r), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, struct {
		Success      bool  `json:"success"`
		CreditsAdded int64 `json:"creditsAdded"`
	}{Success: true, CreditsAdded: txn.Credits})
}
