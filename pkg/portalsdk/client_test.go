package portalsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientErrorMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "insufficient credits"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SendMessage(context.Background(), "+911", "hello")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
	require.Equal(t, "insufficient credits", apiErr.Message)
	require.Contains(t, apiErr.Error(), "insufficient credits")
}

func TestClientPayments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/payments/create-order", func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		require.Equal(t, "starter", req.PackageID)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": Order{
				OrderID:     "order_1",
				Amount:      99900,
				Currency:    "INR",
				KeyID:       "rzp_test_key",
				PackageInfo: "Starter Pack - 500 Credits",
			},
		})
	})
	mux.HandleFunc("POST /api/payments/verify-payment", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "creditsAdded": 500})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	order, err := client.CreateOrder(ctx, "starter")
	require.NoError(t, err)
	require.Equal(t, "order_1", order.OrderID)
	require.EqualValues(t, 99900, order.Amount)
	require.Equal(t, "INR", order.Currency)

	credits, err := client.VerifyPayment(ctx, PaymentVerification{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "sig",
	})
	require.NoError(t, err)
	require.EqualValues(t, 500, credits)
}

func TestClientLeadRoundTrip(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/leads", func(w http.ResponseWriter, r *http.Request) {
		var req LeadInput
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    Lead{ID: "lead_1", Name: req.Name, Phone: req.Phone, Status: "new"},
		})
	})
	mux.HandleFunc("DELETE /api/leads/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "lead_1", r.PathValue("id"))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]bool{"deleted": true}})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	lead, err := client.CreateLead(ctx, LeadInput{Name: "Amy", Phone: "+911"})
	require.NoError(t, err)
	require.Equal(t, "lead_1", lead.ID)
	require.Equal(t, "new", lead.Status)

	require.NoError(t, client.DeleteLead(ctx, "lead_1"))
}

func TestClientHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Version: "v0.1.0"})
	}))
	defer server.Close()

	health, err := NewClient(server.URL).GetLiveness(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}
