package portalsdk

import (
	"context"
	"net/http"
)

type createOrderRequest struct {
	PackageID string `json:"packageId"`
}

type createSubscriptionOrderRequest struct {
	PlanID       string `json:"planId"`
	BillingCycle string `json:"billingCycle"`
}

// PaymentVerification identifies a completed Razorpay checkout.
type PaymentVerification struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type verifyPaymentResponse struct {
	Success      bool   `json:"success"`
	CreditsAdded int64  `json:"creditsAdded"`
	Error        string `json:"error"`
}

// CreateOrder opens a checkout order for a credit package. The returned order
// is handed to the hosted checkout widget.
func (c *Client) CreateOrder(ctx context.Context, packageID string) (*Order, error) {
	return postData[Order](ctx, c, "/api/payments/create-order", createOrderRequest{
		PackageID: packageID,
	})
}

// CreateSubscriptionOrder opens a checkout order for a subscription plan.
// billingCycle is "monthly" or "yearly".
func (c *Client) CreateSubscriptionOrder(ctx context.Context, planID, billingCycle string) (*Order, error) {
	return postData[Order](ctx, c, "/api/payments/create-subscription-order", createSubscriptionOrderRequest{
		PlanID:       planID,
		BillingCycle: billingCycle,
	})
}

// VerifyPayment settles a checkout callback and returns the credits granted.
func (c *Client) VerifyPayment(ctx context.Context, verification PaymentVerification) (int64, error) {
	var resp verifyPaymentResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/payments/verify-payment", verification, &resp); err != nil {
		return 0, err
	}
	return resp.CreditsAdded, nil
}
