package service

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayOrders implements OrderCreator against the live Razorpay API.
type RazorpayOrders struct {
	Client *razorpay.Client
}

func NewRazorpayOrders(keyID, keySecret string) *RazorpayOrders {
	return &RazorpayOrders{Client: razorpay.NewClient(keyID, keySecret)}
}

func (r *RazorpayOrders) CreateOrder(ctx context.Context, amountPaise int64, receipt string) (string, error) {
	body, err := r.Client.Order.Create(map[string]any{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  receipt,
	}, nil)
	if err != nil {
		return "", err
	}

	id, ok := body["id"].(string)
	if !ok {
		return "", fmt.Errorf("razorpay: order response missing id: %v", body)
	}
	return id, nil
}
