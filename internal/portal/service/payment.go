package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/cache"
	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/mail"
	"github.com/venturebothq/venturebot/internal/portal/store"
	"github.com/venturebothq/venturebot/pkg/idx"
	"github.com/venturebothq/venturebot/pkg/slogx"
)

var (
	ErrUnknownPackage      = errors.New("unknown_package")
	ErrUnknownPlan         = errors.New("unknown_plan")
	ErrInvalidSignature    = errors.New("invalid_signature")
	ErrOrderNotFound       = errors.New("order_not_found")
	ErrOrderAlreadySettled = errors.New("order_already_settled")
)

// OrderCreator creates an order at the payment gateway. Wrapped so tests can
// stub the gateway; the production implementation uses the Razorpay SDK.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amountPaise int64, receipt string) (orderID string, err error)
}

// CreditPackage is a one-time credit purchase option.
type CreditPackage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Credits int64  `json:"credits"`
	Price   int64  `json:"price"` // paise
}

// Plan is a subscription option; its credits are granted up front for the
// billed period.
type Plan struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	MonthlyCredits int64  `json:"monthlyCredits"`
	MonthlyPrice   int64  `json:"monthlyPrice"` // paise
	YearlyPrice    int64  `json:"yearlyPrice"`  // paise, two months free
}

// CreditPackages are the purchasable one-time bundles, in display order.
var CreditPackages = []CreditPackage{
	{ID: "starter", Name: "Starter Pack", Credits: 500, Price: 99900},
	{ID: "growth", Name: "Growth Pack", Credits: 1500, Price: 249900},
	{ID: "pro", Name: "Pro Pack", Credits: 5000, Price: 699900},
}

// Plans are the subscription tiers, in display order.
var Plans = []Plan{
	{ID: "basic", Name: "Basic", MonthlyCredits: 1000, MonthlyPrice: 199900, YearlyPrice: 1999000},
	{ID: "professional", Name: "Professional", MonthlyCredits: 3000, MonthlyPrice: 499900, YearlyPrice: 4999000},
	{ID: "enterprise", Name: "Enterprise", MonthlyCredits: 10000, MonthlyPrice: 999900, YearlyPrice: 9999000},
}

const (
	BillingCycleMonthly = "monthly"
	BillingCycleYearly  = "yearly"
)

var ErrInvalidBillingCycle = errors.New("invalid_billing_cycle")

// Order is what the frontend needs to open the gateway checkout.
type Order struct {
	OrderID     string `json:"orderId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	KeyID       string `json:"keyId"`
	PackageInfo string `json:"packageInfo"`
}

type PaymentService struct {
	Store  store.Store
	Orders OrderCreator
	Mailer *mail.Mailer
	Cache  *cache.Cache

	KeyID     string
	KeySecret string
}

// CreateOrder opens a gateway order for a credit package and records a
// pending purchase transaction keyed by the order id.
func (s *PaymentService) CreateOrder(ctx context.Context, tenantID, packageID string) (Order, error) {
	pkg, ok := findPackage(packageID)
	if !ok {
		return Order{}, ErrUnknownPackage
	}
	return s.openOrder(ctx, tenantID, pkg.Price, pkg.Credits, fmt.Sprintf("%s (%d credits)", pkg.Name, pkg.Credits))
}

// CreateSubscriptionOrder opens a gateway order for a plan period. Yearly
// billing charges the discounted annual price and grants twelve months of
// credits up front. Renewals are charged the same way from the billing page.
func (s *PaymentService) CreateSubscriptionOrder(ctx context.Context, tenantID, planID, billingCycle string) (Order, error) {
	plan, ok := findPlan(planID)
	if !ok {
		return Order{}, ErrUnknownPlan
	}

	price := plan.MonthlyPrice
	credits := plan.MonthlyCredits
	switch billingCycle {
	case BillingCycleMonthly, "":
		billingCycle = BillingCycleMonthly
	case BillingCycleYearly:
		price = plan.YearlyPrice
		credits = plan.MonthlyCredits * 12
	default:
		return Order{}, ErrInvalidBillingCycle
	}

	return s.openOrder(ctx, tenantID, price, credits, fmt.Sprintf("%s plan (%s)", plan.Name, billingCycle))
}

func (s *PaymentService) openOrder(ctx context.Context, tenantID string, amountPaise, credits int64, description string) (Order, error) {
	receipt := idx.New().String()
	orderID, err := s.Orders.CreateOrder(ctx, amountPaise, receipt)
	if err != nil {
		return Order{}, fmt.Errorf("payment: gateway order failed: %w", err)
	}

	txn := domain.Transaction{
		ID:          idx.New().String(),
		TenantID:    tenantID,
		Type:        domain.TransactionTypePurchase,
		Amount:      amountPaise,
		Credits:     credits,
		Description: description,
		Status:      domain.TransactionStatusPending,
		Reference:   orderID,
		Date:        time.Now().UTC(),
	}
	if err := s.Store.Transactions().CreateTransaction(ctx, txn); err != nil {
		return Order{}, err
	}

	slogx.FromContext(ctx).Info("payment order opened",
		"tenant_id", tenantID, "order_id", orderID, "amount", amountPaise)

	return Order{OrderID: orderID, Amount: amountPaise, Currency: "INR", KeyID: s.KeyID, PackageInfo: description}, nil
}

// VerifyPayment checks the gateway's checkout signature and, when valid,
// settles the pending purchase: the transaction completes and the credits
// land on the tenant atomically. An invalid signature marks the purchase
// failed and grants nothing.
func (s *PaymentService) VerifyPayment(ctx context.Context, tenantID, orderID, paymentID, signature string) (domain.Transaction, error) {
	l := slogx.FromContext(ctx)

	txn, err := s.Store.Transactions().GetTransactionByReference(ctx, tenantID, orderID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Transaction{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.Transaction{}, err
	}
	if txn.Status != domain.TransactionStatusPending {
		return domain.Transaction{}, ErrOrderAlreadySettled
	}

	if !s.signatureValid(orderID, paymentID, signature) {
		l.Warn("payment signature rejected", "tenant_id", tenantID, "order_id", orderID)
		if err := s.Store.Transactions().UpdateTransactionStatus(ctx, tenantID, txn.ID, domain.TransactionStatusFailed); err != nil {
			l.Error("failed to mark transaction failed", "err", err)
		}
		return domain.Transaction{}, ErrInvalidSignature
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Transactions().UpdateTransactionStatus(ctx, tenantID, txn.ID, domain.TransactionStatusCompleted); err != nil {
			return err
		}
		return tx.Tenants().AddCredits(ctx, tenantID, txn.Credits)
	})
	if err != nil {
		return domain.Transaction{}, err
	}
	txn.Status = domain.TransactionStatusCompleted

	s.Cache.Invalidate(ctx, dashboardStatsKey(tenantID), dashboardChartsKey(tenantID))

	if s.Mailer.Enabled() {
		if tenant, terr := s.Store.Tenants().GetTenantByID(ctx, tenantID); terr == nil {
			if merr := s.Mailer.SendPaymentReceipt(tenant.Email, txn.Amount, txn.Credits, orderID); merr != nil {
				l.Warn("receipt email failed", "err", merr)
			}
		}
	}

	l.Info("payment settled", "tenant_id", tenantID, "order_id", orderID, "credits", txn.Credits)
	return txn, nil
}

// signatureValid recomputes the checkout signature: HMAC-SHA256 of
// "<order_id>|<payment_id>" keyed by the gateway secret, hex encoded.
func (s *PaymentService) signatureValid(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

func findPackage(id string) (CreditPackage, bool) {
	for _, p := range CreditPackages {
		if p.ID == id {
			return p, true
		}
	}
	return CreditPackage{}, false
}

func findPlan(id string) (Plan, bool) {
	for _, p := range Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
