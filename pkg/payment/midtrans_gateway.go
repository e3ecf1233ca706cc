package payment

import (
	"os"
	"strconv"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
)

// TransactionStatus is the subset of the gateway's notification payload the
// campaign ledger cares about.
type TransactionStatus struct {
	OrderID     string
	Status      string
	GrossAmount float64
}

const (
	StatusSettlement = "settlement"
	StatusCapture    = "capture"
	StatusPending    = "pending"
	StatusExpire     = "expire"
	StatusCancel     = "cancel"
	StatusDeny       = "deny"
)

type (
	PaymentGateway interface {
		// CreateTransaction opens a hosted payment page for the given order and
		// returns its redirect URL.
		CreateTransaction(orderID string, amount int64, email string) (string, error)
		// CheckTransaction re-fetches the transaction from the gateway. Webhook
		// payloads are untrusted; the ledger only moves on what this returns.
		CheckTransaction(orderID string) (*TransactionStatus, error)
	}

	midtransGateway struct {
		snapClient snap.Client
		coreClient coreapi.Client
	}
)

func NewMidtransGateway() PaymentGateway {
	serverKey := os.Getenv("SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("IS_PROD") == "true" {
		env = midtrans.Production
	}

	var g midtransGateway
	g.snapClient.New(serverKey, env)
	g.coreClient.New(serverKey, env)
	return &g
}

func (g *midtransGateway) CreateTransaction(orderID string, amount int64, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: email,
		},
	}

	resp, err := g.snapClient.CreateTransaction(req)
	if err != nil {
		return "", domain.ErrPaymentFailed
	}
	return resp.RedirectURL, nil
}

func (g *midtransGateway) CheckTransaction(orderID string) (*TransactionStatus, error) {
	resp, err := g.coreClient.CheckTransaction(orderID)
	if err != nil {
		return nil, domain.ErrPaymentFailed
	}

	status := &TransactionStatus{
		OrderID: resp.OrderID,
		Status:  resp.TransactionStatus,
	}
	if resp.GrossAmount != "" {
		if amount, err := strconv.ParseFloat(resp.GrossAmount, 64); err == nil {
			status.GrossAmount = amount
		}
	}
	return status, nil
}
