package rails

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valorapay/payment-gateway/internal/models"
)

func newCardTxnAndRequest() (*models.Transaction, models.CreateRequest) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	txn := &models.Transaction{
		ID:        "tx_0123456789abcdef",
		Amount:    decimal.RequireFromString("150.00"),
		Currency:  "BRL",
		Rail:      models.RailCard,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	req := models.CreateRequest{
		Amount:        "150.00",
		Currency:      "BRL",
		PaymentMethod: "credit_card",
		Customer:      "cus_12345",
		Card: &models.CardDetails{
			Number:     "4242424242424242",
			ExpMonth:   "12",
			ExpYear:    "2030",
			CVC:        "123",
			HolderName: "MARIA SILVA",
		},
	}
	return txn, req
}

func TestCardProcessor_Initiate_Approved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txn, req := newCardTxnAndRequest()
	wantToken := CardToken(req.Card)

	acquirer := NewMockAcquirerDecider(ctrl)
	acquirer.EXPECT().
		Authorize(gomock.Any(), AuthorizationRequest{
			TransactionID: txn.ID,
			CardToken:     wantToken,
			CardBrand:     "visa",
			Amount:        txn.Amount,
			Currency:      "BRL",
		}).
		Return(AuthorizationResult{Approved: true}, nil)

	p := NewCardProcessor(acquirer, time.Second)
	err := p.Initiate(context.Background(), txn, req)

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, txn.Status)
	assert.True(t, strings.HasPrefix(txn.AuthorizationCode, "AUTH_"))
	assert.Len(t, txn.AuthorizationCode, len("AUTH_")+8)
	assert.Equal(t, strings.ToUpper(txn.AuthorizationCode), txn.AuthorizationCode)

	require.NotNil(t, txn.Payload.Card)
	assert.Equal(t, wantToken, txn.Payload.Card.Token)
	assert.Equal(t, "4242", txn.Payload.Card.Last4)
	assert.Equal(t, "visa", txn.Payload.Card.Brand)
}

func TestCardProcessor_Initiate_Declined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txn, req := newCardTxnAndRequest()

	acquirer := NewMockAcquirerDecider(ctrl)
	acquirer.EXPECT().
		Authorize(gomock.Any(), gomock.Any()).
		Return(AuthorizationResult{Approved: false, DeclineReason: "card refused by issuing bank"}, nil)

	p := NewCardProcessor(acquirer, time.Second)
	err := p.Initiate(context.Background(), txn, req)

	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, txn.Status)
	assert.Equal(t, "card refused by issuing bank", txn.DeclineReason)
	assert.Empty(t, txn.AuthorizationCode)
	assert.Nil(t, txn.Payload.Card, "declined transactions keep no card payload")
}

func TestCardProcessor_Initiate_AcquirerFailureDeclines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txn, req := newCardTxnAndRequest()

	acquirer := NewMockAcquirerDecider(ctrl)
	acquirer.EXPECT().
		Authorize(gomock.Any(), gomock.Any()).
		Return(AuthorizationResult{}, errors.New("connection reset"))

	p := NewCardProcessor(acquirer, time.Second)
	err := p.Initiate(context.Background(), txn, req)

	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, txn.Status)
	assert.Equal(t, "acquirer unavailable", txn.DeclineReason)
}

func TestCardProcessor_Initiate_TimeoutDeclines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txn, req := newCardTxnAndRequest()

	acquirer := NewMockAcquirerDecider(ctrl)
	acquirer.EXPECT().
		Authorize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ AuthorizationRequest) (AuthorizationResult, error) {
			<-ctx.Done()
			return AuthorizationResult{}, ctx.Err()
		})

	p := NewCardProcessor(acquirer, 10*time.Millisecond)
	err := p.Initiate(context.Background(), txn, req)

	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, txn.Status)
	assert.Equal(t, "acquirer unavailable", txn.DeclineReason)
}

func TestCardToken(t *testing.T) {
	card := &models.CardDetails{Number: "4242424242424242", ExpMonth: "12", ExpYear: "2030"}

	token := CardToken(card)

	require.True(t, strings.HasPrefix(token, "tok_"))
	assert.Len(t, token, len("tok_")+16)
	assert.Equal(t, token, CardToken(card), "token must be deterministic")

	other := &models.CardDetails{Number: "4242424242424242", ExpMonth: "11", ExpYear: "2030"}
	assert.NotEqual(t, token, CardToken(other), "expiry participates in the token")
}

func TestLast4(t *testing.T) {
	assert.Equal(t, "4242", last4("4242 4242 4242 4242"))
	assert.Equal(t, "005", last4("005"))
}
