package service

import (
	"context"
	"errors"
	"testing"

	"webhook-reconciler/config"
	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports/mocks"
	"webhook-reconciler/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type successTestDeps struct {
	handler  *SuccessfulAuthorizationHandler
	policy   *mocks.MockCaptureModePolicy
	ledger   *mocks.MockLedgerWriter
	reviews  *mocks.MockReviewPolicy
	invoices *mocks.MockInvoiceService
	cases    *mocks.MockCaseService
	mutator  *mocks.MockOrderMutator
	currency *mocks.MockCurrencyConverter
	sink     *recordingSink
}

var chargedEUR = domain.Amount{Value: decimal.RequireFromString("100.00"), Currency: "EUR"}

func setupSuccessHandler(t *testing.T, settings map[string]any) *successTestDeps {
	ctrl := gomock.NewController(t)
	d := &successTestDeps{
		policy:   mocks.NewMockCaptureModePolicy(ctrl),
		ledger:   mocks.NewMockLedgerWriter(ctrl),
		reviews:  mocks.NewMockReviewPolicy(ctrl),
		invoices: mocks.NewMockInvoiceService(ctrl),
		cases:    mocks.NewMockCaseService(ctrl),
		mutator:  mocks.NewMockOrderMutator(ctrl),
		currency: mocks.NewMockCurrencyConverter(ctrl),
		sink:     &recordingSink{},
	}
	d.handler = NewSuccessfulAuthorizationHandler(SuccessDeps{
		Capture:  NewCaptureModeResolver(d.policy),
		Ledger:   d.ledger,
		Reviews:  d.reviews,
		Invoices: d.invoices,
		Cases:    d.cases,
		Mutator:  d.mutator,
		Currency: d.currency,
		Config:   newTestConfig(settings),
		Methods: domain.MethodCapabilityTable{
			"adyen_boleto": {MailDeferred: true},
			"c_cash":       {CashChannel: true, ShipmentScope: config.ScopeCash},
		},
		Sink: d.sink,
	}, newTestLogger())
	d.currency.EXPECT().ChargedAmount(gomock.Any()).Return(chargedEUR).AnyTimes()
	return d
}

func same(_ context.Context, o domain.Order) (domain.Order, error) { return o, nil }

func sameForNotification(_ context.Context, o domain.Order, _ domain.Notification) (domain.Order, error) {
	return o, nil
}

func finalized(_ context.Context, o domain.Order, _ domain.Notification) (domain.Order, error) {
	return o.WithState(domain.OrderStateProcessing).WithStatus(domain.StatusProcessing), nil
}

func mailed(_ context.Context, o domain.Order) (domain.Order, error) {
	out := o.Clone()
	out.EmailSent = true
	return out, nil
}

// expectFullyAuthorized sets up the ledger and the pre-authorization steps.
func (d *successTestDeps) expectFullyAuthorized(full bool) {
	d.ledger.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.ledger.EXPECT().IsFullyAuthorized(gomock.Any(), gomock.Any()).Return(full, nil)
	if full {
		d.mutator.EXPECT().SetPrePaymentAuthorized(gomock.Any(), gomock.Any()).DoAndReturn(same)
		d.mutator.EXPECT().UpdatePaymentDetails(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(sameForNotification)
	}
}

func TestSuccessfulAuthorizationHandler_AutoCapture_FullAmount(t *testing.T) {
	d := setupSuccessHandler(t, nil)
	order := newTestOrder()
	n := newTestNotification(domain.EventCodeAuthorisation, true)

	d.policy.EXPECT().IsAutoCapture(order, "adyen_cc").Return(true)
	d.ledger.EXPECT().Record(gomock.Any(), gomock.Any(), n, true).DoAndReturn(
		func(_ context.Context, o domain.Order, _ domain.Notification, _ bool) error {
			assert.True(t, o.Captured, "captured flag must be set before the ledger write")
			return nil
		},
	)
	d.ledger.EXPECT().IsFullyAuthorized(gomock.Any(), gomock.Any()).Return(true, nil)
	d.mutator.EXPECT().SetPrePaymentAuthorized(gomock.Any(), gomock.Any()).DoAndReturn(same)
	d.mutator.EXPECT().UpdatePaymentDetails(gomock.Any(), gomock.Any(), n).DoAndReturn(sameForNotification)
	d.reviews.EXPECT().RequiresManualReview(domain.AdditionalData{}).Return(false)

	gomock.InOrder(
		d.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), n, true).Return(nil).Times(1),
		d.mutator.EXPECT().Finalize(gomock.Any(), gomock.Any(), n).DoAndReturn(finalized),
		d.mutator.EXPECT().SendConfirmationMail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, o domain.Order) (domain.Order, error) {
				assert.True(t, o.HasInvoice, "mail must follow invoice creation")
				return mailed(ctx, o)
			},
		),
	)

	got, err := d.handler.HandleSuccess(context.Background(), order, n)
	require.NoError(t, err)

	assert.True(t, got.Captured)
	assert.True(t, got.HasInvoice)
	assert.True(t, got.EmailSent)
	assert.Equal(t, domain.OrderStateProcessing, got.State)
	assert.True(t, chargedEUR.Value.Equal(got.AuthorizedAmount))
	assert.False(t, order.Captured, "input snapshot must not be modified")
	assert.Equal(t, []string{"auto"}, d.sink.names(domain.DecisionCaptureMode))
}

func TestSuccessfulAuthorizationHandler_PartialAuthorization(t *testing.T) {
	d := setupSuccessHandler(t, nil)
	order := newTestOrder()
	n := newTestNotification(domain.EventCodeAuthorisation, true)
	n.Amount = 4000

	d.policy.EXPECT().IsAutoCapture(gomock.Any(), gomock.Any()).Return(true)
	d.expectFullyAuthorized(false)
	d.mutator.EXPECT().AddWebhookStatusComment(gomock.Any(), gomock.Any(), n).DoAndReturn(
		func(_ context.Context, o domain.Order, _ domain.Notification) (domain.Order, error) {
			return o.WithComment("partial", testNow), nil
		},
	).Times(1)
	d.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	d.mutator.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	d.mutator.EXPECT().SendConfirmationMail(gomock.Any(), gomock.Any()).Times(0)

	got, err := d.handler.HandleSuccess(context.Background(), order, n)
	require.NoError(t, err)

	assert.Len(t, got.History, 1)
	assert.False(t, got.HasInvoice)
	assert.True(t, chargedEUR.Value.Equal(got.AuthorizedAmount), "authorized amount is the order's charged total")
	assert.Len(t, d.sink.names(domain.DecisionPartialAuthorized), 1)
}

func TestSuccessfulAuthorizationHandler_ManualCapture_ReviewRequired(t *testing.T) {
	d := setupSuccessHandler(t, nil)
	order := newTestOrder()
	n := newTestNotification(domain.EventCodeAuthorisation, true)
	n.AdditionalData = []byte(`{"fraudManualReview":"true"}`)

	d.policy.EXPECT().IsAutoCapture(gomock.Any(), gomock.Any()).Return(false)
	d.expectFullyAuthorized(true)
	d.reviews.EXPECT().RequiresManualReview(domain.AdditionalData{domain.KeyFraudManualReview: "true"}).Return(true)
	d.cases.EXPECT().MarkPendingReview(gomock.Any(), gomock.Any(), n.PSPReference, false).DoAndReturn(
		func(_ context.Context, o domain.Order, _ string, _ bool) (domain.Order, error) {
			return o.WithState(domain.OrderStatePendingReview), nil
		},
	)
	d.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	d.mutator.EXPECT().SendConfirmationMail(gomock.Any(), gomock.Any()).DoAndReturn(mailed)

	got, err := d.handler.HandleSuccess(context.Background(), order, n)
	require.NoError(t, err)

	assert.False(t, got.Captured, "manual capture never sets the captured flag")
	assert.False(t, got.HasInvoice)
	assert.Equal(t, domain.OrderStatePendingReview, got.State)
}

func TestSuccessfulAuthorizationHandler_ManualCapture_NoReview(t *testing.T) {
	d := setupSuccessHandler(t, nil)
	order := newTestOrder()
	n := newTestNotification(domain.EventCodeAuthorisation, true)

	d.policy.EXPECT().IsAutoCapture(gomock.Any(), gomock.Any()).Return(false)
	d.expectFullyAuthorized(true)
	d.reviews.EXPECT().RequiresManualReview(gomock.Any()).Return(false)
	gomock.InOrder(
		d.mutator.EXPECT().AddWebhookStatusComment(gomock.Any(), gomock.Any(), n).DoAndReturn(sameForNotification),
		d.mutator.EXPECT().AddStatusHistoryComment(gomock.Any(), gomock.Any(), commentManualCapture).DoAndReturn(withComment),
	)
	d.mutator.EXPECT().SendConfirmationMail(gomock.Any(), gomock.Any()).DoAndReturn(mailed)

	got, err := d.handler.HandleSuccess(context.Background(), order, n)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStateNew, got.State)
	require.Len(t, got.History, 1)
	assert.Equal(t, commentManualCapture, got.History[0].Comment)
}

func TestSuccessfulAuthorizationHandler_AutoCapture_ReviewRequired(t *testing.T) {
	d := setupSuccessHandler(t, nil)
	order := newTestOrder()
	n := newTestNotification(domain.EventCodeAuthorisation, true)

	d.policy.EXPECT().IsAutoCapture(gomock.Any(), gomock.Any()).Return(true)
	d.expectFullyAuthorized(true)
	d.reviews.EXPECT().RequiresManualReview(gomock.Any()).Return(true)
	gomock.InOrder(
		d.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), n, true).Return(nil),
		d.cases.EXPECT().MarkPendingReview(gomock.Any(), gomock.Any(), n.PSPReference, true).DoAndReturn(
			func(_ context.Context, o domain.Order, _ string, _ bool) (domain.Order, error) {
				return o.WithStatus(domain.StatusPaymentReview), nil
			},
		),
	)
	d.mutator.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	d.mutator.EXPECT().SendConfirmationMail(gomock.Any(), gomock.Any()).DoAndReturn(mailed)

	got, err := d.handler.HandleSuccess(context.Background(), order, n)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaymentReview, got.Status)
	assert.True(t, got.HasInvoice)
}

func TestSuccessfulAuthorizationHandler_Replay_NoSecondInvoice(t *testing.T) {
	d := setupSuccessHandler(t, nil)
	order := newTestOrder()
	order.HasInvoice = true
	order.EmailSent = true
	n := newTestNotification(domain.EventCodeAuthorisation, true)

	d.policy.EXPECT().IsAutoCapture(gomock.Any(), gomock.Any()).Return(true)
	d.expectFullyAuthorized(true)
	d.reviews.EXPECT().RequiresManualReview(gomock.Any()).Return(false)
	d.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	d.mutator.EXPECT().Finalize(gomock.Any(), gomock.Any(), n).DoAndReturn(finalized)
	d.mutator.EXPECT().SendConfirmationMail(gomock.Any(), gomock.Any()).Times(0)

	_, err := d.handler.HandleSuccess(context.Background(), order, n)
	require.NoError(t, err)
}

func TestSuccessfulAuthorizationHandler_MailDeferredMethod(t *testing.T) {
	d := setupSuccessHandler(t, nil)
	order := newTestOrder()
	n := newTestNotification(domain.EventCodeAuthorisation, true)
	n.PaymentMethod = "adyen_boleto"

	d.policy.EXPECT().IsAutoCapture(gomock.Any(), "adyen_boleto").Return(true)
	d.expectFullyAuthorized(true)
	d.reviews.EXPECT().RequiresManualReview(gomock.Any()).Return(false)
	d.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(nil)
	d.mutator.EXPECT().Finalize(gomock.Any(), gomock.Any(), n).DoAndReturn(finalized)
	d.mutator.EXPECT().SendConfirmationMail(gomock.Any(), gomock.Any()).Times(0)

	got, err := d.handler.HandleSuccess(context.Background(), order, n)
	require.NoError(t, err)
	assert.False(t, got.EmailSent)
}

func TestSuccessfulAuthorizationHandler_CashShipment(t *testing.T) {
	tests := []struct {
		name         string
		createShip   bool
		wantShipment int
	}{
		{"enabled", true, 1},
		{"disabled", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupSuccessHandler(t, map[string]any{"adyen_cash.create_shipment": tt.createShip})
			n := newTestNotification(domain.EventCodeAuthorisation, true)
			n.PaymentMethod = "c_cash"

			d.policy.EXPECT().IsAutoCapture(gomock.Any(), gomock.Any()).Return(false)
			d.expectFullyAuthorized(false)
			d.mutator.EXPECT().AddWebhookStatusComment(gomock.Any(), gomock.Any(), n).DoAndReturn(sameForNotification)
			d.mutator.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).DoAndReturn(same).Times(tt.wantShipment)

			_, err := d.handler.HandleSuccess(context.Background(), newTestOrder(), n)
			require.NoError(t, err)
		})
	}
}

func TestSuccessfulAuthorizationHandler_UnsuccessfulNotificationKeepsFlag(t *testing.T) {
	d := setupSuccessHandler(t, nil)
	n := newTestNotification(domain.EventCodeAuthorisation, false)

	d.policy.EXPECT().IsAutoCapture(gomock.Any(), gomock.Any()).Return(true)
	d.expectFullyAuthorized(false)
	d.mutator.EXPECT().AddWebhookStatusComment(gomock.Any(), gomock.Any(), n).DoAndReturn(sameForNotification)

	got, err := d.handler.HandleSuccess(context.Background(), newTestOrder(), n)
	require.NoError(t, err)
	assert.False(t, got.Captured)
}

func TestSuccessfulAuthorizationHandler_CollaboratorErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("ledger record", func(t *testing.T) {
		d := setupSuccessHandler(t, nil)
		d.policy.EXPECT().IsAutoCapture(gomock.Any(), gomock.Any()).Return(true)
		d.ledger.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

		_, err := d.handler.HandleSuccess(context.Background(), newTestOrder(), newTestNotification(domain.EventCodeAuthorisation, true))
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, apperror.CodeOrderUpdateFailed))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("invoice", func(t *testing.T) {
		d := setupSuccessHandler(t, nil)
		d.policy.EXPECT().IsAutoCapture(gomock.Any(), gomock.Any()).Return(true)
		d.expectFullyAuthorized(true)
		d.reviews.EXPECT().RequiresManualReview(gomock.Any()).Return(false)
		d.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(boom)
		d.mutator.EXPECT().SendConfirmationMail(gomock.Any(), gomock.Any()).Times(0)

		_, err := d.handler.HandleSuccess(context.Background(), newTestOrder(), newTestNotification(domain.EventCodeAuthorisation, true))
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, apperror.CodeOrderUpdateFailed))
	})

	t.Run("mail", func(t *testing.T) {
		d := setupSuccessHandler(t, nil)
		d.policy.EXPECT().IsAutoCapture(gomock.Any(), gomock.Any()).Return(false)
		d.expectFullyAuthorized(true)
		d.reviews.EXPECT().RequiresManualReview(gomock.Any()).Return(false)
		d.mutator.EXPECT().AddWebhookStatusComment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(sameForNotification)
		d.mutator.EXPECT().AddStatusHistoryComment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(withComment)
		d.mutator.EXPECT().SendConfirmationMail(gomock.Any(), gomock.Any()).Return(domain.Order{}, boom)

		_, err := d.handler.HandleSuccess(context.Background(), newTestOrder(), newTestNotification(domain.EventCodeAuthorisation, true))
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, apperror.CodeOrderUpdateFailed))
	})
}
