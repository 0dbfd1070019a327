package main

import (
	"bytes"
	"context"
	"testing"

	deliveryhttp "shopmate/internal/delivery/http"
	"shopmate/internal/domain/entity"
	"shopmate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePaymentFlow implements usecase.PaymentUsecase for the settlement wait.
type fakePaymentFlow struct {
	pollFn func(ctx context.Context) (*usecase.PollOutcome, error)
	status *entity.PaymentStatus
	checks int
}

func (f *fakePaymentFlow) OpenCheckout(context.Context, string) (*entity.CheckoutSession, error) {
	return nil, nil
}

func (f *fakePaymentFlow) Poll(ctx context.Context, _ string) (*usecase.PollOutcome, error) {
	if f.pollFn == nil {
		<-ctx.Done()

		return nil, ctx.Err()
	}

	return f.pollFn(ctx)
}

func (f *fakePaymentFlow) CheckOnce(context.Context, string) (*entity.PaymentStatus, error) {
	f.checks++

	return f.status, nil
}

func TestAwaitSettlement_SuccessRedirectShortCircuits(t *testing.T) {
	t.Parallel()

	payment := &fakePaymentFlow{status: &entity.PaymentStatus{PaymentStatus: "paid"}}
	events := make(chan deliveryhttp.CallbackEvent, 1)
	events <- deliveryhttp.CallbackEvent{SessionID: "cs_1"}

	var out bytes.Buffer
	err := awaitSettlement(context.Background(), payment, events, "cs_1", &out)
	require.NoError(t, err)
	assert.Equal(t, 1, payment.checks)
	assert.Contains(t, out.String(), "Payment confirmed")
}

func TestAwaitSettlement_CancelRedirectStopsPolling(t *testing.T) {
	t.Parallel()

	payment := &fakePaymentFlow{}
	events := make(chan deliveryhttp.CallbackEvent, 1)
	events <- deliveryhttp.CallbackEvent{SessionID: "cs_1", Cancelled: true}

	var out bytes.Buffer
	err := awaitSettlement(context.Background(), payment, events, "cs_1", &out)
	require.NoError(t, err)
	assert.Zero(t, payment.checks, "cancellation must not trigger a status check")
	assert.Contains(t, out.String(), "Payment cancelled")
}

func TestAwaitSettlement_RedirectForOtherSessionIgnored(t *testing.T) {
	t.Parallel()

	payment := &fakePaymentFlow{
		pollFn: func(context.Context) (*usecase.PollOutcome, error) {
			return &usecase.PollOutcome{State: entity.PaymentPaid, Attempts: 1}, nil
		},
	}
	events := make(chan deliveryhttp.CallbackEvent, 1)
	events <- deliveryhttp.CallbackEvent{SessionID: "cs_other"}

	var out bytes.Buffer
	err := awaitSettlement(context.Background(), payment, events, "cs_1", &out)
	require.NoError(t, err)
	assert.Zero(t, payment.checks)
	assert.Contains(t, out.String(), "Payment confirmed")
}

func TestAwaitSettlement_PollOutcomeWithoutRedirect(t *testing.T) {
	t.Parallel()

	payment := &fakePaymentFlow{
		pollFn: func(context.Context) (*usecase.PollOutcome, error) {
			return &usecase.PollOutcome{State: entity.PaymentTimeout, Attempts: 10}, nil
		},
	}

	var out bytes.Buffer
	err := awaitSettlement(context.Background(), payment, make(chan deliveryhttp.CallbackEvent), "cs_1", &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Still pending after 10 checks")
}
