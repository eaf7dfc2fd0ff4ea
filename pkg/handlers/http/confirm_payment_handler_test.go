package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/payment"
	"github.com/caraudioevents/platform/pkg/domain/registration"
	"github.com/caraudioevents/platform/pkg/infra/auditlogs"
	"github.com/caraudioevents/platform/pkg/infra/payments"
)

type fakeRegistrationRepo struct {
	registrations map[uuid.UUID]*registration.Registration
	statusUpdates map[uuid.UUID]string
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{
		registrations: make(map[uuid.UUID]*registration.Registration),
		statusUpdates: make(map[uuid.UUID]string),
	}
}

func (f *fakeRegistrationRepo) Get(_ context.Context, id uuid.UUID) (*registration.Registration, error) {
	reg, ok := f.registrations[id]
	if !ok {
		return nil, domain.NewNotFoundError("registration", id)
	}
	return reg, nil
}

func (f *fakeRegistrationRepo) List(_ context.Context, _ registration.ListFilter) ([]registration.Registration, error) {
	return nil, nil
}

func (f *fakeRegistrationRepo) Create(_ context.Context, reg *registration.Registration) error {
	f.registrations[reg.ID] = reg
	return nil
}

func (f *fakeRegistrationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	f.statusUpdates[id] = status
	return nil
}

type fakePaymentRepo struct {
	created []*payment.Payment
}

func (f *fakePaymentRepo) Get(_ context.Context, id uuid.UUID) (*payment.Payment, error) {
	return nil, domain.NewNotFoundError("payment", id)
}

func (f *fakePaymentRepo) GetByIntentID(_ context.Context, intentID string) (*payment.Payment, error) {
	return nil, &domain.NotFoundError{Entity: "payment", Key: intentID}
}

func (f *fakePaymentRepo) ListByUser(_ context.Context, _ uuid.UUID) ([]payment.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) Create(_ context.Context, p *payment.Payment) error {
	f.created = append(f.created, p)
	return nil
}

type fakeProcessor struct {
	intent *payments.Intent
	err    error
	calls  int
}

func (f *fakeProcessor) RetrieveIntent(_ context.Context, _ string) (*payments.Intent, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.intent, nil
}

type noopAudit struct{}

func (noopAudit) Write(_ context.Context, _ auditlogs.Record) {}

func confirmPaymentApp(regRepo *fakeRegistrationRepo, payRepo *fakePaymentRepo, processor *fakeProcessor) *fiber.App {
	handler := NewConfirmPaymentHandler(logrus.New(), regRepo, payRepo, processor, noopAudit{})
	app := fiber.New()
	app.Post("/payments/confirm", handler.Handle)
	return app
}

func pendingRegistration() *registration.Registration {
	return &registration.Registration{
		ID:      uuid.New(),
		EventID: uuid.New(),
		UserID:  uuid.New(),
		Status:  registration.StatusPendingPayment,
	}
}

func TestConfirmPaymentHandler_RejectsUnsucceededIntent(t *testing.T) {
	regRepo := newFakeRegistrationRepo()
	reg := pendingRegistration()
	regRepo.registrations[reg.ID] = reg

	payRepo := &fakePaymentRepo{}
	processor := &fakeProcessor{intent: &payments.Intent{
		ID:     "pi_123",
		Status: "requires_payment_method",
	}}
	app := confirmPaymentApp(regRepo, payRepo, processor)

	body, _ := json.Marshal(map[string]string{
		"registration_id":   reg.ID.String(),
		"payment_intent_id": "pi_123",
	})
	req := httptest.NewRequest("POST", "/payments/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, 1, processor.calls)
	assert.Empty(t, payRepo.created)
	assert.Empty(t, regRepo.statusUpdates)
}

func TestConfirmPaymentHandler_ConfirmsSucceededIntent(t *testing.T) {
	regRepo := newFakeRegistrationRepo()
	reg := pendingRegistration()
	regRepo.registrations[reg.ID] = reg

	payRepo := &fakePaymentRepo{}
	processor := &fakeProcessor{intent: &payments.Intent{
		ID:       "pi_456",
		Status:   payments.IntentStatusSucceeded,
		Amount:   2500,
		Currency: "usd",
	}}
	app := confirmPaymentApp(regRepo, payRepo, processor)

	body, _ := json.Marshal(map[string]string{
		"registration_id":   reg.ID.String(),
		"payment_intent_id": "pi_456",
	})
	req := httptest.NewRequest("POST", "/payments/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, payRepo.created, 1)
	assert.Equal(t, reg.ID, payRepo.created[0].RegistrationID)
	assert.Equal(t, int64(2500), payRepo.created[0].Amount)
	assert.Equal(t, registration.StatusConfirmed, regRepo.statusUpdates[reg.ID])

	respBody, _ := io.ReadAll(resp.Body)
	var recorded payment.Payment
	require.NoError(t, json.Unmarshal(respBody, &recorded))
	assert.Equal(t, "pi_456", recorded.PaymentIntentID)
}

func TestConfirmPaymentHandler_RejectsNonPendingRegistration(t *testing.T) {
	regRepo := newFakeRegistrationRepo()
	reg := pendingRegistration()
	reg.Status = registration.StatusConfirmed
	regRepo.registrations[reg.ID] = reg

	processor := &fakeProcessor{intent: &payments.Intent{ID: "pi_789", Status: payments.IntentStatusSucceeded}}
	app := confirmPaymentApp(regRepo, &fakePaymentRepo{}, processor)

	body, _ := json.Marshal(map[string]string{
		"registration_id":   reg.ID.String(),
		"payment_intent_id": "pi_789",
	})
	req := httptest.NewRequest("POST", "/payments/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, 0, processor.calls)
}

func TestConfirmPaymentHandler_ProcessorUnavailable(t *testing.T) {
	regRepo := newFakeRegistrationRepo()
	reg := pendingRegistration()
	regRepo.registrations[reg.ID] = reg

	processor := &fakeProcessor{err: fmt.Errorf("connection refused")}
	app := confirmPaymentApp(regRepo, &fakePaymentRepo{}, processor)

	body, _ := json.Marshal(map[string]string{
		"registration_id":   reg.ID.String(),
		"payment_intent_id": "pi_000",
	})
	req := httptest.NewRequest("POST", "/payments/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
