package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"veredicto/internal/domain/entities"
	"veredicto/internal/usecase/interfaces"
	mock_interfaces "veredicto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestWebhookUseCase(repo interfaces.IReportRepository, gateway interfaces.ICheckoutGateway, queue interfaces.IFulfillmentQueue) *WebhookUseCase {
	uc := NewWebhookUseCase(repo, gateway, queue)
	uc.lookupBackoff = time.Millisecond
	return uc
}

func completedEvent() interfaces.CheckoutEvent {
	return interfaces.CheckoutEvent{
		EventID:    "evt_1",
		Type:       "checkout.session.completed",
		SessionID:  "cs_1",
		ReportID:   "rep-1",
		Tier:       entities.TierVerdict,
		PayerEmail: "payer@b.cl",
		Completed:  true,
	}
}

func TestWebhookUseCase_ProcessWebhook(t *testing.T) {
	payload := []byte(`{}`)
	header := http.Header{}

	t.Run("signature rejection propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := newTestWebhookUseCase(repo, gateway, nil)

		gateway.EXPECT().ParseWebhook(gomock.Any(), payload, header).
			Return(interfaces.CheckoutEvent{}, fmt.Errorf("%w: hmac mismatch", interfaces.ErrInvalidSignature))
		// No repo expectation: nothing may be read or written.

		err := uc.ProcessWebhook(context.Background(), payload, header)
		if !errors.Is(err, interfaces.ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("non completed event acked without mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := newTestWebhookUseCase(repo, gateway, nil)

		gateway.EXPECT().ParseWebhook(gomock.Any(), payload, header).
			Return(interfaces.CheckoutEvent{EventID: "evt_1", Type: "payment_intent.created"}, nil)

		if err := uc.ProcessWebhook(context.Background(), payload, header); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("completed event without report id acked as orphan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := newTestWebhookUseCase(repo, gateway, nil)

		ev := completedEvent()
		ev.ReportID = ""
		gateway.EXPECT().ParseWebhook(gomock.Any(), payload, header).Return(ev, nil)

		if err := uc.ProcessWebhook(context.Background(), payload, header); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("applied event enqueues fulfillment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		queue := mock_interfaces.NewMockIFulfillmentQueue(ctrl)
		uc := newTestWebhookUseCase(repo, gateway, queue)

		gateway.EXPECT().ParseWebhook(gomock.Any(), payload, header).Return(completedEvent(), nil)
		repo.EXPECT().ApplyPaidEvent(gomock.Any(), "rep-1", entities.PaidEvent{
			EventID:    "evt_1",
			SessionID:  "cs_1",
			Tier:       entities.TierVerdict,
			PayerEmail: "payer@b.cl",
		}).Return(entities.Report{ID: "rep-1", Paid: true}, true, nil)
		queue.EXPECT().Enqueue("rep-1", entities.TierVerdict)

		if err := uc.ProcessWebhook(context.Background(), payload, header); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate event acked without enqueue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		queue := mock_interfaces.NewMockIFulfillmentQueue(ctrl)
		uc := newTestWebhookUseCase(repo, gateway, queue)

		gateway.EXPECT().ParseWebhook(gomock.Any(), payload, header).Return(completedEvent(), nil)
		repo.EXPECT().ApplyPaidEvent(gomock.Any(), "rep-1", gomock.Any()).
			Return(entities.Report{ID: "rep-1", Paid: true}, false, nil)
		// No queue expectation: a replay must not re-trigger fulfillment.

		if err := uc.ProcessWebhook(context.Background(), payload, header); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown report retried then acked as orphan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := newTestWebhookUseCase(repo, gateway, nil)

		gateway.EXPECT().ParseWebhook(gomock.Any(), payload, header).Return(completedEvent(), nil)
		repo.EXPECT().ApplyPaidEvent(gomock.Any(), "rep-1", gomock.Any()).
			Return(entities.Report{}, false, nil).
			Times(defaultLookupRetries + 1)

		if err := uc.ProcessWebhook(context.Background(), payload, header); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("out of order event applies once the report appears", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		queue := mock_interfaces.NewMockIFulfillmentQueue(ctrl)
		uc := newTestWebhookUseCase(repo, gateway, queue)

		gateway.EXPECT().ParseWebhook(gomock.Any(), payload, header).Return(completedEvent(), nil)
		first := repo.EXPECT().ApplyPaidEvent(gomock.Any(), "rep-1", gomock.Any()).
			Return(entities.Report{}, false, nil)
		repo.EXPECT().ApplyPaidEvent(gomock.Any(), "rep-1", gomock.Any()).
			Return(entities.Report{ID: "rep-1", Paid: true}, true, nil).
			After(first)
		queue.EXPECT().Enqueue("rep-1", entities.TierVerdict)

		if err := uc.ProcessWebhook(context.Background(), payload, header); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store failure after validation is acked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := newTestWebhookUseCase(repo, gateway, nil)

		gateway.EXPECT().ParseWebhook(gomock.Any(), payload, header).Return(completedEvent(), nil)
		repo.EXPECT().ApplyPaidEvent(gomock.Any(), "rep-1", gomock.Any()).
			Return(entities.Report{}, false, errors.New("dynamodb down"))

		if err := uc.ProcessWebhook(context.Background(), payload, header); err != nil {
			t.Fatalf("post-validation failures must be acked, got %v", err)
		}
	})

	t.Run("missing tier defaults to verdict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		queue := mock_interfaces.NewMockIFulfillmentQueue(ctrl)
		uc := newTestWebhookUseCase(repo, gateway, queue)

		ev := completedEvent()
		ev.Tier = ""
		gateway.EXPECT().ParseWebhook(gomock.Any(), payload, header).Return(ev, nil)
		repo.EXPECT().ApplyPaidEvent(gomock.Any(), "rep-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, pe entities.PaidEvent) (entities.Report, bool, error) {
				if pe.Tier != entities.TierVerdict {
					t.Fatalf("expected verdict default, got %q", pe.Tier)
				}
				return entities.Report{ID: "rep-1", Paid: true}, true, nil
			},
		)
		queue.EXPECT().Enqueue("rep-1", entities.TierVerdict)

		if err := uc.ProcessWebhook(context.Background(), payload, header); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
