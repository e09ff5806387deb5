package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/zaeempppp/telegram-booster/internal/domain/errors"
	"github.com/zaeempppp/telegram-booster/internal/domain/model"
)

type stubOrderRepository struct {
	createFn      func(context.Context, int64, int64, model.ServiceType, int) (*model.Order, error)
	countFn       func(context.Context, int64) (int, error)
	getFn         func(context.Context, uuid.UUID) (*model.Order, error)
	listByUserFn  func(context.Context, int64) ([]model.Order, error)
	listAllFn     func(context.Context) ([]model.OrderWithSubmitter, error)
	decideFn      func(context.Context, uuid.UUID, model.OrderStatus, *string) error
}

func (s stubOrderRepository) CreatePending(ctx context.Context, userID int64, amount int64, serviceType model.ServiceType, limit int) (*model.Order, error) {
	if s.createFn == nil {
		panic("not implemented")
	}
	return s.createFn(ctx, userID, amount, serviceType, limit)
}

func (s stubOrderRepository) CountPending(ctx context.Context, userID int64) (int, error) {
	if s.countFn == nil {
		panic("not implemented")
	}
	return s.countFn(ctx, userID)
}

func (s stubOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.getFn == nil {
		panic("not implemented")
	}
	return s.getFn(ctx, id)
}

func (s stubOrderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.listByUserFn == nil {
		panic("not implemented")
	}
	return s.listByUserFn(ctx, userID)
}

func (s stubOrderRepository) ListAll(ctx context.Context) ([]model.OrderWithSubmitter, error) {
	if s.listAllFn == nil {
		panic("not implemented")
	}
	return s.listAllFn(ctx)
}

func (s stubOrderRepository) Decide(ctx context.Context, id uuid.UUID, status model.OrderStatus, note *string) error {
	if s.decideFn == nil {
		panic("not implemented")
	}
	return s.decideFn(ctx, id, status, note)
}

type stubUserRepository struct {
	getByIDFn    func(context.Context, int64) (*model.User, error)
	getByEmailFn func(context.Context, string) (*model.User, error)
	createFn     func(context.Context, string, string, string) (*model.User, error)
}

func (s stubUserRepository) Create(ctx context.Context, email, username, passwordHash string) (*model.User, error) {
	if s.createFn == nil {
		panic("not implemented")
	}
	return s.createFn(ctx, email, username, passwordHash)
}

func (s stubUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.getByEmailFn == nil {
		panic("not implemented")
	}
	return s.getByEmailFn(ctx, email)
}

func (s stubUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.getByIDFn == nil {
		panic("not implemented")
	}
	return s.getByIDFn(ctx, id)
}

type recordingNotifier struct {
	calls []string
}

func (n *recordingNotifier) NotifyOrderCreated(username string, userID int64, order *model.Order) {
	n.calls = append(n.calls, username)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newOrderUseCaseForTest(orders stubOrderRepository, users stubUserRepository, notifier Notifier, limit int) *OrderUseCase {
	return NewOrderUseCase(orders, users, NewAdmissionPolicy(orders, limit), notifier, testLogger())
}

func TestOrderUseCaseSubmitRejectsInvalidAmount(t *testing.T) {
	orders := stubOrderRepository{
		countFn: func(context.Context, int64) (int, error) {
			t.Fatal("count should not run for invalid amount")
			return 0, nil
		},
	}
	uc := newOrderUseCaseForTest(orders, stubUserRepository{}, &recordingNotifier{}, 3)

	for _, amount := range []int64{0, -5} {
		if _, err := uc.Submit(context.Background(), 1, amount, ""); !errors.Is(err, domainErrors.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount for %d, got %v", amount, err)
		}
	}
}

func TestOrderUseCaseSubmitRejectsUnknownServiceType(t *testing.T) {
	uc := newOrderUseCaseForTest(stubOrderRepository{}, stubUserRepository{}, &recordingNotifier{}, 3)

	if _, err := uc.Submit(context.Background(), 1, 100, "followers"); !errors.Is(err, domainErrors.ErrInvalidServiceType) {
		t.Fatalf("expected ErrInvalidServiceType, got %v", err)
	}
}

func TestOrderUseCaseSubmitQuotaExceeded(t *testing.T) {
	orders := stubOrderRepository{
		countFn: func(context.Context, int64) (int, error) { return 3, nil },
		createFn: func(context.Context, int64, int64, model.ServiceType, int) (*model.Order, error) {
			t.Fatal("create should not run when quota is exhausted")
			return nil, nil
		},
	}
	uc := newOrderUseCaseForTest(orders, stubUserRepository{}, &recordingNotifier{}, 3)

	_, err := uc.Submit(context.Background(), 1, 100, "")
	if !errors.Is(err, domainErrors.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	var quotaErr *domainErrors.QuotaError
	if !errors.As(err, &quotaErr) {
		t.Fatalf("expected QuotaError, got %T", err)
	}
	if quotaErr.OpenCount != 3 || quotaErr.Limit != 3 {
		t.Fatalf("unexpected quota details: %+v", quotaErr)
	}
}

func TestOrderUseCaseSubmitPropagatesCountError(t *testing.T) {
	storeErr := errors.New("store unavailable")
	orders := stubOrderRepository{
		countFn: func(context.Context, int64) (int, error) { return 0, storeErr },
	}
	uc := newOrderUseCaseForTest(orders, stubUserRepository{}, &recordingNotifier{}, 3)

	if _, err := uc.Submit(context.Background(), 1, 100, ""); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestOrderUseCaseSubmitSuccessNotifies(t *testing.T) {
	created := &model.Order{ID: uuid.New(), UserID: 7, Amount: 500, ServiceType: model.ServiceViews, Status: model.OrderStatusPending}
	orders := stubOrderRepository{
		countFn: func(context.Context, int64) (int, error) { return 2, nil },
		createFn: func(ctx context.Context, userID int64, amount int64, serviceType model.ServiceType, limit int) (*model.Order, error) {
			if userID != 7 || amount != 500 || serviceType != model.ServiceViews || limit != 3 {
				t.Fatalf("unexpected arguments: %d %d %s %d", userID, amount, serviceType, limit)
			}
			return created, nil
		},
	}
	users := stubUserRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Username: "zaeem"}, nil
		},
	}
	notifier := &recordingNotifier{}
	uc := newOrderUseCaseForTest(orders, users, notifier, 3)

	order, err := uc.Submit(context.Background(), 7, 500, model.ServiceViews)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != created.ID {
		t.Fatalf("unexpected order id %s", order.ID)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if len(notifier.calls) != 1 || notifier.calls[0] != "zaeem" {
		t.Fatalf("expected one notification for zaeem, got %v", notifier.calls)
	}
}

func TestOrderUseCaseSubmitSucceedsWhenSubmitterLookupFails(t *testing.T) {
	orders := stubOrderRepository{
		countFn: func(context.Context, int64) (int, error) { return 0, nil },
		createFn: func(context.Context, int64, int64, model.ServiceType, int) (*model.Order, error) {
			return &model.Order{ID: uuid.New(), Status: model.OrderStatusPending}, nil
		},
	}
	users := stubUserRepository{
		getByIDFn: func(context.Context, int64) (*model.User, error) {
			return nil, errors.New("boom")
		},
	}
	notifier := &recordingNotifier{}
	uc := newOrderUseCaseForTest(orders, users, notifier, 3)

	if _, err := uc.Submit(context.Background(), 1, 100, ""); err != nil {
		t.Fatalf("expected success despite lookup failure, got %v", err)
	}
	if len(notifier.calls) != 0 {
		t.Fatalf("expected no notification, got %v", notifier.calls)
	}
}

func TestOrderUseCaseSubmitPropagatesCreateError(t *testing.T) {
	storeErr := errors.New("insert failed")
	orders := stubOrderRepository{
		countFn: func(context.Context, int64) (int, error) { return 0, nil },
		createFn: func(context.Context, int64, int64, model.ServiceType, int) (*model.Order, error) {
			return nil, storeErr
		},
	}
	uc := newOrderUseCaseForTest(orders, stubUserRepository{}, &recordingNotifier{}, 3)

	if _, err := uc.Submit(context.Background(), 1, 100, ""); !errors.Is(err, storeErr) {
		t.Fatalf("expected insert error to propagate, got %v", err)
	}
}
