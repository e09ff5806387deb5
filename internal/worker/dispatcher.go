package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/zaeempppp/telegram-booster/internal/adapter/telegram"
	"github.com/zaeempppp/telegram-booster/internal/domain/model"
)

// Notification carries the summary of a newly created order.
type Notification struct {
	Username    string
	UserID      int64
	Amount      int64
	ServiceType model.ServiceType
}

// Sender is the outbound delivery operation the dispatcher needs.
type Sender interface {
	SendMessage(ctx context.Context, text string) error
}

// NotifyDispatcher delivers order notifications asynchronously through a
// bounded queue drained by worker goroutines. Delivery is at-most-once:
// a full queue or a failed send drops the notification with a log line.
type NotifyDispatcher struct {
	sender  Sender
	timeout time.Duration
	workers int
	logger  *slog.Logger

	jobs   chan Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotifyDispatcher constructs the notification worker pool.
func NewNotifyDispatcher(sender Sender, timeout time.Duration, queueSize, workers int, logger *slog.Logger) *NotifyDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NotifyDispatcher{
		sender:  sender,
		timeout: timeout,
		workers: workers,
		logger:  logger,
		jobs:    make(chan Notification, queueSize),
	}
}

// Start launches background delivery.
func (d *NotifyDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (d *NotifyDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
		close(d.jobs)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// NotifyOrderCreated queues a notification for a freshly submitted order.
// It never blocks the caller; when the queue is full or the dispatcher is
// not running, the notification is dropped.
func (d *NotifyDispatcher) NotifyOrderCreated(username string, userID int64, order *model.Order) {
	n := Notification{
		Username:    username,
		UserID:      userID,
		Amount:      order.Amount,
		ServiceType: order.ServiceType,
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel == nil {
		d.logger.Warn("notify dispatcher not running, dropping notification", slog.Int64("user_id", userID))
		return
	}

	select {
	case d.jobs <- n:
	default:
		d.logger.Warn("notification queue full, dropping notification", slog.Int64("user_id", userID))
	}
}

func (d *NotifyDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.jobs:
			if !ok {
				return
			}
			d.send(n)
		}
	}
}

func (d *NotifyDispatcher) send(n Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.sender.SendMessage(ctx, FormatMessage(n)); err != nil {
		if errors.Is(err, telegram.ErrNotConfigured) {
			d.logger.Warn("notification skipped", slog.String("reason", err.Error()))
			return
		}
		d.logger.Error("notification delivery failed",
			slog.Int64("user_id", n.UserID),
			slog.String("error", err.Error()),
		)
	}
}

var serviceLabels = map[model.ServiceType]string{
	model.ServiceMembers:    "Channel members",
	model.ServiceEngagement: "Engagement",
	model.ServiceViews:      "Views",
	model.ServiceLikes:      "Likes",
}

// FormatMessage renders the operator-facing summary of a new order.
func FormatMessage(n Notification) string {
	label, ok := serviceLabels[n.ServiceType]
	if !ok {
		label = string(n.ServiceType)
	}
	return fmt.Sprintf(
		"✨ New boost order\n\nUser: %s\nService: %s\nAmount: %d\nUser ID: %d",
		n.Username, label, n.Amount, n.UserID,
	)
}
