package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/config"
	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

var reconciliationPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "rewards_order_service",
	Subsystem: "kafka_producer",
	Name:      "reconciliation_events_total",
	Help:      "Total number of reconciliation events by publish result.",
}, []string{"result"})

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ReconciliationEvent сообщает о шаге, который не выполнился после оценки
// или сохранения заказа и требует ручной или фоновой сверки.
type ReconciliationEvent struct {
	Stage      string    `json:"stage"`
	UserID     int64     `json:"userId"`
	OrderID    int64     `json:"orderId,omitempty"`
	Error      string    `json:"error"`
	OccurredAt time.Time `json:"occurredAt"`
}

type reconciliationPublisher struct {
	logger *slog.Logger
	writer MessageWriter
	now    func() time.Time
}

func NewReconciliationPublisher(logger *slog.Logger, cfg config.Kafka) *reconciliationPublisher {
	return newReconciliationPublisher(logger, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.ReconciliationTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

func newReconciliationPublisher(logger *slog.Logger, writer MessageWriter) *reconciliationPublisher {
	return &reconciliationPublisher{
		logger: logger.With(slog.String("producer", "reconciliation")),
		writer: writer,
		now:    time.Now,
	}
}

// Report публикует предупреждение. Ключ сообщения это ID пользователя,
// поэтому события одного пользователя попадают в одну партицию.
func (p *reconciliationPublisher) Report(ctx context.Context, w entities.Warning) {
	event := ReconciliationEvent{
		Stage:      string(w.Stage),
		UserID:     w.UserID,
		OrderID:    w.OrderID,
		OccurredAt: p.now().UTC(),
	}
	if w.Err != nil {
		event.Error = w.Err.Error()
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal reconciliation event", slog.Any("error", err))
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(w.UserID, 10)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		reconciliationPublished.WithLabelValues("error").Inc()
		p.logger.Error("failed to publish reconciliation event",
			slog.String("stage", event.Stage),
			slog.Int64("order_id", event.OrderID),
			slog.Any("error", err),
		)
		return
	}
	reconciliationPublished.WithLabelValues("ok").Inc()
}

func (p *reconciliationPublisher) Close() error {
	return p.writer.Close()
}
