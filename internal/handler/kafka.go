package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/config"
	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req entities.OrderRequest) (entities.Placement, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	placer   OrderPlacer
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, placer OrderPlacer) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.OrdersTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return newKafkaHandler(logger, reader, dlq, placer)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, placer OrderPlacer) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		placer:   placer,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		// Повторы вызовов движка наград и чтения из базы уже есть внутри размещения
		if err := h.handlePlaceOrder(ctx, m); err != nil {
			h.logger.Error("failed to handle message",
				slog.Int64("offset", m.Offset),
				slog.Int("partition", m.Partition),
				slog.Any("error", err),
			)

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m, err); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handlePlaceOrder(ctx context.Context, m kafka.Message) error {
	submissionsInProgress.Inc()
	defer submissionsInProgress.Dec()

	start := time.Now()
	defer func() {
		submissionProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	var body CartRequest
	if err := json.Unmarshal(m.Value, &body); err != nil {
		submissionsFailed.WithLabelValues("decode").Inc()
		return fmt.Errorf("failed to unmarshal order request: %w", err)
	}

	if err := h.validate.Struct(body); err != nil {
		submissionsFailed.WithLabelValues("validation").Inc()
		return fmt.Errorf("invalid order request: %w", err)
	}

	placement, err := h.placer.PlaceOrder(ctx, body.ToOrderRequest())
	if err != nil {
		submissionsFailed.WithLabelValues(failureReason(err)).Inc()
		return err
	}

	submissionsProcessed.Inc()
	h.logger.Debug("order submission placed",
		slog.Int64("order_id", placement.Order.ID),
		slog.Int("warnings", len(placement.Warnings)),
	)
	return nil
}

// WriteToDLQ отправляет исходное сообщение в топик <topic>-dlq с причиной в заголовке.
func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message, cause error) error {
	dead := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: append(m.Headers, kafka.Header{Key: "error", Value: []byte(cause.Error())}),
	}
	if err := h.dlq.WriteMessages(ctx, dead); err != nil {
		return err
	}
	submissionsDLQ.Inc()
	return nil
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return "validation"
	case errors.Is(err, entities.ErrNotFound):
		return "not_found"
	case errors.Is(err, entities.ErrUpstream):
		return "upstream"
	default:
		return "persistence"
	}
}
