package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"
)

// WarningSink получает некритичные сбои, которые не прерывают размещение заказа.
type WarningSink interface {
	Report(ctx context.Context, w entities.Warning)
}

// Срок на один отчёт, медленный приёмник не задерживает следующие шаги
var reportTimeout = 2 * time.Second

// report передаёт предупреждение в sink с отдельным сроком, не зависящим
// от отмены ctx.
func report(ctx context.Context, sink WarningSink, w entities.Warning) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reportTimeout)
	defer cancel()
	sink.Report(ctx, w)
}

type logSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *logSink {
	return &logSink{logger: logger.With(slog.String("service", "warnings"))}
}

func (s *logSink) Report(ctx context.Context, w entities.Warning) {
	warningsTotal.WithLabelValues(string(w.Stage)).Inc()
	s.logger.WarnContext(ctx, "best-effort step failed",
		slog.String("stage", string(w.Stage)),
		slog.Int64("user_id", w.UserID),
		slog.Int64("order_id", w.OrderID),
		slog.Any("error", w.Err),
	)
}

// MultiSink рассылает предупреждение во все приёмники по порядку.
type MultiSink []WarningSink

func (m MultiSink) Report(ctx context.Context, w entities.Warning) {
	for _, sink := range m {
		sink.Report(ctx, w)
	}
}
