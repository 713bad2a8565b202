// Package service provides the answer history sinks
package service

import (
	"context"

	"wordpool/internal/platform/logger"
	"wordpool/internal/platform/store"
	"wordpool/internal/services/answerlog/domain"
)

// chTable is the columnar events table; column order matches Publish rows
const chTable = "answer_events"

// CHSink publishes committed answer events to ClickHouse. Errors are logged
// and swallowed; the request already committed
type CHSink struct {
	ch  store.Clickhouse
	log *logger.Logger
}

var _ domain.Sink = (*CHSink)(nil)

// NewCHSink wraps the clickhouse seam. ch must be non-nil; callers with no
// seam use NopSink instead
func NewCHSink(ch store.Clickhouse) *CHSink {
	if ch == nil {
		panic("answerlog.CHSink requires a non-nil clickhouse seam")
	}
	return &CHSink{ch: ch, log: logger.Named("answerlog")}
}

// Publish implements domain.Sink
func (s *CHSink) Publish(ctx context.Context, events []domain.Event) {
	if len(events) == 0 {
		return
	}
	rows := make([][]any, len(events))
	for i, e := range events {
		correct := uint8(0)
		if e.Correct {
			correct = 1
		}
		rows[i] = []any{
			e.UserID.String(),
			e.WordID.String(),
			string(e.Source),
			string(e.Exercise),
			e.Pool.String(),
			correct,
			int32(e.ResponseTimeMS),
			e.AnsweredAt,
		}
	}
	if err := s.ch.Insert(ctx, chTable, rows); err != nil {
		s.log.Warn().Err(err).Int("events", len(events)).Msg("answer event publish failed")
	}
}

// NopSink drops events; used when the clickhouse seam is disabled
type NopSink struct{}

var _ domain.Sink = NopSink{}

// Publish implements domain.Sink
func (NopSink) Publish(context.Context, []domain.Event) {}
