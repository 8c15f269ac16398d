package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"habit-insights-service/internal/habits/core/domain"
	"habit-insights-service/internal/habits/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// CompletionMessage is the JSON payload of the habit.completed topic.
type CompletionMessage struct {
	CompletionID int64     `json:"completion_id"`
	UserID       string    `json:"user_id"`
	HabitID      int64     `json:"habit_id"`
	BeliefScore  int       `json:"belief_score"`
	CompletedAt  time.Time `json:"completed_at"`
}

type CompletionPublisher struct {
	w MessageWriter
}

var _ ports.CompletionPublisherPort = (*CompletionPublisher)(nil)

// NewCompletionPublisher builds a publisher writing to topic. Messages are
// keyed by user id so one user's completions stay ordered in a partition.
func NewCompletionPublisher(brokers []string, topic string) *CompletionPublisher {
	return NewCompletionPublisherWithWriter(&kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	})
}

func NewCompletionPublisherWithWriter(w MessageWriter) *CompletionPublisher {
	return &CompletionPublisher{w: w}
}

func (p *CompletionPublisher) PublishCompletion(ctx context.Context, c domain.Completion) error {
	b, err := json.Marshal(CompletionMessage{
		CompletionID: c.ID,
		UserID:       c.UserID,
		HabitID:      c.HabitID,
		BeliefScore:  c.BeliefScore,
		CompletedAt:  c.CompletedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode completion: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(c.UserID),
		Value: b,
		Time:  c.CompletedAt,
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write completion message: %w", err)
	}
	return nil
}

func (p *CompletionPublisher) Close() error {
	return p.w.Close()
}
