package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// PayloadNotifyAuctionChanged contains all data of the task that we want to store in Redis.
type PayloadNotifyAuctionChanged struct {
	AuctionID uuid.UUID `json:"auction_id"`
}

func (distributor *RedisTaskDistributor) DistributeTaskNotifyAuctionChanged(
	ctx context.Context,
	payload *PayloadNotifyAuctionChanged,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskNotifyAuctionChanged, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskNotifyAuctionChanged(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadNotifyAuctionChanged
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	// Fan-out is best-effort at-most-once. The notifier absorbs its own
	// failures, so the task never retries.
	processor.notifier.NotifyAuctionChanged(ctx, payload.AuctionID)

	log.Info().Str("type", task.Type()).
		Str("auction_id", payload.AuctionID.String()).Msg("task processed")

	return nil
}
