package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

const (
	TaskNotifyAuctionChanged = "auction:notify_changed"
)

/*
This file will contain the codes to create tasks and distribute them to the Redis queue.
*/

type TaskDistributor interface {
	DistributeTaskNotifyAuctionChanged(ctx context.Context, payload *PayloadNotifyAuctionChanged, opts ...asynq.Option) error
}

type RedisTaskDistributor struct {
	client *asynq.Client // client sends tasks to redis queue.
}

func NewTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)

	return &RedisTaskDistributor{
		client: client,
	}
}
