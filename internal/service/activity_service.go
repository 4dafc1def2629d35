package service

import (
	"context"
	"encoding/json"

	"shared-notes-be/internal/pkg/logger"
	"shared-notes-be/internal/repository/unitofwork"
	"shared-notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IActivityService interface {
	Consume(ctx context.Context) error
}

// activityService drains the activity topic and persists each event to
// the activity_logs table. Auxiliary by design: a failed append is
// logged and acked, never retried into the request path.
type activityService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewActivityService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IActivityService {
	return &activityService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *activityService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *activityService) processMessage(ctx context.Context, msg *message.Message) {
	var evt events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		s.log.Error("activity", "failed to unmarshal event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payloads would never succeed on retry
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ActivityLogRepository().Append(ctx, evt.Type, msg.Payload, evt.OccurredAt); err != nil {
		s.log.Error("activity", "failed to persist event", map[string]interface{}{
			"event_type": evt.Type,
			"error":      err.Error(),
		})
		msg.Ack()
		return
	}

	s.log.Info("activity", evt.Type, evt.Data)
	msg.Ack()
}
