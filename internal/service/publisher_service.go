package service

import (
	"context"
	"encoding/json"

	"knowex-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
	PublishJob(ctx context.Context, job dto.JobMessage) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (c *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return c.publisher.Publish(c.topicName, msg)
}

func (c *publisherService) PublishJob(ctx context.Context, job dto.JobMessage) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return c.Publish(ctx, payload)
}
