package ports

import "context"

// RMQConsumer drains the contact mutation queue and turns deliveries
// into follow-up work (see pkg/rmqconsumer).
type RMQConsumer interface {
	Connect(dsn string) error
	Init() error
	DeliveryWorker(ctx context.Context)
}
