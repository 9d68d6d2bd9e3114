package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop, when set, is called during Shutdown to stop background
	// workers before connections are torn down.
	WorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		logrus.Println("Successfully stopped background workers")
	}

	if err := b.RabbitMQ.Close(); err != nil {
		return err
	}
	logrus.Println("Successfully closed RabbitMQ")

	if err := b.Redis.Close(); err != nil {
		return err
	}
	logrus.Println("Successfully closed Redis")

	if err := b.MongoDB.Disconnect(ctx); err != nil {
		return err
	}
	logrus.Println("Successfully closed MongoDB")

	_ = b.Logger.Sync()
	return nil
}
