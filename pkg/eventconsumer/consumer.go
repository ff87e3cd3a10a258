// Package eventconsumer drains the file-lifecycle queue and forwards each
// event to the service owner as a Telegram message.
package eventconsumer

import (
	"context"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"file-vault-api/config"
	"file-vault-api/internal/infrastructure/mq"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

// Notifier is the one relay capability the consumer needs.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	notifier   Notifier
	ownerID    int64
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
}

func New(cfg config.MQ, logger *zap.Logger, notifier Notifier, ownerID int64) *Consumer {
	return &Consumer{
		cfg:      cfg,
		log:      logger,
		notifier: notifier,
		ownerID:  ownerID,
	}
}

func (c *Consumer) Connect(dsn string) error {
	var err error
	c.conn, err = amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	c.chConsume, err = c.conn.Channel()
	if err != nil {
		_ = c.conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	c.log.Info("rabbitmq consumer connected successfully")

	return err
}

func (c *Consumer) Init() error {
	var err error
	if err = c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err = c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, rk := range mq.Actions {
		if err = c.chConsume.QueueBind(
			c.cfg.QueueName,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err = c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	var cerr error
	c.chDelivery, cerr = c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if cerr != nil {
		return fmt.Errorf("consume: %w", cerr)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg := <-c.chDelivery:
			if err := c.delivery(ctx, msg); err != nil {
				// alert
				c.log.Error("mq read message error", zap.Error(err))
			}
		case <-ctx.Done():
			c.chConsume.Close()
			return
		}
	}
}

func (c *Consumer) delivery(ctx context.Context, msg amqp091.Delivery) error {
	if c.ownerID == 0 {
		return nil
	}

	text := fmt.Sprintf("%s %s\n<code>%s</code>",
		actionEmoji(msg.RoutingKey),
		actionLabel(msg.RoutingKey),
		string(msg.Body),
	)

	return c.notifier.Notify(ctx, c.ownerID, text)
}

func actionLabel(routingKey string) string {
	switch routingKey {
	case mq.ActionFileUploaded:
		return "FileUploaded"
	case mq.ActionFileRenamed:
		return "FileRenamed"
	case mq.ActionFileDeleted:
		return "FileDeleted"
	case mq.ActionFolderCreated:
		return "FolderCreated"
	case mq.ActionFolderDeleted:
		return "FolderDeleted"
	}
	return routingKey
}

func actionEmoji(routingKey string) string {
	switch routingKey {
	case mq.ActionFileUploaded:
		return "\U0001F4E4"
	case mq.ActionFileDeleted, mq.ActionFolderDeleted:
		return "\U0001F5D1"
	default:
		return "\U0001F4C1"
	}
}
