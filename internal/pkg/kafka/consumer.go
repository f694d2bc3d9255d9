package kafka

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"dashboard/internal/pkg/config"
	"dashboard/pkg/logger"
	retrierconfig "dashboard/pkg/retrier"
	"dashboard/pkg/retrier/backoff_adapter"

	"github.com/IBM/sarama"
)

var ErrTopicNotFound = errors.New("topic not found")

// Consumer runs one consumer group over the configured topics and re-joins
// after every rebalance until the context is cancelled.
type Consumer struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version
	cfg.ClientID = "dashboard-checkout-worker"

	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{rebalanceStrategy}
	cfg.Consumer.Return.Errors = true

	return cfg, nil
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(raw string) []string {
	brokers := make([]string, 0, strings.Count(raw, ",")+1)
	for broker := range strings.SplitSeq(raw, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

// NewConsumer joins cfg.ConsumerGroup on cfg.Topic once the brokers are
// reachable and the topic exists. Checkout events are read from the oldest
// uncommitted offset so a new group ingests the backlog.
func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}

	brokers := ParseBrokers(cfg.Brokers)
	topics := []string{cfg.Topic}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topic", cfg.Topic),
	)

	err = waitForTopic(ctx, kafkaLog, brokers, cfg.Topic, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	group, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return newConsumer(kafkaLog, group, topics, handler), nil
}

func newConsumer(log logger.Logger, group sarama.ConsumerGroup, topics []string, handler sarama.ConsumerGroupHandler) *Consumer {
	return &Consumer{
		log:     log,
		group:   group,
		topics:  topics,
		handler: handler,
	}
}

// Start blocks consuming until ctx is cancelled or the group fails.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("Kafka consumer starting")

	go c.logGroupErrors()

	for {
		err := c.group.Consume(ctx, c.topics, c.handler)
		if err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return err
			}
			c.log.Error("consumer group failed", logger.NewField("error", err))
			return fmt.Errorf("consume: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Info("context cancelled, stopping consumer")
			return ctx.Err()
		}
		c.log.Info("consumer group rebalanced, rejoining")
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

// logGroupErrors drains the group error channel; it closes with the group.
func (c *Consumer) logGroupErrors() {
	for err := range c.group.Errors() {
		c.log.Warn("consumer group error", logger.NewField("error", err))
	}
}

func waitForTopic(ctx context.Context, log logger.Logger, brokers []string, topic string, cfg *sarama.Config) error {
	retryConfig := retrierconfig.ConnectConfig()
	retryConfig.Notify = func(err error, next time.Duration) {
		log.Warn("kafka is not ready",
			logger.NewField("error", err),
			logger.NewField("retry_in", next.String()),
		)
	}

	var attempt uint64
	err := backoff_adapter.New(retryConfig).ExecuteWithContext(ctx, func(context.Context) error {
		attempt++

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			err := client.Close()
			if err != nil {
				log.Warn("failed to close kafka probe client", logger.NewField("error", err))
			}
		}()

		topics, err := client.Topics()
		if err != nil {
			return err
		}
		if !slices.Contains(topics, topic) {
			return fmt.Errorf("%w: %s", ErrTopicNotFound, topic)
		}
		return nil
	})
	if err != nil {
		log.Error("kafka connection failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to connect to kafka: %w", err)
	}

	log.Info("kafka connection established",
		logger.NewField("attempts", attempt),
	)
	return nil
}
