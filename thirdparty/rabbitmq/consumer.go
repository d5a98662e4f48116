package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/muhammadheryan/car-market/cmd/config"
	"github.com/muhammadheryan/car-market/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// PurgePath is the internal endpoint that deletes stored images.
const PurgePath = "/internal/v1/images/purge"

type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewConsumer(cfg *config.Config) (*Consumer, error) {
	conn, channel, err := dial(cfg.RabbitMQ)
	if err != nil {
		return nil, err
	}
	c := NewPurgeCaller(cfg.Internal.APIURL, cfg.Internal.APIKey, nil)
	c.conn, c.channel = conn, channel
	return c, nil
}

// NewPurgeCaller builds a consumer without a broker connection; Handle can
// still be used, which is what the tests do.
func NewPurgeCaller(apiURL, apiKey string, httpClient *http.Client) *Consumer {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Consumer{
		apiURL:     strings.TrimRight(apiURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		imagePurgeQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[ImagePurgeConsumer] delivery channel closed")
					return
				}
				requeue, err := c.Handle(ctx, msg.Body)
				if err != nil && requeue {
					logger.Error("[ImagePurgeConsumer] purge failed, requeue", zap.Error(err))
					_ = msg.Nack(false, true)
					continue
				}
				if err != nil {
					logger.Error("[ImagePurgeConsumer] dropping message", zap.Error(err))
				}
				_ = msg.Ack(false)
			}
		}
	}()

	return nil
}

// Handle processes one message body. requeue reports whether a failure is
// worth retrying; malformed messages never are.
func (c *Consumer) Handle(ctx context.Context, body []byte) (requeue bool, err error) {
	var msg ListingDeletedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return false, fmt.Errorf("unmarshal message: %w", err)
	}
	if len(msg.ImageKeys) == 0 {
		return false, nil
	}

	if err := c.callPurgeAPI(ctx, msg.ImageKeys); err != nil {
		return true, fmt.Errorf("listing %d: %w", msg.ListingID, err)
	}
	logger.Info("[ImagePurgeConsumer] images purged", zap.Uint64("listing_id", msg.ListingID), zap.Int("count", len(msg.ImageKeys)))
	return false, nil
}

func (c *Consumer) callPurgeAPI(ctx context.Context, keys []string) error {
	payload, err := json.Marshal(map[string][]string{"keys": keys})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+PurgePath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "image-purge-consumer")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
