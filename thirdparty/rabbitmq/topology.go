package rabbitmq

import (
	"fmt"
	"time"

	"github.com/muhammadheryan/car-market/cmd/config"
	"github.com/rabbitmq/amqp091-go"
)

const (
	listingExchange   = "listing_events_exchange"
	imagePurgeQueue   = "image_purge_queue"
	listingDeletedKey = "listing.deleted"
)

// ListingDeletedMessage tells the purge worker which stored images became
// orphaned when a listing was removed.
type ListingDeletedMessage struct {
	ListingID uint64    `json:"listing_id"`
	ImageKeys []string  `json:"image_keys"`
	DeletedAt time.Time `json:"deleted_at"`
}

func dial(cfg config.RabbitMQConfig) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		listingExchange, // name
		"direct",        // type
		true,            // durable
		false,           // auto-delete
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		imagePurgeQueue, // name
		true,            // durable
		false,           // auto-delete
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		imagePurgeQueue,   // queue name
		listingDeletedKey, // routing key
		listingExchange,   // exchange
		false,             // no-wait
		nil,               // arguments
	)
}
