package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/sk9212k/opaltech-aws/internal/config"
	"github.com/sk9212k/opaltech-aws/internal/core/domain"
	"github.com/sk9212k/opaltech-aws/internal/core/port"
)

func connect(cfg config.NATSConfig, name string, logger *slog.Logger) (*nats.Conn, jetstream.JetStream, error) {
	opts := []nats.Option{
		nats.Name(name),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}
	return conn, js, nil
}

// Publisher publishes upload events to a JetStream stream
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

// NewNATSPublisher connects and makes sure the stream exists
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {
	conn, js, err := connect(cfg, "upload-api", logger)
	if err != nil {
		return nil, err
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.Subject},
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create stream %s: %w", cfg.StreamName, err)
	}

	return &Publisher{
		logger: logger,
		conn:   conn,
		js:     js,
		config: cfg,
	}, nil
}

// PublishUploadStored publishes event on the configured subject and waits for the ack
func (p *Publisher) PublishUploadStored(ctx context.Context, event domain.UploadStoredEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal upload event: %w", err)
	}

	ack, err := p.js.Publish(ctx, p.config.Subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish upload event: %w", err)
	}

	p.logger.Debug("upload event published", "key", event.Key, "stream", ack.Stream, "seq", ack.Sequence)
	return nil
}

// Close drains the connection
func (p *Publisher) Close() error {
	if p.conn != nil {
		return p.conn.Drain()
	}
	return nil
}

// Consumer is a struct to interact with nats
type Consumer struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
	iter   jetstream.MessagesContext
	wg     sync.WaitGroup
}

// NewNATSConsumer creates a new consumer
func NewNATSConsumer(cfg config.NATSConfig, logger *slog.Logger) (*Consumer, error) {
	conn, js, err := connect(cfg, cfg.ConsumerName, logger)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger,
	}, nil
}

// Subscribe subscribes to stream and handles messages
func (n *Consumer) Subscribe(ctx context.Context, handler port.MessageService) error {
	consumerCfg := jetstream.ConsumerConfig{
		Durable:       n.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		FilterSubject: n.config.Subject,
		AckWait:       10 * time.Second,
		MaxDeliver:    5,
		BackOff:       []time.Duration{100 * time.Millisecond, 200 * time.Millisecond},
	}

	cons, err := n.js.CreateOrUpdateConsumer(ctx, n.config.StreamName, consumerCfg)
	if err != nil {
		return err
	}

	iter, err := cons.Messages()
	if err != nil {
		return err
	}
	n.iter = iter

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.logger.Info("NATS subscription started", "subject", n.config.Subject)
		for {
			select {
			case <-ctx.Done():
				n.logger.Info("NATS subscription stopped")
				return
			default:
				msg, err := iter.Next()
				if err != nil {
					if ctx.Err() != nil {
						n.logger.Warn("NATS subscription stopped")
						return
					}
					n.logger.Error("failed to receive message", "error", err)
					return
				}

				if handleErr := handler.HandleMessage(ctx, msg.Data()); handleErr != nil {
					if domain.IsPermanentEventError(handleErr) {
						if errTerm := msg.Term(); errTerm != nil {
							n.logger.Error("failed to terminate message", "error", errTerm)
						}
						n.logger.Warn("message dropped", "error", handleErr)
						continue
					}
					errNak := msg.Nak()
					if errNak != nil {
						n.logger.Error("failed to nak message", "error", errNak)
					}
					n.logger.Warn("failed to handle message", "error", handleErr)
					continue
				}
				ackErr := msg.Ack()
				if ackErr != nil {
					n.logger.Error("failed to ack message", "error", ackErr)
				}
			}
		}
	}()
	return nil
}

// Close graceful shutdown
func (n *Consumer) Close() error {
	if n.iter != nil {
		n.iter.Stop()
	}

	n.wg.Wait()

	if n.conn != nil {
		n.conn.Close()
	}
	return nil
}
