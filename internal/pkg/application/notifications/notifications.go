package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"log/slog"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"golang.org/x/sys/unix"
	yaml "gopkg.in/yaml.v2"
)

// Sender pushes alert lifecycle notifications to the subscriber endpoints
// configured for the event type, such as the resident portal or an SMS
// gateway bridge.
type Sender interface {
	Send(ctx context.Context, eventType string, data []byte) error
}

type sender struct {
	subscribers map[string][]SubscriberConfig
}

func New(cfg *Config) Sender {
	s := &sender{
		subscribers: make(map[string][]SubscriberConfig),
	}

	if cfg != nil {
		for _, n := range cfg.Notifications {
			s.subscribers[n.Type] = n.Subscribers
		}
	}

	return s
}

func (s *sender) Send(ctx context.Context, eventType string, data []byte) error {
	subscribers, ok := s.subscribers[eventType]
	if !ok || len(subscribers) == 0 {
		return nil
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	event := cloudevents.NewEvent()
	event.SetID(fmt.Sprintf("%s:%d", eventType, now.UnixNano()))
	event.SetTime(now)
	event.SetSource("github.com/pesu-pangasinan/outbreak-surveillance")
	event.SetType(eventType)

	err = event.SetData(cloudevents.ApplicationJSON, json.RawMessage(data))
	if err != nil {
		return err
	}

	logger := logging.GetFromContext(ctx)

	for _, sub := range subscribers {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, sub.Endpoint)

		result := c.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error("failed to send notification", "endpoint", sub.Endpoint, "err", result.Error())
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}

// NewTopicMessageHandler forwards alert events arriving on a topic to the
// configured subscribers.
func NewTopicMessageHandler(sender Sender) messaging.TopicMessageHandler {
	return func(ctx context.Context, msg messaging.IncomingTopicMessage, log *slog.Logger) {
		err := sender.Send(ctx, msg.TopicName(), msg.Body())
		if err != nil {
			log.Error("failed to forward notification", "topic", msg.TopicName(), "err", err.Error())
		}
	}
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Notification `yaml:"notifications"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err == nil {
		return &cfg, nil
	} else {
		return nil, err
	}
}
