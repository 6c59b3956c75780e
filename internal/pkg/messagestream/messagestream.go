package messagestream

import (
	"fmt"
	"time"

	"parking-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	DriverGoChannel = "gochannel"
	DriverAMQP      = "amqp"
)

const (
	TopicLedgerEvents   = "parking_ledger_events"
	TopicLedgerPoisoned = "parking_ledger_poisoned"
	HandlerLedgerAudit  = "ledger_audit_handler"
)

// Stream hands out publishers and subscribers for the configured transport.
type Stream interface {
	NewPublisher() (message.Publisher, error)
	NewSubscriber() (message.Subscriber, error)
}

type ampq struct {
	cfg    amqp.Config
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig) Stream {
	return &ampq{
		cfg:    amqp.NewDurableQueueConfig(cfg.URL),
		logger: watermill.NewStdLogger(false, false),
	}
}

func (a *ampq) NewPublisher() (message.Publisher, error) {
	return amqp.NewPublisher(a.cfg, a.logger)
}

func (a *ampq) NewSubscriber() (message.Subscriber, error) {
	return amqp.NewSubscriber(a.cfg, a.logger)
}

// goChannel keeps messages in process; publisher and subscriber are the same pubsub.
type goChannel struct {
	pubSub *gochannel.GoChannel
}

func NewGoChannel() Stream {
	return &goChannel{
		pubSub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermill.NewStdLogger(false, false)),
	}
}

func (g *goChannel) NewPublisher() (message.Publisher, error) {
	return g.pubSub, nil
}

func (g *goChannel) NewSubscriber() (message.Subscriber, error) {
	return g.pubSub, nil
}

func New(cfg *config.MessageStreamConfig) (Stream, error) {
	switch cfg.Driver {
	case DriverGoChannel:
		return NewGoChannel(), nil
	case DriverAMQP:
		return NewAmpq(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported message stream driver %q", cfg.Driver)
	}
}

func NewRouter(pub message.Publisher, poisonTopic string, handlerName string, subscribeTopic string, subs message.Subscriber, handlerFunc func(msg *message.Message) error) (*message.Router, error) {
	logger := watermill.NewStdLogger(false, false)
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(pub, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.Recoverer,
		poisonQueue,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: 100 * time.Millisecond,
			Logger:          logger,
		}.Middleware,
	)

	router.AddNoPublisherHandler(handlerName, subscribeTopic, subs, handlerFunc)

	return router, nil
}
