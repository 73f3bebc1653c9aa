package mailer

import (
	"context"

	"campuscare-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// MailerWorker drains the mailer queue and delivers over SMTP. Delivery is
// throttled so a burst of bookings cannot trip the SMTP relay's limits.
type MailerWorker struct {
	service *mailerService
	channel *amqp091.Channel
	queue   string
	limiter *rate.Limiter
	log     *zap.Logger
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewMailerWorker(service MailerService, rabbitMQConnection *amqp091.Connection, queue string, ratePerSecond int, logger *zap.Logger) (*MailerWorker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}

	return &MailerWorker{
		service: service.(*mailerService),
		channel: channel,
		queue:   queue,
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond),
		log:     logger,
		done:    make(chan struct{}),
	}, nil
}

func (w *MailerWorker) Start() error {
	deliveries, err := w.channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handle(ctx, delivery)
			}
		}
	}()

	return nil
}

// Stop cancels the consume loop and waits for the in-flight message.
func (w *MailerWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
	w.channel.Close()
}

func (w *MailerWorker) handle(ctx context.Context, delivery amqp091.Delivery) {
	if err := w.limiter.Wait(ctx); err != nil {
		delivery.Nack(false, true)
		return
	}

	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.log.Error("mailerWorker.handle dropping malformed payload",
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	if err := w.service.deliver(&payload); err != nil {
		// Delivery is best-effort: log and drop rather than requeue forever.
		w.log.Error("mailerWorker.handle SMTP delivery failed",
			zap.String("to", payload.To),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	w.log.Info("mailerWorker.handle delivered email",
		zap.String("to", payload.To),
		zap.String("subject", payload.Subject),
	)
	delivery.Ack(false)
}
