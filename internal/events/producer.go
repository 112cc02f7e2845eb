package events

import (
	"context"
	"encoding/json"
	"sync"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultTopic  string = "voltcheck.events"
	defaultSource string = "voltcheck.api"
)

// Writer is the interface to be implemented by the underlying writer.
type Writer interface {
	Write(ctx context.Context, topic string, e cloudevents.Event) error
	Close(ctx context.Context) error
}

// EventProducer is a wrapper around a Writer with a buffer.
// Write never blocks on the writer: events are queued and sent in order by a single goroutine.
type EventProducer struct {
	buffer    *buffer
	notifyCh  chan struct{}
	doneCh    chan struct{}
	stoppedCh chan struct{}
	closeOnce sync.Once
	writer    Writer
	topic     string
}

type ProducerOptions func(e *EventProducer)

func WithOutputTopic(topic string) ProducerOptions {
	return func(e *EventProducer) {
		e.topic = topic
	}
}

func NewEventProducer(w Writer, opts ...ProducerOptions) *EventProducer {
	ep := &EventProducer{
		buffer:    newBuffer(),
		notifyCh:  make(chan struct{}, 1),
		doneCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
		writer:    w,
		topic:     defaultTopic,
	}

	for _, o := range opts {
		o(ep)
	}

	go ep.run()
	return ep
}

// Write queues v, encoded as JSON, as an event of the given kind.
func (ep *EventProducer) Write(_ context.Context, kind string, v any) error {
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}

	ep.buffer.PushBack(&message{Kind: kind, Data: d})

	select {
	case ep.notifyCh <- struct{}{}:
	default:
	}
	return nil
}

// Close sends the pending events and closes the writer.
func (ep *EventProducer) Close(ctx context.Context) error {
	ep.closeOnce.Do(func() { close(ep.doneCh) })

	select {
	case <-ep.stoppedCh:
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := ep.writer.Close(ctx); err != nil {
		zap.S().Named("event_producer").Errorw("event producer closed with error", "error", err)
		return err
	}

	zap.S().Named("event_producer").Info("event producer closed")
	return nil
}

func (ep *EventProducer) run() {
	defer close(ep.stoppedCh)

	for {
		ep.flush()

		select {
		case <-ep.notifyCh:
		case <-ep.doneCh:
			ep.flush()
			return
		}
	}
}

func (ep *EventProducer) flush() {
	for msg := ep.buffer.Pop(); msg != nil; msg = ep.buffer.Pop() {
		e, err := newEvent(msg)
		if err != nil {
			zap.S().Named("event_producer").Errorw("dropping malformed event", "error", err, "kind", msg.Kind)
			continue
		}

		if err := ep.writer.Write(context.TODO(), ep.topic, e); err != nil {
			zap.S().Named("event_producer").Errorw("failed to send event", "error", err, "event", e)
		}
	}
}

func newEvent(msg *message) (cloudevents.Event, error) {
	e := cloudevents.NewEvent()
	e.SetID(uuid.NewString())
	e.SetSource(defaultSource)
	e.SetType(msg.Kind)
	if err := e.SetData(*cloudevents.StringOfApplicationJSON(), msg.Data); err != nil {
		return e, err
	}
	return e, e.Validate()
}
