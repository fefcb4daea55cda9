package queue_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/alertas-pedidos/internal/entity"
	"github.com/xavierca1/alertas-pedidos/internal/infra/queue"
)

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, msg)
	return args.Error(0)
}

// MockRunner
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Execute(ctx context.Context) (*entity.RunReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RunReport), args.Error(1)
}

// fakeAck registra o que o worker fez com a entrega
type fakeAck struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (a *fakeAck) Ack(tag uint64, multiple bool) error {
	a.acked = true
	return nil
}

func (a *fakeAck) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked, a.requeue = true, requeue
	return nil
}

func (a *fakeAck) Reject(tag uint64, requeue bool) error {
	a.nacked, a.requeue = true, requeue
	return nil
}

func TestPublishRunReportUsesReportRoute(t *testing.T) {
	ctx := context.Background()
	pub := new(MockPublisher)
	pub.On("PublishWithContext", ctx, queue.ExchangeName, queue.ReportKey, mock.MatchedBy(func(msg amqp.Publishing) bool {
		var r entity.RunReport
		if err := json.Unmarshal(msg.Body, &r); err != nil {
			return false
		}
		return r.RunID == "run-1" && msg.DeliveryMode == amqp.Persistent && msg.ContentType == "application/json"
	})).Return(nil)

	err := queue.NewProducer(pub).PublishRunReport(ctx, entity.RunReport{RunID: "run-1", Success: true})

	assert.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestPublishWrapsBrokerError(t *testing.T) {
	ctx := context.Background()
	pub := new(MockPublisher)
	pub.On("PublishWithContext", ctx, queue.ExchangeName, queue.TriggerKey, mock.Anything).Return(errors.New("channel closed"))

	err := queue.NewProducer(pub).PublishTrigger(ctx, queue.TriggerPayload{Origin: "CRON"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

func TestHandleDeliveryRunsAndAcks(t *testing.T) {
	runner := new(MockRunner)
	runner.On("Execute", mock.Anything).Return(&entity.RunReport{RunID: "r", Success: true}, nil)
	ack := &fakeAck{}

	w := queue.NewWorker(nil, runner, 0)
	w.HandleDelivery(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte(`{"origin":"CRON"}`)})

	runner.AssertNumberOfCalls(t, "Execute", 1)
	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
}

func TestHandleDeliveryAcksEvenWhenRunFails(t *testing.T) {
	runner := new(MockRunner)
	runner.On("Execute", mock.Anything).Return(&entity.RunReport{RunID: "r"}, errors.New("mongo fora do ar"))
	ack := &fakeAck{}

	w := queue.NewWorker(nil, runner, 0)
	w.HandleDelivery(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte(`{}`)})

	assert.True(t, ack.acked)
}

func TestHandleDeliveryRejectsInvalidJSON(t *testing.T) {
	runner := new(MockRunner)
	ack := &fakeAck{}

	w := queue.NewWorker(nil, runner, 0)
	w.HandleDelivery(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte(`{nope`)})

	runner.AssertNotCalled(t, "Execute", mock.Anything)
	assert.True(t, ack.nacked)
	assert.False(t, ack.requeue)
}
