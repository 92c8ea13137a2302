package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	mu          sync.Mutex
	declared    []string
	declareErr  error
	publishErr  error
	publishings []published
	closed      bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, _, _, _, _ bool, _ amqp.Table) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.declared = append(f.declared, name+":"+kind)
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	f.publishings = append(f.publishings, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPNotifier_PublishesJSONOnTopicExchange(t *testing.T) {
	ch := &fakeChannel{}
	n, err := NewAMQPNotifier(ch, "cms.notifications")
	require.NoError(t, err)
	assert.Equal(t, []string{"cms.notifications:topic"}, ch.declared)

	note := domain.Notification{
		Type:       domain.NotificationApprovalPending,
		EntityType: domain.EntityTypeCheque,
		EntityID:   "chq-1",
		Title:      "Approval required",
		CreatedAt:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	n.Notify(context.Background(), note)

	require.Len(t, ch.publishings, 1)
	p := ch.publishings[0]
	assert.Equal(t, "cms.notifications", p.exchange)
	assert.Equal(t, "cms.approval_pending", p.key)
	assert.Equal(t, "application/json", p.msg.ContentType)

	var decoded domain.Notification
	require.NoError(t, json.Unmarshal(p.msg.Body, &decoded))
	assert.Equal(t, note, decoded)

	require.NoError(t, n.Close())
	assert.True(t, ch.closed)
}

func TestAMQPNotifier_PublishErrorIsSwallowed(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	n, err := NewAMQPNotifier(ch, "x")
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), domain.Notification{Type: domain.NotificationPdcDue})
	})
}

func TestNewAMQPNotifier_DeclareFailure(t *testing.T) {
	_, err := NewAMQPNotifier(&fakeChannel{declareErr: errors.New("access refused")}, "x")
	assert.ErrorContains(t, err, "access refused")
}

func TestLogNotifier(t *testing.T) {
	assert.NotPanics(t, func() {
		LogNotifier{}.Notify(context.Background(), domain.Notification{Type: domain.NotificationApprovalRejected})
	})
}
