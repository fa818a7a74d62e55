package service

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocationService() *LocationService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewLocationService(NewMemorySessionStore(), log)
}

func TestLocationService_SaveAndLoad(t *testing.T) {
	svc := newLocationService()
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "s1", "São Paulo - SP"))

	label, err := svc.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "São Paulo - SP", label)

	// Sessions are isolated
	label, err = svc.Load(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, label)
}

func TestLocationService_ClearRemovesLabel(t *testing.T) {
	svc := newLocationService()
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "s1", "Curitiba - PR"))
	require.NoError(t, svc.Clear(ctx, "s1"))

	label, err := svc.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, label)
}

func TestLocationService_NotifiesSubscribersOnWrite(t *testing.T) {
	svc := newLocationService()
	ctx := context.Background()

	type event struct {
		sessionID string
		label     string
	}
	var events []event
	unsubscribe := svc.Subscribe(func(sessionID, label string) {
		events = append(events, event{sessionID, label})
	})

	require.NoError(t, svc.Save(ctx, "s1", "Recife - PE"))
	require.NoError(t, svc.Clear(ctx, "s1"))

	require.Len(t, events, 2)
	assert.Equal(t, event{"s1", "Recife - PE"}, events[0])
	assert.Equal(t, event{"s1", ""}, events[1])

	// After unsubscribing, writes stay silent
	unsubscribe()
	require.NoError(t, svc.Save(ctx, "s1", "Natal - RN"))
	assert.Len(t, events, 2)
}

func TestLocationService_SavingEmptyLabelClears(t *testing.T) {
	svc := newLocationService()
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "s1", "Salvador - BA"))

	var lastLabel string
	notified := false
	svc.Subscribe(func(_, label string) {
		notified = true
		lastLabel = label
	})

	require.NoError(t, svc.Save(ctx, "s1", ""))

	label, err := svc.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, label)
	assert.True(t, notified)
	assert.Empty(t, lastLabel)
}

func TestAuditSubscriber_LogsSavesAndClears(t *testing.T) {
	svc := newLocationService()
	ctx := context.Background()

	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	svc.Subscribe(AuditSubscriber(log))

	require.NoError(t, svc.Save(ctx, "s1", "Recife - PE"))
	assert.Contains(t, buf.String(), "Location changed: session=s1, label=Recife - PE")

	buf.Reset()
	require.NoError(t, svc.Clear(ctx, "s1"))
	assert.Contains(t, buf.String(), "Location cleared: session=s1")
}

func TestLocationService_MultipleSubscribers(t *testing.T) {
	svc := newLocationService()
	ctx := context.Background()

	calls := make([]int, 2)
	svc.Subscribe(func(_, _ string) { calls[0]++ })
	svc.Subscribe(func(_, _ string) { calls[1]++ })

	require.NoError(t, svc.Save(ctx, "s1", "Manaus - AM"))

	assert.Equal(t, []int{1, 1}, calls)
}
