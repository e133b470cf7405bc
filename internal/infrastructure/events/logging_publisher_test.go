package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toastlab/internal/logger"
	"github.com/alexisbeaulieu97/toastlab/internal/ports"
)

func newTestLogger(t *testing.T, buf *bytes.Buffer) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf, Component: "publisher"})
	require.NoError(t, err)
	return log
}

func TestLoggingPublisherIncludesSessionID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newTestLogger(t, buf))

	ctx := ports.WithSessionID(context.Background(), "abc-123")
	err := publisher.Publish(ctx, ports.NewEvent(ports.EventThemeSelected, map[string]interface{}{"theme": "shadcn"}))
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "domain event", entry["message"])
	require.Equal(t, ports.EventThemeSelected, entry["event_type"])
	require.Equal(t, "abc-123", entry["session_id"])
	require.Equal(t, "shadcn", entry["theme"])
	require.Equal(t, "publisher", entry["component"])
}

func TestLoggingPublisherInvokesSubscribers(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)

	var handled []string
	sub, err := publisher.Subscribe(ports.EventConfigChanged, func(ctx context.Context, event ports.DomainEvent) error {
		handled = append(handled, event.EventType())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), ports.NewEvent(ports.EventConfigChanged, nil)))
	require.NoError(t, publisher.Publish(context.Background(), ports.NewEvent(ports.EventThemeSelected, nil)))
	require.Equal(t, []string{ports.EventConfigChanged}, handled)

	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), ports.NewEvent(ports.EventConfigChanged, nil)))
	require.Len(t, handled, 1)
}

func TestLoggingPublisherLogsHandlerFailures(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newTestLogger(t, buf))

	calls := 0
	_, err := publisher.Subscribe(ports.EventExportGenerated, func(context.Context, ports.DomainEvent) error {
		calls++
		return errors.New("disk full")
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(ports.EventExportGenerated, func(context.Context, ports.DomainEvent) error {
		calls++
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), ports.NewEvent(ports.EventExportGenerated, nil)))
	require.Equal(t, 2, calls)
	require.True(t, strings.Contains(buf.String(), "event handler failed"))
	require.True(t, strings.Contains(buf.String(), "disk full"))
}

func TestNilPublisherIsSafe(t *testing.T) {
	t.Parallel()

	var publisher *LoggingPublisher
	require.NoError(t, publisher.Publish(context.Background(), ports.NewEvent("x", nil)))
	sub, err := publisher.Subscribe("x", func(context.Context, ports.DomainEvent) error { return nil })
	require.NoError(t, err)
	require.NotPanics(t, sub.Unsubscribe)
}
