package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishDeliversInOrder(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan Event, 10)
	b.Subscribe(EventToolChanged, func(e Event) { got <- e })

	b.Publish(ToolChangedEvent{Tool: "line"})
	b.Publish(ToolChangedEvent{Tool: "pen"})

	assert.Equal(t, ToolChangedEvent{Tool: "line"}, receive(t, got))
	assert.Equal(t, ToolChangedEvent{Tool: "pen"}, receive(t, got))
}

func TestSubscribeFiltersByType(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan Event, 10)
	b.Subscribe(EventError, func(e Event) { got <- e })

	b.Publish(ToolChangedEvent{Tool: "line"})
	b.Publish(ErrorEvent{Message: "boom"})

	e := receive(t, got)
	require.IsType(t, ErrorEvent{}, e)
	assert.Equal(t, "boom", e.(ErrorEvent).Message)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	removed := make(chan Event, 10)
	kept := make(chan Event, 10)
	unsubscribe := b.Subscribe(EventHistoryChanged, func(e Event) { removed <- e })
	b.Subscribe(EventHistoryChanged, func(e Event) { kept <- e })

	unsubscribe()
	b.Publish(HistoryChangedEvent{Undo: true})

	receive(t, kept)
	assert.Empty(t, removed)
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan Event, 10)
	b.Subscribe(EventColorChanged, func(e Event) { panic("handler failure") })
	b.Subscribe(EventColorChanged, func(e Event) { got <- e })

	b.Publish(ColorChangedEvent{})

	receive(t, got)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	b.Close()
	b.Close()

	assert.NotPanics(t, func() { b.Publish(ToolChangedEvent{Tool: "line"}) })
}

func TestCloseDeliversQueuedEvents(t *testing.T) {
	b := New()

	gate := make(chan struct{})
	var got []Event
	b.Subscribe(EventToolChanged, func(e Event) {
		<-gate
		got = append(got, e)
	})

	for _, name := range []string{"line", "shape", "pen", "path"} {
		b.Publish(ToolChangedEvent{Tool: name})
	}

	closed := make(chan struct{})
	go func() {
		b.Close()
		close(closed)
	}()
	<-b.(*bus).quit
	close(gate)

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}

	require.Len(t, got, 4)
	assert.Equal(t, ToolChangedEvent{Tool: "line"}, got[0])
	assert.Equal(t, ToolChangedEvent{Tool: "path"}, got[3])
}
