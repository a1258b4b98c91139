package realtime

import (
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testIDs(t *testing.T) (snowflake.ID, snowflake.ID) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return node.Generate(), node.Generate()
}

func collect(t *testing.T, sub *Subscription, n int) []Event {
	t.Helper()
	events := make([]Event, 0, n)
	for len(events) < n {
		select {
		case event := <-sub.Events():
			events = append(events, event)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d of %d", len(events)+1, n)
		}
	}
	return events
}

func TestPublishPreservesOrder(t *testing.T) {
	hub := NewHub(zap.NewNop())
	tenant, _ := testIDs(t)

	sub, err := hub.Subscribe(tenant, ModuleIncome)
	require.NoError(t, err)
	defer sub.Close()

	hub.Publish(tenant, ModuleIncome, Event{Action: ActionCreated, Payload: "first"})
	hub.Publish(tenant, ModuleIncome, Event{Action: ActionUpdated, Payload: "second"})
	hub.Publish(tenant, ModuleIncome, Event{Action: ActionDeleted, Payload: "third"})

	events := collect(t, sub, 3)
	assert.Equal(t, ActionCreated, events[0].Action)
	assert.Equal(t, ActionUpdated, events[1].Action)
	assert.Equal(t, ActionDeleted, events[2].Action)
	assert.Equal(t, ModuleIncome, events[0].Module)
}

func TestPublishScopedToTenantAndModule(t *testing.T) {
	hub := NewHub(zap.NewNop())
	tenantA, tenantB := testIDs(t)

	subA, err := hub.Subscribe(tenantA, ModuleExpenses)
	require.NoError(t, err)
	defer subA.Close()

	subB, err := hub.Subscribe(tenantB, ModuleExpenses)
	require.NoError(t, err)
	defer subB.Close()

	subOther, err := hub.Subscribe(tenantA, ModuleIncome)
	require.NoError(t, err)
	defer subOther.Close()

	hub.Publish(tenantA, ModuleExpenses, Event{Action: ActionCreated})

	events := collect(t, subA, 1)
	assert.Equal(t, ActionCreated, events[0].Action)

	select {
	case event := <-subB.Events():
		t.Fatalf("foreign tenant received event: %+v", event)
	case event := <-subOther.Events():
		t.Fatalf("foreign module received event: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribeFuncPanicIsolated(t *testing.T) {
	hub := NewHub(zap.NewNop())
	tenant, _ := testIDs(t)

	cancelPanic, err := hub.SubscribeFunc(tenant, ModuleHorses, func(Event) {
		panic("handler exploded")
	})
	require.NoError(t, err)
	defer cancelPanic()

	var mu sync.Mutex
	var seen []Event
	done := make(chan struct{}, 4)
	cancel, err := hub.SubscribeFunc(tenant, ModuleHorses, func(event Event) {
		mu.Lock()
		seen = append(seen, event)
		mu.Unlock()
		done <- struct{}{}
	})
	require.NoError(t, err)
	defer cancel()

	hub.Publish(tenant, ModuleHorses, Event{Action: ActionCreated})
	hub.Publish(tenant, ModuleHorses, Event{Action: ActionUpdated})

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for handler delivery")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	assert.Equal(t, ActionCreated, seen[0].Action)
	assert.Equal(t, ActionUpdated, seen[1].Action)
}

func TestCloseStopsDelivery(t *testing.T) {
	hub := NewHub(zap.NewNop())
	tenant, _ := testIDs(t)

	sub, err := hub.Subscribe(tenant, ModuleTraining)
	require.NoError(t, err)

	sub.Close()
	sub.Close() // second close is harmless

	hub.Publish(tenant, ModuleTraining, Event{Action: ActionCreated})

	_, open := <-sub.Events()
	assert.False(t, open)
}

func TestCloseDuringPublishDoesNotPanic(t *testing.T) {
	hub := NewHub(zap.NewNop())
	tenant, _ := testIDs(t)

	// Persistent subscriber keeps the stream registered while others churn.
	keeper, err := hub.Subscribe(tenant, ModuleIncome)
	require.NoError(t, err)
	defer keeper.Close()

	stop := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("publisher panicked: %v", r)
			}
		}()
		for {
			select {
			case <-stop:
				return
			default:
				hub.Publish(tenant, ModuleIncome, Event{Action: ActionCreated})
			}
		}
	}()

	go func() {
		for {
			select {
			case <-stop:
				return
			case <-keeper.Events():
			}
		}
	}()

	for i := 0; i < 500; i++ {
		sub, err := hub.Subscribe(tenant, ModuleIncome)
		require.NoError(t, err)
		sub.Close()
	}

	close(stop)
	wg.Wait()
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	hub := NewHub(zap.NewNop())
	tenant, _ := testIDs(t)

	// Must not panic or block.
	hub.Publish(tenant, ModuleHealth, Event{Action: ActionCreated})
}
