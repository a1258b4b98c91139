package realtime

import (
	"context"
	"encoding/json"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const bridgeChannel = "equiprofile.realtime"

// Publisher is the write side of the fan-out, implemented by Hub for a single
// instance and by Bridge when events must also reach other instances.
type Publisher interface {
	Publish(tenantID snowflake.ID, module string, event Event)
}

type bridgeMessage struct {
	Origin   string          `json:"origin"`
	TenantID int64           `json:"tenant_id"`
	Module   string          `json:"module"`
	Action   string          `json:"action"`
	Payload  json.RawMessage `json:"data"`
}

// Bridge relays hub events through redis pub/sub so clients connected to
// other instances of the service see the same stream. Delivery remains
// at-most-once: redis pub/sub does not replay.
type Bridge struct {
	hub    *Hub
	client *redis.Client
	origin string
	log    *zap.Logger
	cancel context.CancelFunc
}

func NewBridge(hub *Hub, client *redis.Client, log *zap.Logger) *Bridge {
	return &Bridge{
		hub:    hub,
		client: client,
		origin: uuid.NewString(),
		log:    log.Named("realtime.bridge"),
	}
}

func (b *Bridge) Publish(tenantID snowflake.ID, module string, event Event) {
	b.hub.Publish(tenantID, module, event)

	payload, err := json.Marshal(event.Payload)
	if err != nil {
		b.log.Warn("marshal bridge payload", zap.Error(err))
		return
	}
	msg, err := json.Marshal(bridgeMessage{
		Origin:   b.origin,
		TenantID: int64(tenantID),
		Module:   module,
		Action:   event.Action,
		Payload:  payload,
	})
	if err != nil {
		b.log.Warn("marshal bridge message", zap.Error(err))
		return
	}

	if err := b.client.Publish(context.Background(), bridgeChannel, msg).Err(); err != nil {
		b.log.Warn("publish bridge message", zap.Error(err))
	}
}

// Start subscribes to the bridge channel and republishes foreign-origin
// events into the local hub.
func (b *Bridge) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	sub := b.client.Subscribe(ctx, bridgeChannel)

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				b.relay(msg.Payload)
			}
		}
	}()
}

func (b *Bridge) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

func (b *Bridge) relay(raw string) {
	var msg bridgeMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		b.log.Warn("decode bridge message", zap.Error(err))
		return
	}
	if msg.Origin == b.origin {
		return
	}

	var payload interface{}
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			b.log.Warn("decode bridge payload", zap.Error(err))
			return
		}
	}

	b.hub.Publish(snowflake.ID(msg.TenantID), msg.Module, Event{
		Module:  msg.Module,
		Action:  msg.Action,
		Payload: payload,
	})
}
