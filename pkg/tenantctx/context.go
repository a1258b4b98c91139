package tenantctx

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type keyType string

const (
	TenantIDKey keyType = "tenant_id"
	ActorKey    keyType = "actor"
)

func WithTenantID(ctx context.Context, id snowflake.ID) context.Context {
	return context.WithValue(ctx, TenantIDKey, id)
}

func TenantID(ctx context.Context) (snowflake.ID, bool) {
	id, ok := ctx.Value(TenantIDKey).(snowflake.ID)
	return id, ok
}

// WithActor records the display name of the user driving the request,
// used for report metadata stamps.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}

func Actor(ctx context.Context) string {
	actor, _ := ctx.Value(ActorKey).(string)
	return actor
}
