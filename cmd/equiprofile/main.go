package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/equiprofile/equiprofile/internal/config"
	"github.com/equiprofile/equiprofile/internal/logger"
	"github.com/equiprofile/equiprofile/internal/migration"
	"github.com/equiprofile/equiprofile/internal/observability"
	"github.com/equiprofile/equiprofile/internal/realtime"
	"github.com/equiprofile/equiprofile/internal/server"
	"github.com/equiprofile/equiprofile/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		realtime.Module,

		// Domain modules ride along inside server.Module.
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
