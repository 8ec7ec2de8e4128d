package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/config"
	"github.com/eduverse/eduverse/internal/lock"
	"github.com/eduverse/eduverse/internal/migration"
	"github.com/eduverse/eduverse/internal/observability"
	"github.com/eduverse/eduverse/internal/server"
	"github.com/eduverse/eduverse/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		lock.Module,
		migration.Module,

		// HTTP surface plus all domain modules it serves
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
