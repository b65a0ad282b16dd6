package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/praneeth8555/dairyadmin/internal/clock"
	"github.com/praneeth8555/dairyadmin/internal/config"
	"github.com/praneeth8555/dairyadmin/internal/migration"
	"github.com/praneeth8555/dairyadmin/internal/observability"
	"github.com/praneeth8555/dairyadmin/internal/server"
	"github.com/praneeth8555/dairyadmin/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
