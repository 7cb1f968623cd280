package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/aurum/internal/clock"
	"github.com/smallbiznis/aurum/internal/config"
	"github.com/smallbiznis/aurum/internal/migration"
	obsmetrics "github.com/smallbiznis/aurum/internal/observability/metrics"
	"github.com/smallbiznis/aurum/internal/server"
	"github.com/smallbiznis/aurum/pkg/db"
	"github.com/smallbiznis/aurum/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		obsmetrics.Module,
		migration.Module,
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
