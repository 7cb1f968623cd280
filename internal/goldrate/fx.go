package goldrate

import (
	"github.com/smallbiznis/aurum/internal/goldrate/repository"
	"github.com/smallbiznis/aurum/internal/goldrate/service"
	"go.uber.org/fx"
)

var Module = fx.Module("goldrate.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
