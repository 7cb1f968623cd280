package layaway

import (
	"github.com/smallbiznis/aurum/internal/layaway/repository"
	"github.com/smallbiznis/aurum/internal/layaway/service"
	"go.uber.org/fx"
)

var Module = fx.Module("layaway.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
