package billing

import (
	"github.com/smallbiznis/aurum/internal/billing/repository"
	"github.com/smallbiznis/aurum/internal/billing/service"
	"github.com/smallbiznis/aurum/internal/providers/pdf"
	"go.uber.org/fx"
)

var Module = fx.Module("billing.service",
	pdf.Module,
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
