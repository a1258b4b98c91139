package health

import (
	"github.com/equiprofile/equiprofile/internal/health/repository"
	"github.com/equiprofile/equiprofile/internal/health/service"
	"go.uber.org/fx"
)

var Module = fx.Module("health.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
