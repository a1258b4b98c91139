package horse

import (
	"github.com/equiprofile/equiprofile/internal/horse/repository"
	"github.com/equiprofile/equiprofile/internal/horse/service"
	"go.uber.org/fx"
)

var Module = fx.Module("horse.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
