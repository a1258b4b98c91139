package training

import (
	"github.com/equiprofile/equiprofile/internal/training/repository"
	"github.com/equiprofile/equiprofile/internal/training/service"
	"go.uber.org/fx"
)

var Module = fx.Module("training.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
