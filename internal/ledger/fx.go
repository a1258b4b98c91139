package ledger

import (
	"github.com/equiprofile/equiprofile/internal/ledger/repository"
	"github.com/equiprofile/equiprofile/internal/ledger/service"
	"go.uber.org/fx"
)

var Module = fx.Module("ledger.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
