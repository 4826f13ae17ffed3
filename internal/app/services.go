package app

import (
	"gorm.io/gorm"

	"github.com/meusistema/clientes/internal/observability"
	"github.com/meusistema/clientes/internal/platform/logger"
	"github.com/meusistema/clientes/internal/services"
)

type Services struct {
	Aluno services.AlunoService
	Meta  services.MetaService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	return Services{
		Aluno: services.NewAlunoService(db, log, reposet.Aluno, clients.EntityBus, metrics),
		Meta:  services.NewMetaService(db, log, reposet.Meta, clients.EntityBus, metrics),
	}
}
