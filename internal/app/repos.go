package app

import (
	"gorm.io/gorm"

	"github.com/meusistema/clientes/internal/data/repos"
	"github.com/meusistema/clientes/internal/platform/logger"
)

type Repos struct {
	Aluno repos.AlunoRepo
	Meta  repos.MetaRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Aluno: repos.NewAlunoRepo(db, log),
		Meta:  repos.NewMetaRepo(db, log),
	}
}
