package repos

import (
	"github.com/meusistema/clientes/internal/data/repos/aluno"
	"github.com/meusistema/clientes/internal/data/repos/meta"
	"github.com/meusistema/clientes/internal/platform/logger"
	"gorm.io/gorm"
)

type AlunoRepo = aluno.AlunoRepo
type MetaRepo = meta.MetaRepo

func NewAlunoRepo(db *gorm.DB, baseLog *logger.Logger) AlunoRepo {
	return aluno.NewAlunoRepo(db, baseLog)
}

func NewMetaRepo(db *gorm.DB, baseLog *logger.Logger) MetaRepo {
	return meta.NewMetaRepo(db, baseLog)
}
