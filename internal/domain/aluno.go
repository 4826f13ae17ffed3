package domain

import (
	"github.com/meusistema/clientes/internal/pkg/optional"
)

const EntityAluno = "aluno"

type Aluno struct {
	ID        int64   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Nome      string  `gorm:"column:nome;type:varchar(120);not null" json:"nome" validate:"required,max=120"`
	Email     *string `gorm:"column:email;type:varchar(254)" json:"email" validate:"omitempty,max=254,email"`
	Matricula *string `gorm:"column:matricula;type:varchar(40);index" json:"matricula" validate:"omitempty,max=40"`
}

func (Aluno) TableName() string { return "aluno" }

// AlunoSortColumns maps the sortable JSON attributes to their columns.
var AlunoSortColumns = map[string]string{
	"id":        "id",
	"nome":      "nome",
	"email":     "email",
	"matricula": "matricula",
}

// AlunoInput is the request body of create, update and partial update.
type AlunoInput struct {
	ID        optional.Field[int64]  `json:"id"`
	Nome      optional.Field[string] `json:"nome"`
	Email     optional.Field[string] `json:"email"`
	Matricula optional.Field[string] `json:"matricula"`
}

// Entity converts the input into an Aluno. Absent and null attributes stay empty.
func (in AlunoInput) Entity() *Aluno {
	a := &Aluno{
		Email:     in.Email.Ptr(),
		Matricula: in.Matricula.Ptr(),
	}
	a.ID, _ = in.ID.Get()
	a.Nome, _ = in.Nome.Get()
	return a
}

// ApplyTo copies every present, non-null attribute onto a. The id is never copied.
func (in AlunoInput) ApplyTo(a *Aluno) {
	if v, ok := in.Nome.Get(); ok {
		a.Nome = v
	}
	if in.Email.Present() {
		a.Email = in.Email.Ptr()
	}
	if in.Matricula.Present() {
		a.Matricula = in.Matricula.Ptr()
	}
}

func (in AlunoInput) present() map[string]bool {
	return map[string]bool{
		"Nome":      in.Nome.Present(),
		"Email":     in.Email.Present(),
		"Matricula": in.Matricula.Present(),
	}
}

// ValidateAlunoInput checks a create or full update body and returns the candidate entity.
// Failures are *apierr.Error values with code "validation".
func ValidateAlunoInput(in AlunoInput) (*Aluno, error) {
	a := in.Entity()
	if err := checkStruct(EntityAluno, a, nil); err != nil {
		return nil, err
	}
	return a, nil
}

// ValidateAlunoPatch checks only the attributes a partial update carries.
func ValidateAlunoPatch(in AlunoInput) error {
	return checkStruct(EntityAluno, in.Entity(), in.present())
}
