package domain

import (
	"github.com/meusistema/clientes/internal/pkg/optional"
)

const EntityMeta = "meta"

type Meta struct {
	ID    int64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Valor *float64 `gorm:"column:valor;type:decimal(21,2)" json:"valor"`
	Area  *string  `gorm:"column:area;type:varchar(120)" json:"area" validate:"omitempty,max=120"`
}

func (Meta) TableName() string { return "meta" }

var MetaSortColumns = map[string]string{
	"id":    "id",
	"valor": "valor",
	"area":  "area",
}

type MetaInput struct {
	ID    optional.Field[int64]   `json:"id"`
	Valor optional.Field[float64] `json:"valor"`
	Area  optional.Field[string]  `json:"area"`
}

func (in MetaInput) Entity() *Meta {
	m := &Meta{
		Valor: in.Valor.Ptr(),
		Area:  in.Area.Ptr(),
	}
	m.ID, _ = in.ID.Get()
	return m
}

// ApplyTo merges the present attributes onto m, leaving the rest untouched.
func (in MetaInput) ApplyTo(m *Meta) {
	if in.Valor.Present() {
		m.Valor = in.Valor.Ptr()
	}
	if in.Area.Present() {
		m.Area = in.Area.Ptr()
	}
}

func ValidateMetaInput(in MetaInput) (*Meta, error) {
	m := in.Entity()
	if err := checkStruct(EntityMeta, m, nil); err != nil {
		return nil, err
	}
	return m, nil
}

func ValidateMetaPatch(in MetaInput) error {
	return checkStruct(EntityMeta, in.Entity(), map[string]bool{
		"Valor": in.Valor.Present(),
		"Area":  in.Area.Present(),
	})
}
