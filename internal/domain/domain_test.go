package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meusistema/clientes/internal/pkg/optional"
	"github.com/meusistema/clientes/internal/platform/apierr"
)

func decodeAluno(t *testing.T, body string) AlunoInput {
	t.Helper()
	var in AlunoInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestValidateAlunoInput(t *testing.T) {
	a, err := ValidateAlunoInput(decodeAluno(t, `{"nome":"Ana","email":"ana@example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(0), a.ID)
	assert.Equal(t, "Ana", a.Nome)
	assert.Equal(t, "ana@example.com", *a.Email)
	assert.Nil(t, a.Matricula)

	_, err = ValidateAlunoInput(decodeAluno(t, `{"email":"nope","matricula":"`+strings.Repeat("x", 41)+`"}`))
	require.Error(t, err)
	var apiErr *apierr.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "validation", apiErr.Code)
	assert.Equal(t, EntityAluno, apiErr.Entity)

	fields := map[string]string{}
	for _, fe := range apiErr.Fields {
		fields[fe.Field] = fe.Rule
	}
	assert.Equal(t, map[string]string{"nome": "required", "email": "email", "matricula": "max"}, fields)
}

func TestValidateAlunoPatchOnlyChecksPresentFields(t *testing.T) {
	// nome is required on create but a patch without it is fine.
	require.NoError(t, ValidateAlunoPatch(decodeAluno(t, `{"id":1,"matricula":"M-1"}`)))
	require.NoError(t, ValidateAlunoPatch(decodeAluno(t, `{"id":1,"nome":null}`)))

	err := ValidateAlunoPatch(decodeAluno(t, `{"id":1,"email":"bad"}`))
	var apiErr *apierr.Error
	require.True(t, errors.As(err, &apiErr))
	require.Len(t, apiErr.Fields, 1)
	assert.Equal(t, "email", apiErr.Fields[0].Field)
}

func TestAlunoApplyToKeepsAbsentAndNullFields(t *testing.T) {
	stored := &Aluno{ID: 4, Nome: "Ana", Email: optional.Ptr("ana@example.com"), Matricula: optional.Ptr("M-1")}
	decodeAluno(t, `{"id":99,"email":null,"matricula":"M-2"}`).ApplyTo(stored)

	assert.Equal(t, int64(4), stored.ID)
	assert.Equal(t, "Ana", stored.Nome)
	assert.Equal(t, "ana@example.com", *stored.Email)
	assert.Equal(t, "M-2", *stored.Matricula)
}

func TestMetaMerge(t *testing.T) {
	var in MetaInput
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"area":"ops"}`), &in))
	require.NoError(t, ValidateMetaPatch(in))

	stored := &Meta{ID: 1, Valor: optional.Ptr(10.0), Area: optional.Ptr("sales")}
	in.ApplyTo(stored)
	assert.Equal(t, 10.0, *stored.Valor)
	assert.Equal(t, "ops", *stored.Area)
}

func TestValidateMetaInput(t *testing.T) {
	m, err := ValidateMetaInput(MetaInput{Valor: optional.Of(2.5)})
	require.NoError(t, err)
	assert.Equal(t, 2.5, *m.Valor)
	assert.Nil(t, m.Area)

	_, err = ValidateMetaInput(MetaInput{Area: optional.Of(strings.Repeat("a", 121))})
	var apiErr *apierr.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "area", apiErr.Fields[0].Field)
	assert.Equal(t, "size must be at most 120", apiErr.Fields[0].Message)
}
