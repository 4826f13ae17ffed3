package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID   Field[int64]  `json:"id"`
	Area Field[string] `json:"area"`
	Note Field[string] `json:"note"`
}

func TestFieldPresence(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "area": null}`), &p))

	id, ok := p.ID.Get()
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)

	assert.True(t, p.Area.Set())
	assert.True(t, p.Area.IsNull())
	assert.False(t, p.Area.Present())
	assert.Nil(t, p.Area.Ptr())

	assert.False(t, p.Note.Set())
	assert.False(t, p.Note.IsNull())
	assert.False(t, p.Note.Present())
}

func TestFieldRejectsWrongType(t *testing.T) {
	var p payload
	assert.Error(t, json.Unmarshal([]byte(`{"id": "abc"}`), &p))
}

func TestFieldConstructors(t *testing.T) {
	assert.True(t, Of("x").Present())
	assert.True(t, Null[string]().IsNull())
	assert.True(t, FromPtr[string](nil).IsNull())
	assert.Equal(t, "y", *FromPtr(Ptr("y")).Ptr())

	raw, err := json.Marshal(payload{ID: Of(int64(9))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 9, "area": null, "note": null}`, string(raw))
}
