package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkTypesScan(t *testing.T) {
	var w WorkTypes
	require.NoError(t, w.Scan(`["Oil Change","Alignment"]`))
	assert.Equal(t, WorkTypes{"Oil Change", "Alignment"}, w)

	require.NoError(t, w.Scan([]byte(`["Brake Service"]`)))
	assert.Equal(t, WorkTypes{"Brake Service"}, w)

	// legacy bare-string rows come back as a single-element list
	require.NoError(t, w.Scan("Oil Change"))
	assert.Equal(t, WorkTypes{"Oil Change"}, w)

	require.NoError(t, w.Scan(""))
	assert.Equal(t, WorkTypes{}, w)

	require.NoError(t, w.Scan(nil))
	assert.Equal(t, WorkTypes{}, w)

	assert.Error(t, w.Scan(42))
}

func TestWorkTypesValue(t *testing.T) {
	v, err := WorkTypes{"Oil Change", "Alignment"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Oil Change","Alignment"]`, v)

	v, err = WorkTypes(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestWorkTypesUnmarshalJSON(t *testing.T) {
	var w WorkTypes
	require.NoError(t, json.Unmarshal([]byte(`["Oil Change","Alignment"]`), &w))
	assert.Equal(t, WorkTypes{"Oil Change", "Alignment"}, w)

	require.NoError(t, json.Unmarshal([]byte(`"Oil Change"`), &w))
	assert.Equal(t, WorkTypes{"Oil Change"}, w)

	require.NoError(t, json.Unmarshal([]byte(`""`), &w))
	assert.Equal(t, WorkTypes{}, w)

	require.NoError(t, json.Unmarshal([]byte(`null`), &w))
	assert.Equal(t, WorkTypes{}, w)

	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &w))
}

func TestWorkTypesMarshalJSON(t *testing.T) {
	b, err := json.Marshal(WorkTypes{"Oil Change"})
	require.NoError(t, err)
	assert.Equal(t, `["Oil Change"]`, string(b))

	b, err = json.Marshal(WorkTypes(nil))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(b))
}
