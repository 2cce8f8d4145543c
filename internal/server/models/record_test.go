package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_JSONShape(t *testing.T) {
	r := Record{ID: "id-1", FirstName: "Jean", LastName: "Dupont", CreatedAt: 1700000000000}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"id-1","firstName":"Jean","lastName":"Dupont","createdAt":1700000000000}`, string(b))

	r.Role, r.Bio = "Botaniste Urbain", "Fait pousser des idées."
	b, err = json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"id-1","firstName":"Jean","lastName":"Dupont","role":"Botaniste Urbain","bio":"Fait pousser des idées.","createdAt":1700000000000}`, string(b))
}

func TestRecord_Created(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	r := Record{CreatedAt: ts.UnixMilli()}
	assert.True(t, r.Created().Equal(ts))
}

func TestRecord_FullName(t *testing.T) {
	assert.Equal(t, "Marie Curie", Record{FirstName: "Marie", LastName: "Curie"}.FullName())
}
