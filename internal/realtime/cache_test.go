package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCreatedPrepends(t *testing.T) {
	records := []Record{{"id": "a", "amount": 100}}

	out := ApplyCreated(records, Record{"id": "b", "amount": 200})
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID())
	assert.Equal(t, "a", out[1].ID())
}

func TestApplyCreatedIsIdempotent(t *testing.T) {
	records := []Record{{"id": "a"}}
	payload := Record{"id": "b", "amount": 200}

	once := ApplyCreated(records, payload)
	twice := ApplyCreated(once, payload)

	assert.Equal(t, once, twice)
	require.Len(t, twice, 2)
}

func TestApplyCreatedIgnoresMissingID(t *testing.T) {
	records := []Record{{"id": "a"}}
	out := ApplyCreated(records, Record{"amount": 100})
	assert.Equal(t, records, out)
}

func TestApplyUpdatedMergesFields(t *testing.T) {
	records := []Record{
		{"id": "a", "amount": 100, "notes": "keep"},
		{"id": "b", "amount": 200},
	}

	out := ApplyUpdated(records, Record{"id": "a", "amount": 150})
	require.Len(t, out, 2)
	assert.Equal(t, 150, out[0]["amount"])
	assert.Equal(t, "keep", out[0]["notes"])
	assert.Equal(t, 200, out[1]["amount"])
}

func TestApplyUpdatedNeverInserts(t *testing.T) {
	records := []Record{{"id": "a"}}
	out := ApplyUpdated(records, Record{"id": "missing", "amount": 1})
	assert.Equal(t, records, out)
}

func TestApplyDeleted(t *testing.T) {
	records := []Record{{"id": "a"}, {"id": "b"}}

	out := ApplyDeleted(records, "a")
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID())

	// Deleting an absent id is a no-op.
	assert.Equal(t, out, ApplyDeleted(out, "a"))
}
