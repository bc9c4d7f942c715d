package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Published bool      `json:"published"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

func TestEncodeDecode_TimesBecomeRFC3339Strings(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	doc, err := Encode(sample{ID: "a", Title: "t", Published: true, Tags: []string{"x"}, CreatedAt: created})
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01T10:30:00Z", doc["created_at"])
	assert.Equal(t, true, doc["published"])
	assert.Equal(t, []any{"x"}, doc["tags"])

	var back sample
	require.NoError(t, Decode(doc, &back))
	assert.True(t, created.Equal(back.CreatedAt))
	assert.Equal(t, "t", back.Title)
}

func TestMatches_NormalizesKinds(t *testing.T) {
	doc := Document{"id": "1", "n": float64(3), "ok": true}

	assert.True(t, matches(doc, Filter{"n": 3}))
	assert.True(t, matches(doc, Filter{"ok": true, "id": "1"}))
	assert.False(t, matches(doc, Filter{"ok": false}))
	assert.False(t, matches(doc, Filter{"missing": "x"}))
	assert.True(t, matches(doc, nil))
}

func TestApplyFindOptions_SortsTimestampsChronologically(t *testing.T) {
	docs := []Document{
		{"id": "a", "created_at": "2024-01-01T10:00:00+05:00"}, // 05:00Z
		{"id": "b", "created_at": "2024-01-01T06:00:00Z"},
		{"id": "c", "created_at": "2024-01-01T04:00:00.5Z"},
	}

	out := applyFindOptions(docs, &FindOptions{SortBy: "created_at", Order: Descending})
	ids := []string{out[0]["id"].(string), out[1]["id"].(string), out[2]["id"].(string)}
	assert.Equal(t, []string{"b", "a", "c"}, ids)

	out = applyFindOptions(out, &FindOptions{SortBy: "created_at", Order: Ascending, Limit: 2})
	require.Len(t, out, 2)
	assert.Equal(t, "c", out[0]["id"])
}

func TestUpsertDocument_SetWinsOverDefaults(t *testing.T) {
	doc := upsertDocument(
		Filter{"id": "company_info"},
		Document{"name": "patched"},
		&UpdateOptions{Upsert: true, SetOnInsert: Document{"name": "default", "email": "d@x"}},
	)
	assert.Equal(t, Document{"id": "company_info", "name": "patched", "email": "d@x"}, doc)
}
