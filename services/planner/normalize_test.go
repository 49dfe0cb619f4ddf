package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordListShapes(t *testing.T) {
	rec := map[string]any{"id": "x"}

	assert.Len(t, recordList([]map[string]any{rec}), 1)
	assert.Len(t, recordList([]any{rec, "noise"}), 1)
	assert.Len(t, recordList(map[string]any{"flights": []any{rec}}, "flights"), 1)
	assert.Len(t, recordList(map[string]any{"options": []any{rec}}, "flights"), 1)
	assert.Nil(t, recordList(map[string]any{"unrelated": []any{rec}}, "flights"))
	assert.Nil(t, recordList("garbage"))
	assert.Nil(t, recordList(nil))
}

func TestCapRecords(t *testing.T) {
	records := []map[string]any{{}, {}, {}}
	assert.Len(t, capRecords(records, 2), 2)
	assert.Len(t, capRecords(records, 5), 3)
	assert.Len(t, capRecords(records, 0), 3, "zero means uncapped")
}

func TestFieldString(t *testing.T) {
	m := map[string]any{
		"airline": "SkyHigh Airlines",
		"empty":   "",
		"nested":  map[string]any{"name": "Grand Palace Hotel"},
		"num":     3.0,
	}
	assert.Equal(t, "SkyHigh Airlines", fieldString(m, "airline"))
	assert.Equal(t, "SkyHigh Airlines", fieldString(m, "missing", "airline"))
	assert.Equal(t, "Grand Palace Hotel", fieldString(m, "nested"))
	assert.Equal(t, "", fieldString(m, "empty"))
	assert.Equal(t, "", fieldString(m, "num"))
}

func TestFieldNumber(t *testing.T) {
	m := map[string]any{"f": 1.5, "i": 2, "i64": int64(3), "s": "4"}
	assert.Equal(t, 1.5, fieldNumber(m, "f"))
	assert.Equal(t, 2.0, fieldNumber(m, "i"))
	assert.Equal(t, 3.0, fieldNumber(m, "i64"))
	assert.Equal(t, 0.0, fieldNumber(m, "s"))
	assert.Equal(t, 1.5, fieldNumber(m, "missing", "f"))
}

func TestFieldStrings(t *testing.T) {
	m := map[string]any{
		"typed": []string{"wifi", "pool"},
		"mixed": []any{"wifi", 3, "gym"},
	}
	assert.Equal(t, []string{"wifi", "pool"}, fieldStrings(m, "typed"))
	assert.Equal(t, []string{"wifi", "gym"}, fieldStrings(m, "mixed"))
	assert.Nil(t, fieldStrings(m, "missing"))
}
