// internal/domain/homework/response.go
package homework

import (
	"encoding/json"
	"math"
)

// ExtractLatest validates a decoded API response and returns its first homework entry.
// Only the first entry is examined; the API lists the most recent submission first.
func ExtractLatest(response any) (Record, error) {
	body, ok := response.(map[string]any)
	if !ok {
		return nil, &ShapeError{Reason: ReasonNotMapping}
	}
	raw, ok := body["homeworks"]
	if !ok {
		return nil, &ShapeError{Reason: ReasonMissingHomeworks}
	}
	homeworks, ok := raw.([]any)
	if !ok {
		return nil, &ShapeError{Reason: ReasonHomeworksNotList}
	}
	if len(homeworks) == 0 {
		return nil, &EmptyError{}
	}

	// A non-object entry yields an empty record, which the formatter rejects.
	first, _ := homeworks[0].(map[string]any)
	return Record(first), nil
}

// CurrentDate returns the server timestamp used as the next poll cursor.
func CurrentDate(response any) (int64, bool) {
	body, ok := response.(map[string]any)
	if !ok {
		return 0, false
	}
	switch v := body["current_date"].(type) {
	case json.Number:
		ts, err := v.Int64()
		return ts, err == nil
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
