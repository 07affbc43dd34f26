package repo

import (
	"time"

	"github.com/google/uuid"
)

// imageAliases lists every column name the image reference has historically
// been stored under, in precedence order. The first non-empty value wins.
var imageAliases = []string{"image_url", "imageUrl", "image", "IMAGE_URL"}

// imageFrom resolves the image reference from a raw row, trying each known
// alias in order.
func imageFrom(row map[string]any) string {
	for _, key := range imageAliases {
		if v := rawString(row, key); v != "" {
			return v
		}
	}
	return ""
}

// rawString reads a string-valued column, tolerating absent and NULL values.
func rawString(row map[string]any, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

// rawBool reads a boolean column, defaulting to def when absent or NULL.
func rawBool(row map[string]any, key string, def bool) bool {
	if v, ok := row[key].(bool); ok {
		return v
	}
	return def
}

// rawFloat reads a numeric column stored as double precision.
// Integer-typed values are accepted because hand-created tables sometimes
// declare coordinate columns as integers.
func rawFloat(row map[string]any, key string) float64 {
	switch v := row[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	}
	return 0
}

// rawUUID reads a uuid column in any of the shapes pgx hands back.
func rawUUID(row map[string]any, key string) uuid.UUID {
	switch v := row[key].(type) {
	case uuid.UUID:
		return v
	case [16]byte:
		return uuid.UUID(v)
	case string:
		if id, err := uuid.Parse(v); err == nil {
			return id
		}
	}
	return uuid.Nil
}

// rawTime reads a timestamp column, returning the zero time when absent.
func rawTime(row map[string]any, key string) time.Time {
	if v, ok := row[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}
