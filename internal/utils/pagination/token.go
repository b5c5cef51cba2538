package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeToken creates a base64 cursor from a movement's occurrence date and
// creation time, giving a stable sort key even when many movements share a day.
func EncodeToken(occurredAt time.Time, createdAt time.Time) string {
	tokenStr := fmt.Sprintf("%s|%s", occurredAt.Format(timeFormat), createdAt.Format(timeFormat))
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a cursor back into the occurrence date and creation time.
func DecodeToken(token string) (time.Time, time.Time, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token (missing separator)")
	}

	occurredAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token (occurred_at parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token (created_at parse): %w", err)
	}
	return occurredAt, createdAt, nil
}
