package domain

import (
	"encoding/json"
	"strings"
)

// Event is the trigger payload of one invocation.
type Event struct {
	IsLocal bool `json:"is_local"`
}

func ParseEvent(raw string) (Event, error) {
	var e Event
	if strings.TrimSpace(raw) == "" {
		return e, nil
	}
	err := json.Unmarshal([]byte(raw), &e)
	return e, err
}
