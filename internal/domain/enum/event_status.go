package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// EventStatus represents the status of a booked event
type EventStatus int

const (
	EventStatusScheduled EventStatus = 0
	EventStatusCompleted EventStatus = 1
	EventStatusCanceled  EventStatus = 2
)

func (s EventStatus) String() string {
	return [...]string{"Scheduled", "Completed", "Canceled"}[s]
}

// IsValid reports whether the value is a known status
func (s EventStatus) IsValid() bool {
	return s >= EventStatusScheduled && s <= EventStatusCanceled
}

func (s EventStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *EventStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = EventStatus(i)
		return nil
	}
	switch str {
	case "Scheduled":
		*s = EventStatusScheduled
	case "Completed":
		*s = EventStatusCompleted
	case "Canceled":
		*s = EventStatusCanceled
	}
	return nil
}

func (s EventStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *EventStatus) Scan(value interface{}) error {
	if value == nil {
		*s = EventStatusScheduled
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = EventStatus(v)
	case int:
		*s = EventStatus(v)
	}
	return nil
}
