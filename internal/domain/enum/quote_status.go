package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// QuoteStatus represents the status of a quote
type QuoteStatus int

const (
	QuoteStatusDraft     QuoteStatus = 0
	QuoteStatusSent      QuoteStatus = 1
	QuoteStatusAccepted  QuoteStatus = 2
	QuoteStatusDeclined  QuoteStatus = 3
	QuoteStatusConverted QuoteStatus = 4
)

func (s QuoteStatus) String() string {
	return [...]string{"Draft", "Sent", "Accepted", "Declined", "Converted"}[s]
}

// IsValid reports whether the value is a known status
func (s QuoteStatus) IsValid() bool {
	return s >= QuoteStatusDraft && s <= QuoteStatusConverted
}

func (s QuoteStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *QuoteStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = QuoteStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = QuoteStatusDraft
	case "Sent":
		*s = QuoteStatusSent
	case "Accepted":
		*s = QuoteStatusAccepted
	case "Declined":
		*s = QuoteStatusDeclined
	case "Converted":
		*s = QuoteStatusConverted
	}
	return nil
}

func (s QuoteStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *QuoteStatus) Scan(value interface{}) error {
	if value == nil {
		*s = QuoteStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = QuoteStatus(v)
	case int:
		*s = QuoteStatus(v)
	}
	return nil
}
