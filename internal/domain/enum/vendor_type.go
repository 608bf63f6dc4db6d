package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// VendorType represents the kind of service a vendor provides
type VendorType string

const (
	VendorTypeIngredients VendorType = "ingredients"
	VendorTypeEquipment   VendorType = "equipment"
	VendorTypeFlowers     VendorType = "flowers"
	VendorTypeTransport   VendorType = "transport"
	VendorTypeOther       VendorType = "other"
)

func (t VendorType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known vendor type
func (t VendorType) IsValid() bool {
	switch t {
	case VendorTypeIngredients, VendorTypeEquipment, VendorTypeFlowers, VendorTypeTransport, VendorTypeOther:
		return true
	}
	return false
}

func (t VendorType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *VendorType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = VendorType(str)
	return nil
}

func (t VendorType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *VendorType) Scan(value interface{}) error {
	if value == nil {
		*t = VendorTypeOther
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = VendorType(v)
	case []byte:
		*t = VendorType(string(v))
	}
	return nil
}
