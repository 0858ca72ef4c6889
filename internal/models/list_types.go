package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList and FloatList persist ordered sequences as JSON text inside a
// text column. The round trip must preserve order and numeric value exactly.

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	return scanJSONList(l, src)
}

type FloatList []float64

func (l FloatList) Value() (driver.Value, error) {
	if l == nil {
		l = FloatList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *FloatList) Scan(src any) error {
	return scanJSONList(l, src)
}

func scanJSONList(dst any, src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported list column type %T", src)
	}
}

func (StringList) GormDataType() string { return "text" }
func (FloatList) GormDataType() string  { return "text" }
