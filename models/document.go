package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// Document holds a free-form JSON value (a jsonb column in postgres).
// A nil Document serializes as JSON null and stores as SQL NULL.
type Document []byte

func (d Document) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	if d == nil {
		return errors.New("models: UnmarshalJSON on nil Document pointer")
	}
	if string(data) == "null" {
		*d = nil
		return nil
	}
	*d = append((*d)[0:0], data...)
	return nil
}

func (d Document) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return []byte(d), nil
}

func (d *Document) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = nil
	case []byte:
		*d = append((*d)[0:0], v...)
	case string:
		*d = Document(v)
	default:
		return fmt.Errorf("models: cannot scan %T into Document", src)
	}
	return nil
}
