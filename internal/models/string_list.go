package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList is a list-valued column with set semantics on append. It is
// stored as a Postgres text[] and also decodes JSON arrays written by older
// clients.
type StringList []string

// Contains reports whether value is already in the list.
func (l StringList) Contains(value string) bool {
	for _, v := range l {
		if v == value {
			return true
		}
	}
	return false
}

// AppendUnique returns the list with value appended, and whether it was added.
func (l StringList) AppendUnique(value string) (StringList, bool) {
	if l.Contains(value) {
		return l, false
	}
	out := make(StringList, len(l), len(l)+1)
	copy(out, l)
	return append(out, value), true
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*l = StringList{}
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var values []string
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			return fmt.Errorf("failed to decode list column: %w", err)
		}
		*l = StringList(values)
		return nil
	}

	var arr pq.StringArray
	if err := arr.Scan(raw); err != nil {
		return fmt.Errorf("failed to decode list column: %w", err)
	}
	*l = StringList(arr)
	return nil
}

// Value implements driver.Valuer, encoding as a Postgres array literal.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return pq.StringArray(l).Value()
}

// GormDBDataType picks text[] on Postgres and plain text elsewhere.
func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// MarshalJSON keeps empty lists as [] rather than null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
