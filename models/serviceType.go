package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

// ServiceTypeList is the ordered list of service-type labels on a service.
// Stored as a single comma-joined string column, exposed over the API as a
// JSON array. Normalization happens once, at the persistence boundary
// (Scan/Value); nothing downstream has to care which shape the row carried.
type ServiceTypeList []string

// ParseServiceTypes normalizes a stored value into a label list: split on
// comma, trim each part, drop empties, preserve order. A value without the
// delimiter is a single trimmed label; blank input is an empty list.
func ParseServiceTypes(stored string) ServiceTypeList {
	if strings.TrimSpace(stored) == "" {
		return ServiceTypeList{}
	}
	parts := strings.Split(stored, ",")
	out := make(ServiceTypeList, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Format joins the labels with ", " for storage. Empty and nil lists format
// to the empty string.
func (l ServiceTypeList) Format() string {
	return strings.Join(l, ", ")
}

// Validate rejects labels that would not survive the comma-joined storage
// round trip.
func (l ServiceTypeList) Validate() error {
	for _, label := range l {
		trimmed := strings.TrimSpace(label)
		if trimmed == "" {
			return errors.New("service type label must not be blank")
		}
		if strings.Contains(label, ",") {
			return fmt.Errorf("service type label %q must not contain a comma", label)
		}
	}
	return nil
}

// Scan implements sql.Scanner. NULL scans to an empty list.
func (l *ServiceTypeList) Scan(value interface{}) error {
	if value == nil {
		*l = ServiceTypeList{}
		return nil
	}
	switch v := value.(type) {
	case string:
		*l = ParseServiceTypes(v)
	case []byte:
		*l = ParseServiceTypes(string(v))
	default:
		return fmt.Errorf("cannot scan %T into ServiceTypeList", value)
	}
	return nil
}

// Value implements driver.Valuer.
func (l ServiceTypeList) Value() (driver.Value, error) {
	return l.Format(), nil
}
