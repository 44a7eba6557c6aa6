package entity

import "sort"

// Record is a row as the store returns it: column name to value.
type Record map[string]any

// Columns returns the record keys in a stable order.
func (r Record) Columns() []string {
	cols := make([]string, 0, len(r))
	for col := range r {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// Clone returns a shallow copy so stores never share maps with callers.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// setString stores *v under key, skipping fields the client did not send.
func (r Record) setString(key string, v *string) {
	if v != nil {
		r[key] = *v
	}
}

// GroupedBookings is the admin view across all booking categories.
type GroupedBookings struct {
	Guide     []Record `json:"guide"`
	Transport []Record `json:"transport"`
	Activity  []Record `json:"activity"`
}
