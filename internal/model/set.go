package model

import "encoding/json"

// StringSet is a list of unique strings. Duplicates in the input are dropped
// and first-seen order is kept, so responses stay deterministic.
type StringSet []string

// NewStringSet builds a set from values.
func NewStringSet(values ...string) StringSet {
	out := make(StringSet, 0, len(values))
	seen := make(map[string]struct{}, len(values))

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// UnmarshalJSON accepts a JSON array of strings.
func (s *StringSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	*s = NewStringSet(values...)
	return nil
}

// MarshalJSON writes an empty array rather than null.
func (s StringSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// Contains reports whether v is in the set.
func (s StringSet) Contains(v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
