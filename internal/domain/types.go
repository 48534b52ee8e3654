package domain

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Number accepts a JSON number or a numeric string. Job forms submit
// salary as either, so the payload is normalized at decode time.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("value must be numeric")
	}
	*n = Number(f)
	return nil
}

// Count is Number's integer counterpart, used for position counts.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	var n Number
	if err := n.UnmarshalJSON(b); err != nil {
		return err
	}
	*c = Count(n)
	return nil
}

// StringList accepts a JSON array of strings or a single comma-separated
// string, normalized to a trimmed list with empty entries dropped.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*l = nil
		return nil
	}
	if len(s) > 0 && s[0] == '[' {
		var items []string
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = normalizeList(items)
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*l = SplitList(raw)
	return nil
}

// SplitList turns a comma-separated string into a trimmed list.
func SplitList(raw string) StringList {
	return normalizeList(strings.Split(raw, ","))
}

func normalizeList(items []string) StringList {
	out := make(StringList, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
