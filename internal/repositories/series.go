package repositories

import "encoding/json"

// Series is an upstream value column. Entries that are not JSON numbers decode
// as nil, and a field that is not an array decodes as an empty series.
type Series []*float64

func (s *Series) UnmarshalJSON(data []byte) error {
	*s = nil

	var raw []json.RawMessage
	if json.Unmarshal(data, &raw) != nil {
		return nil
	}

	values := make(Series, len(raw))
	for i, item := range raw {
		var v float64
		if json.Unmarshal(item, &v) == nil {
			values[i] = &v
		}
	}
	*s = values

	return nil
}

// Labels is the string counterpart of Series, used for the time column.
type Labels []string

func (l *Labels) UnmarshalJSON(data []byte) error {
	*l = nil

	var raw []json.RawMessage
	if json.Unmarshal(data, &raw) != nil {
		return nil
	}

	labels := make(Labels, len(raw))
	for i, item := range raw {
		var s string
		if json.Unmarshal(item, &s) == nil {
			labels[i] = s
		}
	}
	*l = labels

	return nil
}
