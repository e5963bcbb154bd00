package output

import (
	"encoding/json"
)

// JSONFormatter formats results as JSON Lines, one object per matched line.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// jsonMatch is the serialization format for one matched line.
type jsonMatch struct {
	Type       string    `json:"type"`
	Source     string    `json:"source,omitempty"`
	LineNum    int       `json:"line_number"`
	ByteOffset int64     `json:"byte_offset"`
	Text       string    `json:"text"`
	Matches    []jsonPos `json:"matches,omitempty"`
}

type jsonPos struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (f *JSONFormatter) Format(buf []byte, result Result, multiSource bool) []byte {
	for _, m := range result.Matches {
		jm := jsonMatch{
			Type:       "match",
			Source:     result.Source,
			LineNum:    m.LineNum,
			ByteOffset: m.ByteOffset,
			Text:       string(m.LineBytes),
		}
		if len(m.Positions) > 0 {
			jm.Matches = make([]jsonPos, len(m.Positions))
			for i, pos := range m.Positions {
				jm.Matches[i] = jsonPos{Start: pos[0], End: pos[1]}
			}
		}
		data, _ := json.Marshal(jm)
		buf = append(buf, data...)
		buf = append(buf, '\n')
	}
	return buf
}

var _ Formatter = (*JSONFormatter)(nil)
