package domain

import (
	"encoding/json"
	"strings"
)

// MotionType is the movement behavior of a fish in the minigame.
type MotionType int

const (
	MotionMixed MotionType = iota
	MotionDart
	MotionSmooth
	MotionSink
	MotionFloater
)

var motionNames = map[MotionType]string{
	MotionMixed:   "mixed",
	MotionDart:    "dart",
	MotionSmooth:  "smooth",
	MotionSink:    "sinker",
	MotionFloater: "floater",
}

// ParseMotionType maps a behavior token case-insensitively. Unknown tokens map
// to MotionMixed.
func ParseMotionType(token string) MotionType {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "dart":
		return MotionDart
	case "smooth":
		return MotionSmooth
	case "sink", "sinker":
		return MotionSink
	case "floater":
		return MotionFloater
	default:
		return MotionMixed
	}
}

func (m MotionType) String() string {
	if name, ok := motionNames[m]; ok {
		return name
	}
	return motionNames[MotionMixed]
}

func (m MotionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *MotionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = ParseMotionType(s)
	return nil
}

// FishTraits is minigame metadata for a fish. The engine threads it through
// without interpreting it.
type FishTraits struct {
	Name        string     `json:"name,omitempty"`
	Difficulty  int        `json:"difficulty"`
	MotionType  MotionType `json:"motionType"`
	MinSize     int        `json:"minSize"`
	MaxSize     int        `json:"maxSize"`
	IsLegendary bool       `json:"isLegendary"`
}
