package store

import (
	"github.com/mbeaudin/legendscale/pkg/legend"
)

// storeVersion is written to every settings file.
const storeVersion = "1.0"

// Meta carries user-editable metadata about a settings file. The ignore
// flag disables remembering and recall without deleting any records.
type Meta struct {
	Description string `json:"description,omitempty"`
	Ignore      bool   `json:"ignore,omitempty"`
}

// Entry pairs a displayed-field identity with its remembered request.
type Entry struct {
	Field   string         `json:"field"`
	Request legend.Request `json:"request"`
}

// storeFile is the JSON file format for the settings store.
type storeFile struct {
	Version string                    `json:"version"`
	Meta    Meta                      `json:"meta"`
	Fields  map[string]legend.Request `json:"fields"`
}
