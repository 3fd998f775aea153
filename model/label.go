package model

import "time"

// Label is an entry in the known-label catalog.
type Label struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Color       string    `json:"color,omitempty"` // One of ColorPresets keys, or empty
	CreatedAt   time.Time `json:"created_at"`
}

// AsCandidate returns the label as a matcher candidate.
func (l Label) AsCandidate() Candidate {
	return Candidate{ID: l.ID, DisplayName: l.DisplayName}
}

// ColorPresets maps category color preset identifiers to their display names.
var ColorPresets = map[string]string{
	"preset0":  "Red",
	"preset1":  "Orange",
	"preset2":  "Brown",
	"preset3":  "Yellow",
	"preset4":  "Green",
	"preset5":  "Teal",
	"preset6":  "Olive",
	"preset7":  "Blue",
	"preset8":  "Purple",
	"preset9":  "Cranberry",
	"preset10": "Steel",
	"preset11": "DarkSteel",
	"preset12": "Gray",
	"preset13": "DarkGray",
	"preset14": "Black",
	"preset15": "DarkRed",
	"preset16": "DarkOrange",
	"preset17": "DarkBrown",
	"preset18": "DarkYellow",
	"preset19": "DarkGreen",
	"preset20": "DarkTeal",
	"preset21": "DarkOlive",
	"preset22": "DarkBlue",
	"preset23": "DarkPurple",
	"preset24": "DarkCranberry",
}

// IsValidColor reports whether color is empty or a known preset.
func IsValidColor(color string) bool {
	if color == "" {
		return true
	}
	_, ok := ColorPresets[color]
	return ok
}
