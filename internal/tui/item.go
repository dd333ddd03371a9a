// Package tui provides the interactive Bubbletea picker for choosing a
// transform with a live preview of its output.
package tui

import (
	"github.com/dedene/casekit/internal/transform"
)

const favoriteMark = " ★"

// TransformItem wraps a transform.Descriptor to implement the bubbles
// list.DefaultItem interface.
type TransformItem struct {
	desc     transform.Descriptor
	favorite bool
}

// NewTransformItem creates a TransformItem. Favorites get a star in the
// title.
func NewTransformItem(d transform.Descriptor, favorite bool) TransformItem {
	return TransformItem{desc: d, favorite: favorite}
}

// Title returns the transform name for list display.
func (i TransformItem) Title() string {
	if i.favorite {
		return i.desc.Name + favoriteMark
	}

	return i.desc.Name
}

// Description returns the ID and category for list display.
func (i TransformItem) Description() string {
	return i.desc.ID + " | " + string(i.desc.Category)
}

// FilterValue returns name, ID and description for fuzzy matching.
func (i TransformItem) FilterValue() string {
	return i.desc.Name + " " + i.desc.ID + " " + i.desc.Description
}

// Descriptor returns the wrapped descriptor.
func (i TransformItem) Descriptor() transform.Descriptor { return i.desc }
