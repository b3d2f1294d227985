package drawhelper

import "github.com/gogpu/drawhelper/internal/blend"

// Mode is a composition mode.
type Mode = blend.Mode

// Composition modes.
const (
	SourceOver      = blend.SourceOver
	DestinationOver = blend.DestinationOver
	Clear           = blend.Clear
	Source          = blend.Source
	Destination     = blend.Destination
	SourceIn        = blend.SourceIn
	DestinationIn   = blend.DestinationIn
	SourceOut       = blend.SourceOut
	DestinationOut  = blend.DestinationOut
	SourceAtop      = blend.SourceAtop
	DestinationAtop = blend.DestinationAtop
	Xor             = blend.Xor

	Plus       = blend.Plus
	Multiply   = blend.Multiply
	Screen     = blend.Screen
	Overlay    = blend.Overlay
	Darken     = blend.Darken
	Lighten    = blend.Lighten
	ColorDodge = blend.ColorDodge
	ColorBurn  = blend.ColorBurn
	HardLight  = blend.HardLight
	SoftLight  = blend.SoftLight
	Difference = blend.Difference
	Exclusion  = blend.Exclusion

	SourceOrDestination        = blend.SourceOrDestination
	SourceAndDestination       = blend.SourceAndDestination
	SourceXorDestination       = blend.SourceXorDestination
	NotSourceAndNotDestination = blend.NotSourceAndNotDestination
	NotSourceOrNotDestination  = blend.NotSourceOrNotDestination
	NotSourceXorDestination    = blend.NotSourceXorDestination
	NotSource                  = blend.NotSource
	NotSourceAndDestination    = blend.NotSourceAndDestination
	SourceAndNotDestination    = blend.SourceAndNotDestination
	NotSourceOrDestination     = blend.NotSourceOrDestination
	SourceOrNotDestination     = blend.SourceOrNotDestination
	ClearDestination           = blend.ClearDestination
	SetDestination             = blend.SetDestination
	NotDestination             = blend.NotDestination
)

// ParseMode returns the mode with the given name, ignoring case.
func ParseMode(name string) (Mode, bool) {
	return blend.ParseMode(name)
}
