// Package firmware rewrites the embedded device-name string inside a
// compiled firmware image. The name is found either by an exact marker
// string (the needle the firmware source embeds) or, when the needle is
// absent, by structurally locating the Complete Local Name field in the
// raw advertising buffer. The patch is a bounded, NUL-padded in-place
// substitution: no byte outside the located field is ever modified.
package firmware

// Origin records which locator produced a patch target.
type Origin int

const (
	// OriginNeedle means the exact marker string was found in the image.
	OriginNeedle Origin = iota
	// OriginAdvField means the name field was located structurally in
	// the advertising-data buffer.
	OriginAdvField
)

func (o Origin) String() string {
	switch o {
	case OriginNeedle:
		return "needle"
	case OriginAdvField:
		return "adv-field"
	default:
		return "unknown"
	}
}

// Target is the bounded region of the image the new name may occupy.
// Targets produced by Plan or Pattern.Locate always satisfy
// Offset+Capacity <= len(image).
type Target struct {
	// Offset is where the name bytes start.
	Offset int

	// Capacity is the maximum name length the field can hold without
	// shifting any subsequent byte of the image.
	Capacity int

	// Origin says which locator found the field.
	Origin Origin
}
