package firmware

// Plan decides where in data the new name will be written. The exact
// needle wins when present: it stays unambiguous even if the binary
// layout drifts across firmware builds. The structural pattern is only
// consulted when the needle is absent anywhere in the image. Multiple
// needle occurrences resolve to the first by offset.
//
// Plan is pure computation over the image; it never touches disk, so a
// too-long name or a missing pattern fails before any backup or write.
func Plan(data, needle, name []byte, pat Pattern) (Target, error) {
	var t Target
	if offs := FindAll(data, needle); len(offs) > 0 {
		t = Target{Offset: offs[0], Capacity: len(needle), Origin: OriginNeedle}
	} else {
		var ok bool
		t, ok = pat.Locate(data)
		if !ok {
			return Target{}, &PatternNotFoundError{Needle: needle}
		}
	}
	if len(name) > t.Capacity {
		return Target{}, &NameTooLongError{Needed: len(name), Max: t.Capacity}
	}
	return t, nil
}
