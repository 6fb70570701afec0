package firmware

// Pattern describes the advertising-data layout used to locate the device
// name when the needle is absent: a fixed byte prefix immediately followed
// by the name field's length byte, its AD type byte, and the name itself.
// The prefix is configuration data, not a universal truth - it matches one
// firmware build's advertising buffer and can be swapped for another
// build's layout without touching the locator.
type Pattern struct {
	// Prefix is the raw byte run preceding the name field.
	Prefix []byte

	// NameType is the AD type code the field must carry. Complete Local
	// Name is 0x09.
	NameType byte
}

// DefaultPattern matches the ble_ctf firmware's advertising buffer:
// flags (02 01 06), TX power (02 0a eb), and a 16-bit service UUID entry
// (03 03 ff 00) ahead of the name field.
var DefaultPattern = Pattern{
	Prefix:   []byte{0x02, 0x01, 0x06, 0x02, 0x0a, 0xeb, 0x03, 0x03, 0xff, 0x00},
	NameType: 0x09,
}

// Locate scans data for the pattern and returns a target covering the
// name bytes of the first occurrence whose length and type tag validate.
// The AD length byte counts the type byte, so a field of length L holds
// L-1 name bytes. Prefix occurrences with a malformed tag are skipped,
// not fatal; ok is false only when no occurrence validates.
func (p Pattern) Locate(data []byte) (t Target, ok bool) {
	for _, i := range FindAll(data, p.Prefix) {
		pos := i + len(p.Prefix)
		if pos+2 > len(data) {
			continue
		}
		l := int(data[pos])
		typ := data[pos+1]
		if typ != p.NameType || l < 1 || pos+2+(l-1) > len(data) {
			continue
		}
		return Target{Offset: pos + 2, Capacity: l - 1, Origin: OriginAdvField}, true
	}
	return Target{}, false
}
