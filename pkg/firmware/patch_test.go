package firmware

import (
	"bytes"
	"testing"
)

// BLECTF at offset 4 becomes FOO plus three NULs; every byte outside the
// field is bit-identical between input and output.
func TestApplyNeedleScenario(t *testing.T) {
	data := mustHex(t, "01020304"+"424c45435446"+"aabbcc")
	needle := []byte("BLECTF")

	tgt, err := Plan(data, needle, []byte("FOO"), DefaultPattern)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	out := Apply(data, tgt, []byte("FOO"))

	want := mustHex(t, "01020304"+"464f4f000000"+"aabbcc")
	if !bytes.Equal(out, want) {
		t.Fatalf("patched image = %x, want %x", out, want)
	}
	if len(out) != len(data) {
		t.Fatalf("length changed: %d -> %d", len(data), len(out))
	}
}

// The advertising-field fallback leaves the length byte alone and pads
// the field contents with NULs.
func TestApplyAdvFieldScenario(t *testing.T) {
	data := mustHex(t, advPrefixHex+"0709"+"4f4c444e414d"+"ff")

	tgt, err := Plan(data, []byte("BLECTF"), []byte("NEW"), DefaultPattern)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	out := Apply(data, tgt, []byte("NEW"))

	want := mustHex(t, advPrefixHex+"0709"+"4e4557000000"+"ff")
	if !bytes.Equal(out, want) {
		t.Fatalf("patched image = %x, want %x", out, want)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	data := []byte("..BLECTF..")
	orig := append([]byte(nil), data...)

	tgt, _ := Plan(data, []byte("BLECTF"), []byte("FOO"), DefaultPattern)
	_ = Apply(data, tgt, []byte("FOO"))

	if !bytes.Equal(data, orig) {
		t.Error("input buffer was mutated")
	}
}

// Patching an already-patched image with the same name is a no-op the
// second time round.
func TestApplyIdempotent(t *testing.T) {
	data := []byte("xxxxBLECTFyyyy")
	needle := []byte("BLECTF")
	name := []byte("FOO")

	tgt, err := Plan(data, needle, name, DefaultPattern)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	once := Apply(data, tgt, name)
	twice := Apply(once, tgt, name)

	if !bytes.Equal(once, twice) {
		t.Error("second patch is not byte-identical to the first")
	}
}

// Round-trip: after patching, the field at the recorded offset holds
// exactly the name followed by NULs up to the original needle length.
func TestApplyRoundTrip(t *testing.T) {
	data := []byte("....BLECTF....")
	needle := []byte("BLECTF")

	for _, name := range []string{"", "A", "FOO", "ABCDE", "SIXSIX"} {
		tgt, err := Plan(data, needle, []byte(name), DefaultPattern)
		if err != nil {
			t.Fatalf("Plan(%q) error = %v", name, err)
		}
		out := Apply(data, tgt, []byte(name))

		field := out[tgt.Offset : tgt.Offset+tgt.Capacity]
		want := append([]byte(name), make([]byte, len(needle)-len(name))...)
		if !bytes.Equal(field, want) {
			t.Errorf("name %q: field = %x, want %x", name, field, want)
		}
	}
}

func TestApplyBoundsContainment(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	copy(data[100:], "BLECTF")

	tgt, err := Plan(data, []byte("BLECTF"), []byte("FOO"), DefaultPattern)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	out := Apply(data, tgt, []byte("FOO"))

	for i := range data {
		inside := i >= tgt.Offset && i < tgt.Offset+tgt.Capacity
		if !inside && out[i] != data[i] {
			t.Fatalf("byte %d outside the field changed: %02x -> %02x", i, data[i], out[i])
		}
	}
}

func TestApplyNameFillsWholeField(t *testing.T) {
	data := []byte("..BLECTF..")

	tgt, _ := Plan(data, []byte("BLECTF"), []byte("SIXSIX"), DefaultPattern)
	out := Apply(data, tgt, []byte("SIXSIX"))

	if got := string(out); got != "..SIXSIX.." {
		t.Errorf("patched = %q, want %q", got, "..SIXSIX..")
	}
}
