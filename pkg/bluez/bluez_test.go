package bluez

import (
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestHandle(t *testing.T) {
	tests := []struct {
		path dbus.ObjectPath
		want string
	}{
		{"/org/bluez/hci0", "hci0"},
		{"/org/bluez/hci0/dev_AA_BB_CC_DD_EE_FF", "dev_AA_BB_CC_DD_EE_FF"},
		{"/org/bluez/hci0/dev_AA_BB_CC_DD_EE_FF/service000c/char000d", "char000d"},
		{"noslash", "noslash"},
	}
	for _, tt := range tests {
		if got := Handle(tt.path); got != tt.want {
			t.Errorf("Handle(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestAdapterPath(t *testing.T) {
	if got := AdapterPath("hci0"); got != dbus.ObjectPath("/org/bluez/hci0") {
		t.Errorf("AdapterPath(hci0) = %q", got)
	}
}

func TestCharacteristicFlags(t *testing.T) {
	c := Characteristic{Flags: []string{"encrypt-read", "write-without-response", "notify"}}
	if !c.Readable() {
		t.Error("encrypt-read should count as readable")
	}
	if !c.Writable() {
		t.Error("write-without-response should count as writable")
	}
	if !c.Notifies() {
		t.Error("notify flag not detected")
	}
	if c.Indicates() {
		t.Error("indicate flag detected where none exists")
	}

	empty := Characteristic{}
	if empty.Readable() || empty.Writable() || empty.Notifies() || empty.Indicates() {
		t.Error("characteristic with no flags reported capabilities")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"printable text", []byte("Flag captured!"), "Flag captured!"},
		{"control bytes go hex", []byte{'a', 0x00, 'b'}, "610062"},
		{"binary goes hex", []byte{0xde, 0xad, 0xbe, 0xef}, "deadbeef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%x) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
