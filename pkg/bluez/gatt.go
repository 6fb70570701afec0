package bluez

import (
	"encoding/hex"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/godbus/dbus/v5"
)

// Characteristic is one org.bluez.GattCharacteristic1 entry below a
// device.
type Characteristic struct {
	Path  dbus.ObjectPath
	UUID  string
	Flags []string
}

func (c Characteristic) hasFlag(substr string) bool {
	for _, f := range c.Flags {
		if strings.Contains(strings.ToLower(f), substr) {
			return true
		}
	}
	return false
}

// Readable reports whether any flag mentions read access. Substring
// matching covers the encrypted/authenticated flag variants.
func (c Characteristic) Readable() bool { return c.hasFlag("read") }

// Writable reports whether any flag mentions write access.
func (c Characteristic) Writable() bool { return c.hasFlag("write") }

// Notifies reports whether the characteristic supports notifications.
func (c Characteristic) Notifies() bool { return c.hasFlag("notify") }

// Indicates reports whether the characteristic supports indications.
func (c Characteristic) Indicates() bool { return c.hasFlag("indicate") }

// Characteristics lists the GATT characteristics below the device path,
// sorted by object path (which orders them by handle).
func Characteristics(conn *dbus.Conn, device dbus.ObjectPath) ([]Characteristic, error) {
	objs, err := GetManagedObjects(conn)
	if err != nil {
		return nil, err
	}
	prefix := string(device) + "/"
	var out []Characteristic
	for path, ifaces := range objs {
		if !strings.HasPrefix(string(path), prefix) {
			continue
		}
		props, ok := ifaces[charIface]
		if !ok {
			continue
		}
		c := Characteristic{Path: path}
		if v, ok := props["UUID"]; ok {
			c.UUID, _ = v.Value().(string)
		}
		if v, ok := props["Flags"]; ok {
			c.Flags, _ = v.Value().([]string)
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// ReadValue reads a characteristic via GattCharacteristic1.ReadValue.
func ReadValue(conn *dbus.Conn, char dbus.ObjectPath) ([]byte, error) {
	var value []byte
	opts := map[string]dbus.Variant{}
	err := conn.Object(busName, char).Call(charIface+".ReadValue", 0, opts).Store(&value)
	return value, err
}

// WriteValue writes data to a characteristic.
func WriteValue(conn *dbus.Conn, char dbus.ObjectPath, data []byte) error {
	opts := map[string]dbus.Variant{}
	return conn.Object(busName, char).Call(charIface+".WriteValue", 0, data, opts).Err
}

// FormatValue renders a characteristic value for display: printable text
// stays text, anything with control bytes or invalid UTF-8 becomes hex.
func FormatValue(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if utf8.Valid(b) {
		printable := true
		for _, c := range b {
			if c < 0x20 {
				printable = false
				break
			}
		}
		if printable {
			return string(b)
		}
	}
	return hex.EncodeToString(b)
}
