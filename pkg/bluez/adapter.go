package bluez

import (
	"sort"

	"github.com/godbus/dbus/v5"
)

// Adapter is one org.bluez.Adapter1 entry (e.g. /org/bluez/hci0).
type Adapter struct {
	Path    dbus.ObjectPath
	Name    string // interface name, e.g. hci0
	Address string
	Powered bool

	// Props holds the raw Adapter1 property map for detail output.
	Props map[string]dbus.Variant
}

// Adapters lists every adapter BlueZ exposes, sorted by object path.
func Adapters(conn *dbus.Conn) ([]Adapter, error) {
	objs, err := GetManagedObjects(conn)
	if err != nil {
		return nil, err
	}
	var out []Adapter
	for path, ifaces := range objs {
		props, ok := ifaces[adapterIface]
		if !ok {
			continue
		}
		a := Adapter{Path: path, Name: Handle(path), Props: props}
		if v, ok := props["Address"]; ok {
			a.Address, _ = v.Value().(string)
		}
		if v, ok := props["Powered"]; ok {
			a.Powered, _ = v.Value().(bool)
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// StartDiscovery starts LE discovery on the adapter.
func StartDiscovery(conn *dbus.Conn, adapter dbus.ObjectPath) error {
	return conn.Object(busName, adapter).Call(adapterIface+".StartDiscovery", 0).Err
}

// StopDiscovery stops discovery.
func StopDiscovery(conn *dbus.Conn, adapter dbus.ObjectPath) error {
	return conn.Object(busName, adapter).Call(adapterIface+".StopDiscovery", 0).Err
}
