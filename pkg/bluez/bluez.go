// Package bluez is a thin, stateless query layer over the BlueZ D-Bus
// object tree. Every helper round-trips through
// org.freedesktop.DBus.ObjectManager on demand; nothing is cached, so
// the output always reflects what the daemon currently exposes.
package bluez

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	busName  = "org.bluez"
	rootPath = dbus.ObjectPath("/")

	adapterIface = "org.bluez.Adapter1"
	deviceIface  = "org.bluez.Device1"
	charIface    = "org.bluez.GattCharacteristic1"

	objectManagerIface = "org.freedesktop.DBus.ObjectManager"
	propertiesIface    = "org.freedesktop.DBus.Properties"
)

// ManagedObjects is the decoded result of GetManagedObjects:
// object path -> interface name -> property name -> value.
type ManagedObjects map[dbus.ObjectPath]map[string]map[string]dbus.Variant

// Connect opens the system bus, where BlueZ lives.
func Connect() (*dbus.Conn, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("system bus: %w", err)
	}
	return conn, nil
}

// GetManagedObjects dumps the full BlueZ object tree.
func GetManagedObjects(conn *dbus.Conn) (ManagedObjects, error) {
	var out ManagedObjects
	obj := conn.Object(busName, rootPath)
	if err := obj.Call(objectManagerIface+".GetManagedObjects", 0).Store(&out); err != nil {
		return nil, fmt.Errorf("GetManagedObjects: %w", err)
	}
	return out, nil
}

// Handle returns the trailing segment of an object path, e.g.
// /org/bluez/hci0/dev_AA_BB/service000c/char000d -> char000d.
func Handle(path dbus.ObjectPath) string {
	s := string(path)
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// AdapterPath builds the object path for a named adapter (e.g. hci0).
func AdapterPath(name string) dbus.ObjectPath {
	return dbus.ObjectPath("/org/bluez/" + name)
}
