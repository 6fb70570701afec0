package bluez

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
)

// Device is one org.bluez.Device1 entry.
type Device struct {
	Path      dbus.ObjectPath
	Address   string
	Name      string
	Connected bool

	// RSSI is only meaningful when HasRSSI is set; BlueZ drops the
	// property for devices it has not seen advertise recently.
	RSSI    int16
	HasRSSI bool
}

// DeviceNotFoundError indicates that no managed device carries the
// requested address.
type DeviceNotFoundError struct {
	Address string
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("device %s not found via BlueZ", e.Address)
}

// IsDeviceNotFound returns true if the error is a DeviceNotFoundError.
func IsDeviceNotFound(err error) bool {
	var e *DeviceNotFoundError
	return errors.As(err, &e)
}

func deviceFromProps(path dbus.ObjectPath, props map[string]dbus.Variant) Device {
	d := Device{Path: path}
	if v, ok := props["Address"]; ok {
		d.Address, _ = v.Value().(string)
	}
	if v, ok := props["Alias"]; ok {
		d.Name, _ = v.Value().(string)
	}
	if d.Name == "" {
		if v, ok := props["Name"]; ok {
			d.Name, _ = v.Value().(string)
		}
	}
	if v, ok := props["Connected"]; ok {
		d.Connected, _ = v.Value().(bool)
	}
	if v, ok := props["RSSI"]; ok {
		if rssi, isInt := v.Value().(int16); isInt {
			d.RSSI = rssi
			d.HasRSSI = true
		}
	}
	return d
}

// Devices lists every device BlueZ currently knows about, sorted by
// address.
func Devices(conn *dbus.Conn) ([]Device, error) {
	objs, err := GetManagedObjects(conn)
	if err != nil {
		return nil, err
	}
	var out []Device
	for path, ifaces := range objs {
		props, ok := ifaces[deviceIface]
		if !ok {
			continue
		}
		out = append(out, deviceFromProps(path, props))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out, nil
}

// FindDevice locates a device by MAC address, case-insensitively.
func FindDevice(conn *dbus.Conn, addr string) (Device, error) {
	devices, err := Devices(conn)
	if err != nil {
		return Device{}, err
	}
	for _, d := range devices {
		if strings.EqualFold(d.Address, addr) {
			return d, nil
		}
	}
	return Device{}, &DeviceNotFoundError{Address: strings.ToUpper(addr)}
}

// ConnectDevice asks BlueZ to connect the device.
func ConnectDevice(conn *dbus.Conn, device dbus.ObjectPath) error {
	return conn.Object(busName, device).Call(deviceIface+".Connect", 0).Err
}

// DisconnectDevice asks BlueZ to disconnect the device.
func DisconnectDevice(conn *dbus.Conn, device dbus.ObjectPath) error {
	return conn.Object(busName, device).Call(deviceIface+".Disconnect", 0).Err
}

// WaitServicesResolved polls the ServicesResolved property until it turns
// true or the timeout expires. GATT children only appear in the object
// tree once resolution has finished.
func WaitServicesResolved(conn *dbus.Conn, device dbus.ObjectPath, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		var v dbus.Variant
		err := conn.Object(busName, device).
			Call(propertiesIface+".Get", 0, deviceIface, "ServicesResolved").
			Store(&v)
		if err == nil {
			if resolved, ok := v.Value().(bool); ok && resolved {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("services not resolved within %s", timeout)
}
