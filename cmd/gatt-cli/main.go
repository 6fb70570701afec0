// Command gatt-cli is an interactive shell over the BlueZ D-Bus object
// tree: list adapters and devices, run discovery, connect, and read or
// write GATT characteristics by object path.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/godbus/dbus/v5"
	log "github.com/sirupsen/logrus"
	env "github.com/xyproto/env/v2"

	"github.com/paigeadelethompson/ble-ctf/pkg/bluez"
)

type shell struct {
	conn    *dbus.Conn
	adapter string
}

func main() {
	adapterName := flag.String("adapter", env.Str("BLECTF_ADAPTER", "hci0"), "adapter to use for discovery")
	flag.Parse()

	conn, err := bluez.Connect()
	if err != nil {
		log.Fatalf("connecting to system bus: %v", err)
	}
	defer conn.Close()

	sh := &shell{conn: conn, adapter: *adapterName}

	fmt.Println("gatt-cli: interactive BlueZ GATT shell (type 'help')")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			sh.help()
		case "adapters":
			sh.adapters()
		case "devices":
			sh.devices()
		case "scan":
			sh.scan(args)
		case "connect":
			sh.connect(args)
		case "disconnect":
			sh.disconnect(args)
		case "chars":
			sh.chars(args)
		case "read":
			sh.read(args)
		case "write":
			sh.write(args)
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q - try 'help'\n", cmd)
		}
	}
}

func (s *shell) help() {
	fmt.Print(`commands:
  adapters                     list BlueZ adapters
  devices                      list known devices
  scan [seconds]               run discovery (default 5s), then list devices
  connect <mac>                connect a device and wait for GATT resolution
  disconnect <mac>             disconnect a device
  chars <mac>                  list GATT characteristics of a device
  read <char-path>             read a characteristic by object path
  write <char-path> <hex>      write hex bytes to a characteristic
  quit                         leave the shell
`)
}

func (s *shell) adapters() {
	adapters, err := bluez.Adapters(s.conn)
	if err != nil {
		log.Errorf("querying BlueZ: %v", err)
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INTERFACE\tADDRESS\tPOWERED")
	for _, a := range adapters {
		fmt.Fprintf(w, "%s\t%s\t%t\n", a.Name, a.Address, a.Powered)
	}
	w.Flush()
}

func (s *shell) devices() {
	devices, err := bluez.Devices(s.conn)
	if err != nil {
		log.Errorf("querying BlueZ: %v", err)
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ADDRESS\tNAME\tRSSI\tCONNECTED")
	for _, d := range devices {
		rssi := ""
		if d.HasRSSI {
			rssi = strconv.Itoa(int(d.RSSI))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", d.Address, d.Name, rssi, d.Connected)
	}
	w.Flush()
}

func (s *shell) scan(args []string) {
	seconds := 5
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Println("usage: scan [seconds]")
			return
		}
		seconds = n
	}
	path := bluez.AdapterPath(s.adapter)
	if err := bluez.StartDiscovery(s.conn, path); err != nil {
		log.Errorf("starting discovery on %s: %v", s.adapter, err)
		return
	}
	fmt.Printf("discovering on %s for %ds...\n", s.adapter, seconds)
	time.Sleep(time.Duration(seconds) * time.Second)
	if err := bluez.StopDiscovery(s.conn, path); err != nil {
		log.Warnf("stopping discovery: %v", err)
	}
	s.devices()
}

func (s *shell) findDevice(args []string, usage string) (bluez.Device, bool) {
	if len(args) != 1 {
		fmt.Println("usage:", usage)
		return bluez.Device{}, false
	}
	dev, err := bluez.FindDevice(s.conn, args[0])
	if err != nil {
		log.Error(err)
		return bluez.Device{}, false
	}
	return dev, true
}

func (s *shell) connect(args []string) {
	dev, ok := s.findDevice(args, "connect <mac>")
	if !ok {
		return
	}
	if err := bluez.ConnectDevice(s.conn, dev.Path); err != nil {
		log.Errorf("connect %s: %v", dev.Address, err)
		return
	}
	if err := bluez.WaitServicesResolved(s.conn, dev.Path, 10*time.Second); err != nil {
		log.Warnf("%s connected but %v", dev.Address, err)
		return
	}
	fmt.Printf("connected to %s\n", dev.Address)
}

func (s *shell) disconnect(args []string) {
	dev, ok := s.findDevice(args, "disconnect <mac>")
	if !ok {
		return
	}
	if err := bluez.DisconnectDevice(s.conn, dev.Path); err != nil {
		log.Errorf("disconnect %s: %v", dev.Address, err)
		return
	}
	fmt.Printf("disconnected from %s\n", dev.Address)
}

func (s *shell) chars(args []string) {
	dev, ok := s.findDevice(args, "chars <mac>")
	if !ok {
		return
	}
	chars, err := bluez.Characteristics(s.conn, dev.Path)
	if err != nil {
		log.Errorf("enumerating characteristics: %v", err)
		return
	}
	if len(chars) == 0 {
		fmt.Println("no characteristics - connect the device first")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tUUID\tFLAGS")
	for _, c := range chars {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Path, c.UUID, strings.Join(c.Flags, ","))
	}
	w.Flush()
}

func (s *shell) read(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: read <char-path>")
		return
	}
	value, err := bluez.ReadValue(s.conn, dbus.ObjectPath(args[0]))
	if err != nil {
		log.Errorf("read %s: %v", args[0], err)
		return
	}
	fmt.Printf("%s (% x)\n", bluez.FormatValue(value), value)
}

func (s *shell) write(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: write <char-path> <hex>")
		return
	}
	data, err := hex.DecodeString(args[1])
	if err != nil {
		fmt.Printf("bad hex %q: %v\n", args[1], err)
		return
	}
	if err := bluez.WriteValue(s.conn, dbus.ObjectPath(args[0]), data); err != nil {
		log.Errorf("write %s: %v", args[0], err)
		return
	}
	fmt.Printf("wrote %d bytes\n", len(data))
}
