// Command gatt-enum enumerates the GATT characteristics of a device the
// BlueZ daemon already knows about and attempts to read every readable
// one.
//
// Usage: gatt-enum <MAC>
//
// Exit codes: 0 success, 2 usage, 4 bus failure, 5 device not found.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"github.com/paigeadelethompson/ble-ctf/pkg/bluez"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: gatt-enum <MAC>")
		return 2
	}
	mac := os.Args[1]

	conn, err := bluez.Connect()
	if err != nil {
		log.Errorf("connecting to system bus: %v", err)
		return 4
	}
	defer conn.Close()

	dev, err := bluez.FindDevice(conn, mac)
	if err != nil {
		if bluez.IsDeviceNotFound(err) {
			log.Errorf("%v - make sure it is visible to the adapter", err)
			return 5
		}
		log.Errorf("querying BlueZ: %v", err)
		return 4
	}

	chars, err := bluez.Characteristics(conn, dev.Path)
	if err != nil {
		log.Errorf("enumerating characteristics: %v", err)
		return 4
	}
	if len(chars) == 0 {
		log.Warnf("no GATT characteristics under %s (device connected and resolved?)", dev.Path)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "HANDLE\tUUID\tR\tW\tN\tI\tVALUE")
	for _, c := range chars {
		value := ""
		if c.Readable() {
			// read failures are expected for characteristics that
			// demand pairing; leave the cell blank
			if raw, err := bluez.ReadValue(conn, c.Path); err == nil {
				value = bluez.FormatValue(raw)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			bluez.Handle(c.Path), c.UUID,
			yn(c.Readable()), yn(c.Writable()), yn(c.Notifies()), yn(c.Indicates()),
			value)
	}
	w.Flush()
	return 0
}

func yn(b bool) string {
	if b {
		return "Y"
	}
	return ""
}
