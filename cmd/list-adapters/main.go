// Command list-adapters prints every Bluetooth adapter the BlueZ daemon
// exposes, with address, power state, and the remaining Adapter1
// properties.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"github.com/paigeadelethompson/ble-ctf/pkg/bluez"
)

func main() {
	conn, err := bluez.Connect()
	if err != nil {
		log.Fatalf("connecting to system bus: %v", err)
	}
	defer conn.Close()

	adapters, err := bluez.Adapters(conn)
	if err != nil {
		log.Fatalf("querying BlueZ: %v", err)
	}
	if len(adapters) == 0 {
		log.Warn("no Bluetooth adapters found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INTERFACE\tADDRESS\tSTATE\tDETAILS")
	for _, a := range adapters {
		state := "down"
		if a.Powered {
			state = "up"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Name, a.Address, state, details(a))
	}
	w.Flush()
}

// details flattens the remaining adapter properties into k=v pairs,
// skipping the two that already have columns.
func details(a bluez.Adapter) string {
	keys := make([]string, 0, len(a.Props))
	for k := range a.Props {
		if k == "Address" || k == "Powered" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, a.Props[k].Value()))
	}
	return strings.Join(parts, ", ")
}
