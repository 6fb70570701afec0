// Command scan-ble runs a continuous BLE scan and prints each discovery
// as it arrives. Repeated sightings of the same address are only printed
// again when the advertised name changes. Ctrl-C stops the scan.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"tinygo.org/x/bluetooth"
)

var adapter = bluetooth.DefaultAdapter

func main() {
	duration := flag.Duration("duration", 0, "stop after this long (0 = run until interrupted)")
	flag.Parse()

	if err := adapter.Enable(); err != nil {
		log.Fatalf("enabling BLE stack: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	go func() {
		if *duration > 0 {
			select {
			case <-stop:
			case <-time.After(*duration):
			}
		} else {
			<-stop
		}
		if err := adapter.StopScan(); err != nil {
			log.Errorf("stopping scan: %v", err)
			os.Exit(1)
		}
	}()

	log.Info("scanning for BLE devices, Ctrl-C to stop")
	fmt.Printf("%-17s  %-28s  %6s  %s\n", "ADDRESS", "NAME", "RSSI", "LAST SEEN")

	seen := make(map[string]string)
	err := adapter.Scan(func(a *bluetooth.Adapter, result bluetooth.ScanResult) {
		addr := result.Address.String()
		name := result.LocalName()
		if prev, ok := seen[addr]; ok && prev == name {
			return
		}
		seen[addr] = name
		fmt.Printf("%-17s  %-28s  %6d  %s\n", addr, name, result.RSSI, time.Now().Format("15:04:05"))
	})
	if err != nil {
		log.Fatalf("scan: %v", err)
	}
	log.Infof("scan finished, %d distinct devices seen", len(seen))
}
