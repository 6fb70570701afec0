// Command patch-device-name rewrites the embedded device name inside a
// PlatformIO firmware binary. The marker string is searched for first;
// when absent, the Complete Local Name field is located structurally in
// the raw advertising buffer.
//
// Exit codes: 0 success, 2 firmware file missing, 3 neither needle nor
// advertising-name field found, 4 new name exceeds the field capacity.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	env "github.com/xyproto/env/v2"

	"github.com/paigeadelethompson/ble-ctf/pkg/firmware"
)

func main() {
	os.Exit(run())
}

func run() int {
	defaultEnv := env.Str("PLATFORMIO_DEFAULT_ENVS", "ble_ctf")

	var (
		name    string
		fwPath  string
		pioEnv  string
		needle  string
		outPath string
	)
	flag.StringVar(&name, "name", "", "new device name (ASCII, required)")
	flag.StringVar(&fwPath, "firmware", "", "path to firmware binary (overrides -env)")
	flag.StringVar(&fwPath, "f", "", "shorthand for -firmware")
	flag.StringVar(&pioEnv, "env", defaultEnv, "PlatformIO env used to locate .pio/build/<env>/firmware.bin")
	flag.StringVar(&pioEnv, "e", defaultEnv, "shorthand for -env")
	flag.StringVar(&needle, "needle", "BLECTF", "existing ASCII needle to find and replace")
	flag.StringVar(&needle, "n", "BLECTF", "shorthand for -needle")
	flag.StringVar(&outPath, "out", "", "output path for patched firmware (defaults to overwrite input)")
	flag.StringVar(&outPath, "o", "", "shorthand for -out")
	flag.Parse()

	if name == "" {
		fmt.Fprintln(os.Stderr, "the -name flag is required")
		flag.Usage()
		return 2
	}
	if !isASCII(name) || !isASCII(needle) {
		fmt.Fprintln(os.Stderr, "name and needle must be ASCII")
		return 2
	}

	if fwPath == "" {
		fwPath = filepath.Join(".pio", "build", pioEnv, "firmware.bin")
	}
	if _, err := os.Stat(fwPath); err != nil {
		fmt.Fprintf(os.Stderr, "Firmware not found: %s\n", fwPath)
		return 2
	}

	data, err := firmware.Load(fwPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", fwPath, err)
		return 1
	}

	// Plan and validate before any disk side effect: a missing pattern
	// or a too-long name must leave both the image and the backup state
	// untouched.
	target, err := firmware.Plan(data, []byte(needle), []byte(name), firmware.DefaultPattern)
	if err != nil {
		switch {
		case firmware.IsPatternNotFound(err):
			fmt.Fprintf(os.Stderr, "%v in %s\n", err, fwPath)
			return 3
		case firmware.IsNameTooLong(err):
			fmt.Fprintln(os.Stderr, err)
			return 4
		default:
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	switch target.Origin {
	case firmware.OriginNeedle:
		occ := firmware.FindAll(data, []byte(needle))
		fmt.Printf("Found needle at offset 0x%x (first of %d)\n", target.Offset, len(occ))
	case firmware.OriginAdvField:
		fmt.Printf("Found adv name field at offset 0x%x (max %d bytes)\n", target.Offset, target.Capacity)
	}
	fmt.Printf("Current name: %q\n", fieldName(data, target))

	patched := firmware.Apply(data, target, []byte(name))

	bak, created, err := firmware.EnsureBackup(fwPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "backup: %v\n", err)
		return 1
	}
	if created {
		fmt.Printf("Backed up original to %s\n", bak)
	}

	if outPath == "" {
		outPath = fwPath
	}
	if err := firmware.Write(outPath, patched); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", outPath, err)
		return 1
	}
	fmt.Printf("Wrote patched firmware to %s\n", outPath)
	fmt.Printf("New name: %q\n", fieldName(patched, target))
	return 0
}

// fieldName returns the NUL-trimmed contents of the target field.
func fieldName(data []byte, t firmware.Target) string {
	s := data[t.Offset : t.Offset+t.Capacity]
	if i := bytes.IndexByte(s, 0x00); i >= 0 {
		s = s[:i]
	}
	return string(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
