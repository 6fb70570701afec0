package firmware

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// EnsureBackup copies the file at path to path+".bak" unless that backup
// already exists. The first-ever backup is never overwritten by later
// runs: it is a safety net, not a version history. Mode and modification
// time are carried over where the platform allows. Returns the backup
// path and whether a new copy was made.
func EnsureBackup(path string) (bak string, created bool, err error) {
	bak = path + ".bak"
	if _, err := os.Stat(bak); err == nil {
		return bak, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return bak, false, fmt.Errorf("stat backup: %w", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return bak, false, fmt.Errorf("stat original: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return bak, false, fmt.Errorf("read original: %w", err)
	}
	if err := os.WriteFile(bak, data, fi.Mode().Perm()); err != nil {
		return bak, false, fmt.Errorf("write backup: %w", err)
	}
	// metadata preservation is best effort
	_ = os.Chtimes(bak, time.Now(), fi.ModTime())
	return bak, true, nil
}
