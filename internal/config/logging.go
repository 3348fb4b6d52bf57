package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// logTimeLayout sorts lexically in chronological order.
const logTimeLayout = "20060102-150405"

// SetupLogFile opens dir/<prefix>-<timestamp>.log for appending and prunes
// the oldest files with the same prefix so at most keep remain. keep <= 0
// disables pruning. The caller closes the file.
func SetupLogFile(dir, prefix string, keep int) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	name := filepath.Join(dir, fmt.Sprintf("%s-%s.log", prefix, time.Now().UTC().Format(logTimeLayout)))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	if keep > 0 {
		if err := pruneLogs(dir, prefix, keep); err != nil {
			// Logging still works; the directory just grows.
			fmt.Fprintf(os.Stderr, "warning: prune %s logs: %v\n", prefix, err)
		}
	}
	return f, nil
}

func pruneLogs(dir, prefix string, keep int) error {
	files, err := filepath.Glob(filepath.Join(dir, prefix+"-*.log"))
	if err != nil {
		return err
	}
	if len(files) <= keep {
		return nil
	}
	slices.Sort(files)
	for _, old := range files[:len(files)-keep] {
		if err := os.Remove(old); err != nil {
			return fmt.Errorf("remove %s: %w", old, err)
		}
	}
	return nil
}
