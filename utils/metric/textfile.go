// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/randkit/utils/perms"
)

// WriteTextfile writes every metric gathered from [gatherer] to [path] in the
// text exposition format. The file is replaced atomically.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	if err := os.MkdirAll(filepath.Dir(path), perms.ReadWriteExecute); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return os.Chmod(path, perms.ReadWrite)
}
