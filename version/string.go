// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// GitCommit is set in the build script at compile time
var GitCommit string

// String returns the human readable description of this build.
func String() string {
	format := "%s/%s [go=%s"
	args := []interface{}{
		Client,
		Current,
		strings.TrimPrefix(runtime.Version(), "go"),
	}
	if GitCommit != "" {
		format += ", commit=%s"
		args = append(args, GitCommit)
	}
	format += "]\n"
	return fmt.Sprintf(format, args...)
}
