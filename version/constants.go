// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

const Client = "sampler"

// Current is the version of this build.
var Current = &Semantic{
	Major: 0,
	Minor: 3,
	Patch: 0,
}
