// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package version

const Client = "purechance"

// Current is the version of this build.
var Current = &Application{
	Name:  Client,
	Major: 1,
	Minor: 0,
	Patch: 2,
}
