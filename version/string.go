// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

// String is the version line printed by the CLI.
func String(commit string) string {
	if commit != "" {
		return fmt.Sprintf("%s [commit=%s]\n", Current, commit)
	}
	return fmt.Sprintf("%s\n", Current)
}
