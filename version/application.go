// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

// Application is a semantic application version.
type Application struct {
	Name  string
	Major int
	Minor int
	Patch int
}

func (a *Application) String() string {
	return fmt.Sprintf("%s/%d.%d.%d", a.Name, a.Major, a.Minor, a.Patch)
}

// Compare returns a positive number if a > o, 0 if a == o, or a negative
// number if a < o. Names are not compared.
func (a *Application) Compare(o *Application) int {
	if v := a.Major - o.Major; v != 0 {
		return v
	}
	if v := a.Minor - o.Minor; v != 0 {
		return v
	}
	return a.Patch - o.Patch
}
