/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package jsparse

import "fmt"

const (
	DefaultEcmaVersion = 6
	LatestEcmaVersion  = 15
)

// NormalizeEcmaVersion accepts edition numbers (3, 5, 6..15) and years
// (2015..2024) and returns the edition number.
func NormalizeEcmaVersion(v int) (int, error) {
	switch {
	case v == 0:
		return DefaultEcmaVersion, nil
	case v == 3 || v == 5:
		return v, nil
	case v >= 6 && v <= LatestEcmaVersion:
		return v, nil
	case v >= 2015 && v <= 2009+LatestEcmaVersion:
		return v - 2009, nil
	}
	return 0, fmt.Errorf("unsupported ecmaVersion %d", v)
}
