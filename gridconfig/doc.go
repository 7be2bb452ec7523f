// SPDX-License-Identifier: MIT

// Package gridconfig reads implicit grid parameters from a file.
//
// Two formats are accepted, chosen by file extension:
//
//	.toml               [grid] origin = [0,0,0], spacing = [1,1,1],
//	                    dimensions = [4,4,4], bounds_checking = true
//	.cfg .ini .gcfg     [grid] origin-x = 0 ... dim-z = 4, bounds-checking = true
//
// Missing keys keep the values of Default. Load validates the result;
// Validate can be called again after command-line overrides.
package gridconfig
