// Copyright ©2025 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attnbench

import (
	"runtime/debug"
)

const root = "github.com/LynnColeArt/attnbench"

// Version returns the version of attnbench and its checksum. The returned
// values are only valid in binaries built with module support.
//
// The exact version format returned by Version may change in future.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, m := range b.Deps {
		if m.Path == root {
			if m.Replace != nil {
				return m.Replace.Path + " " + m.Replace.Version, m.Replace.Sum
			}
			return m.Version, m.Sum
		}
	}
	return "", ""
}
