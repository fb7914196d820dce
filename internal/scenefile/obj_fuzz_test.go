// SPDX-License-Identifier: MIT

package scenefile

import (
	"os"
	"path/filepath"
	"testing"
)

func FuzzParseOBJ(f *testing.F) {
	f.Add([]byte(`v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`))
	f.Add([]byte(`o thing
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`))
	f.Add([]byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1/1 2//2 3/3\n"))
	f.Add([]byte("mtllib nowhere.mtl\nusemtl ghost\n"))
	f.Add([]byte("g\no\nf 99999999 1 1\n"))
	f.Add([]byte("f -9223372036854775808 1 2\n"))
	f.Add([]byte(""))
	f.Add([]byte("\x00\xff\xfe not an obj"))

	f.Fuzz(func(t *testing.T, data []byte) {
		path := filepath.Join(t.TempDir(), "fuzz.obj")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		// Malformed input must come back as an error, never a panic.
		groups, err := parseOBJ(path)
		if err != nil {
			return
		}
		for _, g := range groups {
			if g.mesh == nil {
				t.Fatal("parsed group without mesh data")
			}
			for _, face := range g.mesh.Faces {
				for _, vi := range face.Verts {
					if vi < 0 || vi >= len(g.mesh.Verts) {
						t.Fatalf("face references vertex %d of %d", vi, len(g.mesh.Verts))
					}
				}
			}
		}
	})
}
