// SPDX-License-Identifier: MIT

package scenefile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/Nutek/blender-export-svg/internal/paint"
	"github.com/Nutek/blender-export-svg/internal/scene"
)

// objGroup is one o/g block of an OBJ file resolved to mesh data.
type objGroup struct {
	name      string
	mesh      *scene.Mesh
	materials []scene.Material
}

// objBuilder accumulates one group's faces, remapping the file-global
// vertex list down to the vertices the group actually references.
type objBuilder struct {
	name  string
	remap map[int]int
	verts []math32.Vector3
	faces []scene.Face

	matSlot   map[string]int
	materials []scene.Material
}

func newObjBuilder(name string) *objBuilder {
	return &objBuilder{name: name, remap: map[int]int{}, matSlot: map[string]int{}}
}

func (b *objBuilder) local(global int, all []math32.Vector3) int {
	if li, ok := b.remap[global]; ok {
		return li
	}
	li := len(b.verts)
	b.verts = append(b.verts, all[global])
	b.remap[global] = li
	return li
}

// slot returns the material slot for name, creating it on first use.
// Unnamed faces stay on slot 0 without creating a slot, the renderer
// falls back to the style object color for those.
func (b *objBuilder) slot(name string, colors map[string]paint.Color) int {
	if name == "" {
		return 0
	}
	if si, ok := b.matSlot[name]; ok {
		return si
	}
	c, ok := colors[name]
	if !ok {
		c = paint.RGB(0.8, 0.8, 0.8)
	}
	si := len(b.materials)
	b.materials = append(b.materials, scene.Material{Name: name, Color: c})
	b.matSlot[name] = si
	return si
}

func (b *objBuilder) flush(groups []objGroup) []objGroup {
	if len(b.faces) == 0 {
		return groups
	}
	return append(groups, objGroup{
		name:      b.name,
		mesh:      scene.NewMesh(b.verts, b.faces),
		materials: b.materials,
	})
}

// parseOBJ reads a Wavefront OBJ file into its groups. Vertex indices
// are file-global and 1-based, negative counts from the end; o and g
// lines both start a new group. Directives the exporter has no use for
// (vn, vt, s, l, ...) are skipped.
func parseOBJ(path string) ([]objGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geometry file: %w", err)
	}
	defer f.Close()

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var (
		global []math32.Vector3
		groups []objGroup
		cur    = newObjBuilder(base)
		colors = map[string]paint.Color{}
		curMat string
	)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%s:%d: vertex needs 3 coordinates", path, line)
			}
			var co [3]float32
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: bad vertex coordinate %q: %w", path, line, fields[i+1], err)
				}
				co[i] = float32(v)
			}
			global = append(global, vec3(co))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%s:%d: face needs at least 3 vertices", path, line)
			}
			fv := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				gi, err := objIndex(tok, len(global))
				if err != nil {
					return nil, fmt.Errorf("%s:%d: %w", path, line, err)
				}
				fv = append(fv, cur.local(gi, global))
			}
			cur.faces = append(cur.faces, scene.Face{
				Verts:    fv,
				MatIndex: cur.slot(curMat, colors),
			})

		case "o", "g":
			name := base
			if len(fields) > 1 {
				name = fields[1]
			}
			groups = cur.flush(groups)
			cur = newObjBuilder(name)

		case "usemtl":
			if len(fields) > 1 {
				curMat = fields[1]
			}

		case "mtllib":
			for _, lib := range fields[1:] {
				p := lib
				if !filepath.IsAbs(p) {
					p = filepath.Join(filepath.Dir(path), p)
				}
				if err := parseMTL(p, colors); err != nil {
					return nil, fmt.Errorf("%s:%d: %w", path, line, err)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	groups = cur.flush(groups)
	if len(groups) == 0 {
		return nil, fmt.Errorf("%s: no faces found", path)
	}
	return groups, nil
}

// objIndex resolves a face corner reference (1-based, possibly
// negative, possibly a/b/c form) to a zero-based index into the global
// vertex list.
func objIndex(tok string, nVerts int) (int, error) {
	num := tok
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		num = tok[:i]
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, fmt.Errorf("bad vertex reference %q: %w", tok, err)
	}
	switch {
	case n > 0 && n <= nVerts:
		return n - 1, nil
	case n < 0 && n >= -nVerts:
		return nVerts + n, nil
	default:
		return 0, fmt.Errorf("vertex reference %d out of range (have %d vertices)", n, nVerts)
	}
}

// parseMTL reads newmtl/Kd pairs from a material library into colors.
// Materials without a Kd line keep a neutral gray.
func parseMTL(path string, colors map[string]paint.Color) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open material library: %w", err)
	}
	defer f.Close()

	var cur string
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "newmtl":
			cur = ""
			if len(fields) > 1 {
				cur = fields[1]
				colors[cur] = paint.RGB(0.8, 0.8, 0.8)
			}
		case "Kd":
			if cur == "" {
				continue
			}
			if len(fields) < 4 {
				return fmt.Errorf("%s:%d: Kd needs 3 components", path, line)
			}
			var ch [3]float64
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return fmt.Errorf("%s:%d: bad Kd component %q: %w", path, line, fields[i+1], err)
				}
				ch[i] = v
			}
			colors[cur] = paint.RGB(ch[0], ch[1], ch[2])
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
