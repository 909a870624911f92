package molplot

import (
	"path/filepath"
	"testing"

	mol "github.com/gomol-dev/gomol"
)

func water(Te *testing.T) *mol.Molecule {
	var atoms []mol.Atom
	for _, l := range []struct {
		s string
		p mol.Vec
	}{
		{"O", mol.Vec{0, 0, 0}},
		{"H", mol.Vec{0, 0.757, 0.587}},
		{"H", mol.Vec{0, -0.757, 0.587}},
	} {
		at, err := mol.FromSymbol(l.s, l.p)
		if err != nil {
			Te.Fatal(err)
		}
		atoms = append(atoms, at)
	}
	return mol.NewMolecule(atoms, mol.Atomic)
}

func TestDistanceMap(Te *testing.T) {
	w := water(Te)
	name := filepath.Join(Te.TempDir(), "dist.png")
	if err := DistanceMap(w, "Water distances", name); err != nil {
		Te.Error(err)
	}
	empty := mol.NewMolecule(nil, mol.Atomic)
	if err := DistanceMap(empty, "Nothing", name); err == nil {
		Te.Error("DistanceMap accepted an empty molecule")
	}
}

func TestProjectionXY(Te *testing.T) {
	w := water(Te)
	name := filepath.Join(Te.TempDir(), "proj.png")
	if err := ProjectionXY(w, "Water, xy plane", name); err != nil {
		Te.Error(err)
	}
}
