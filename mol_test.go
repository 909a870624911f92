package mol

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//water returns a water molecule in a typical geometry.
func water(t *testing.T) *Molecule {
	t.Helper()
	o, err := FromSymbol("O", Vec{0, 0, 0})
	require.NoError(t, err)
	h1, err := FromSymbol("H", Vec{0, 0.757, 0.587})
	require.NoError(t, err)
	h2, err := FromSymbol("H", Vec{0, -0.757, 0.587})
	require.NoError(t, err)
	return NewMolecule([]Atom{o, h1, h2}, Atomic)
}

//methane returns a methane molecule in tetrahedral geometry.
func methane(t *testing.T) *Molecule {
	t.Helper()
	a := 1.0 / math.Sqrt(3)
	symbols := []string{"C", "H", "H", "H", "H"}
	positions := []Vec{{0, 0, 0}, {a, a, a}, {-a, -a, a}, {-a, a, -a}, {a, -a, -a}}
	atoms := make([]Atom, len(symbols))
	for i := range symbols {
		at, err := FromSymbol(symbols[i], positions[i])
		require.NoError(t, err)
		atoms[i] = at
	}
	return NewMolecule(atoms, Atomic)
}

func TestFromSymbol(t *testing.T) {
	at, err := FromSymbol("O", Vec{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, "O", at.Symbol)
	assert.Equal(t, 8, at.Z)
	assert.InDelta(t, 16.00, at.Mass, 1e-12)

	//symbols are case-normalized before the table lookup
	lower, err := FromSymbol("o", Vec{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, at, lower)
	cl, err := FromSymbol("cl", Vec{})
	require.NoError(t, err)
	assert.Equal(t, "Cl", cl.Symbol)
	assert.Equal(t, 17, cl.Z)

	_, err = FromSymbol("Xx", Vec{0, 0, 0})
	require.Error(t, err)
	assert.True(t, IsErrorKind(err, UnknownElement), err)
}

func TestAtomEquality(t *testing.T) {
	a, err := FromSymbol("H", Vec{0, 0, 0})
	require.NoError(t, err)
	b, err := FromSymbol("H", Vec{0, 0, 0})
	require.NoError(t, err)
	assert.True(t, a == b)
	b.Position = Vec{1, 0, 0}
	assert.False(t, a == b)
}

func TestMoleculeIsolation(t *testing.T) {
	atoms := []Atom{{Symbol: "H", Z: 1, Mass: 1.0}}
	m := NewMolecule(atoms, Standard)
	atoms[0].Position = Vec{9, 9, 9}
	assert.Equal(t, Vec{0, 0, 0}, m.Atom(0).Position, "the molecule shares the caller's slice")

	out := m.Atoms()
	out[0].Position = Vec{5, 5, 5}
	assert.Equal(t, Vec{0, 0, 0}, m.Atom(0).Position, "Atoms returns the backing slice")
	assert.Equal(t, Standard, m.Unit())
}

func TestCoordinates(t *testing.T) {
	w := water(t)
	coords := w.Coordinates()
	r, c := coords.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0.757, coords.At(1, 1))

	//the matrix is a copy, not a view into the molecule
	coords.Set(0, 0, 42)
	assert.Equal(t, Vec{0, 0, 0}, w.Atom(0).Position)

	empty := NewMolecule(nil, Atomic)
	assert.Nil(t, empty.Coordinates())
}

func TestCenterOfMass(t *testing.T) {
	w := water(t)
	com, err := w.CenterOfMass()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, com[0], 1e-12)
	assert.InDelta(t, 0.0, com[1], 1e-12)
	//z = 2*1.0*0.587/(16.0+2*1.0)
	assert.InDelta(t, 0.0652222222, com[2], 1e-9)

	empty := NewMolecule(nil, Atomic)
	_, err = empty.CenterOfMass()
	require.Error(t, err)
	assert.True(t, IsErrorKind(err, EmptyMolecule), err)
}

func TestDistanceMatrix(t *testing.T) {
	w := water(t)
	dm := w.DistanceMatrix()
	require.NotNil(t, dm)
	n := dm.SymmetricDim()
	require.Equal(t, 3, n)
	oh := math.Sqrt(0.757*0.757 + 0.587*0.587)
	for i := 0; i < n; i++ {
		assert.Equal(t, 0.0, dm.At(i, i))
		for j := 0; j < n; j++ {
			assert.Equal(t, dm.At(i, j), dm.At(j, i))
		}
	}
	assert.InDelta(t, oh, dm.At(0, 1), 1e-12)
	assert.InDelta(t, oh, dm.At(0, 2), 1e-12)
	assert.InDelta(t, 2*0.757, dm.At(1, 2), 1e-12)

	single := NewMolecule([]Atom{{Symbol: "H", Z: 1, Mass: 1}}, Atomic)
	dm = single.DistanceMatrix()
	require.NotNil(t, dm)
	assert.Equal(t, 1, dm.SymmetricDim())
	assert.Equal(t, 0.0, dm.At(0, 0))

	assert.Nil(t, NewMolecule(nil, Atomic).DistanceMatrix())
}

//h2 builds an H2 molecule with the given bond distance and unit system.
func h2(t *testing.T, d float64, units UnitSystem) *Molecule {
	t.Helper()
	a, err := FromSymbol("H", Vec{0, 0, 0})
	require.NoError(t, err)
	b, err := FromSymbol("H", Vec{0, 0, d})
	require.NoError(t, err)
	return NewMolecule([]Atom{a, b}, units)
}

func TestNuclearRepulsion(t *testing.T) {
	//two protons one Bohr apart repel with exactly one Hartree
	rep, err := h2(t, 1.0, Atomic).NuclearRepulsion()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rep, 1e-12)

	//in Standard units the same numbers mean Angstrom in, eV out
	rep, err = h2(t, 1.0, Standard).NuclearRepulsion()
	require.NoError(t, err)
	assert.InDelta(t, H2eV/A2Bohr, rep, 1e-9)

	w := water(t)
	repw, err := w.NuclearRepulsion()
	require.NoError(t, err)
	assert.Greater(t, repw, 0.0)

	//permuting the atom order does not change the result
	atoms := w.Atoms()
	atoms[0], atoms[2] = atoms[2], atoms[0]
	repp, err := NewMolecule(atoms, Atomic).NuclearRepulsion()
	require.NoError(t, err)
	assert.InDelta(t, repw, repp, 1e-12)
}

func TestNuclearRepulsionFailures(t *testing.T) {
	single := NewMolecule([]Atom{{Symbol: "H", Z: 1, Mass: 1}}, Atomic)
	_, err := single.NuclearRepulsion()
	require.Error(t, err)
	assert.True(t, IsErrorKind(err, InsufficientAtoms), err)

	_, err = NewMolecule(nil, Atomic).NuclearRepulsion()
	require.Error(t, err)
	assert.True(t, IsErrorKind(err, InsufficientAtoms), err)

	overlapping := NewMolecule([]Atom{
		{Symbol: "H", Z: 1, Mass: 1, Position: Vec{1, 2, 3}},
		{Symbol: "H", Z: 1, Mass: 1, Position: Vec{1, 2, 3}},
	}, Atomic)
	_, err = overlapping.NuclearRepulsion()
	require.Error(t, err)
	assert.True(t, IsErrorKind(err, DegenerateGeometry), err)
}

func TestUnitSystemString(t *testing.T) {
	assert.Equal(t, "Atomic", Atomic.String())
	assert.Equal(t, "Standard", Standard.String())
	assert.Equal(t, "SI", SI.String())
}
