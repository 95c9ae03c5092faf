package project_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seb-eis/Mocassin-sub007/project"
	"github.com/seb-eis/Mocassin-sub007/symmetry"
	"github.com/seb-eis/Mocassin-sub007/vector"
)

func buildPerovskite(t *testing.T) *project.Model {
	t.Helper()
	d, err := project.LoadFile("testdata/perovskite.yaml")
	require.NoError(t, err)
	c, err := symmetry.DefaultCatalogue()
	require.NoError(t, err)
	m, err := project.Build(d, c, vector.NewRangeComparer(1e-6))
	require.NoError(t, err)

	return m
}

func TestBuild_Perovskite(t *testing.T) {
	m := buildPerovskite(t)

	assert.Equal(t, "perovskite", m.Name)
	assert.Equal(t, 5, m.Cell.Len())
	assert.Len(t, m.Particles, 4)
	assert.Equal(t, "Pm-3m", m.Service.Entry().Specifier)

	require.Len(t, m.Interactions, 3)
	assert.Equal(t, "O-O-O", m.Interactions[0].ID)
	_, err := uuid.Parse(m.Interactions[1].ID)
	assert.NoError(t, err, "unnamed interactions get a uuid")
	assert.True(t, m.Interactions[2].Deprecated)
}

func TestModel_AnalyzeInteractions(t *testing.T) {
	m := buildPerovskite(t)
	a, err := m.Analyzer()
	require.NoError(t, err)

	g, err := a.CreateExtendedPositionGroup(m.Interactions[0])
	require.NoError(t, err)
	assert.Len(t, g.OccupationStates(), 3)
	assert.Len(t, g.EnergyTable(), 2)

	active, err := m.ActiveInteractions(a, zap.NewNop())
	require.NoError(t, err)
	// the second interaction reaches the next oxygen along c at 3.9 Å
	require.Len(t, active, 2)
	assert.Equal(t, "O-O-O", active[0].ID)
	assert.Equal(t, "legacy", active[1].ID)
}

func TestDecode_Validation(t *testing.T) {
	base := `
lattice: {a: 1, b: 1, c: 1, alpha: 90, beta: 90, gamma: 90}
space_group: {index: 1}
particles: [{index: 1, symbol: A}]
particle_sets: [{index: 1, particles: [0, 1]}]
positions: [{vector: [0, 0, 0], set: 1}]
`
	_, err := project.Decode(strings.NewReader(base))
	require.NoError(t, err)

	cases := map[string]string{
		"no group":        strings.Replace(base, "index: 1}\nparticles", "index: 0}\nparticles", 1),
		"void particle":   strings.Replace(base, "[{index: 1, symbol: A}]", "[{index: 0, symbol: A}]", 1),
		"unknown member":  strings.Replace(base, "particles: [0, 1]", "particles: [0, 7]", 1),
		"empty set":       strings.Replace(base, "particles: [0, 1]", "particles: []", 1),
		"unknown set":     strings.Replace(base, "set: 1", "set: 9", 1),
		"bad filter":      base + "filters: [{min: 2, max: 1}]\n",
		"empty geometry":  base + "interactions: [{name: x, center: [0, 0, 0]}]\n",
		"no positions":    strings.Replace(base, "positions: [{vector: [0, 0, 0], set: 1}]", "positions: []", 1),
		"duplicate set":   strings.Replace(base, "[{index: 1, particles: [0, 1]}]", "[{index: 1, particles: [1]}, {index: 1, particles: [0]}]", 1),
		"duplicate index": strings.Replace(base, "[{index: 1, symbol: A}]", "[{index: 1}, {index: 1}]", 1),
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := project.Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, project.ErrInvalidModel)
		})
	}

	_, err = project.Decode(strings.NewReader(base + "colour: red\n"))
	assert.Error(t, err)
	_, err = project.Decode(strings.NewReader(strings.Replace(base, "[0, 0, 0]", "[0, 0]", 1)))
	assert.Error(t, err)
}

func TestBuild_UnknownGroup(t *testing.T) {
	d, err := project.LoadFile("testdata/perovskite.yaml")
	require.NoError(t, err)
	d.SpaceGroup = project.SpaceGroupRef{Index: 230}
	c, err := symmetry.DefaultCatalogue()
	require.NoError(t, err)

	_, err = project.Build(d, c, vector.NewRangeComparer(1e-6))
	assert.ErrorIs(t, err, symmetry.ErrGroupNotFound)

	_, err = project.LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}
