package particles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seb-eis/Mocassin-sub007/particles"
)

var (
	oxygen  = particles.Particle{Index: 2, Name: "Oxygen", Symbol: "O", Charge: -2}
	zircon  = particles.Particle{Index: 1, Name: "Zirconium", Symbol: "Zr", Charge: 4}
	yttrium = particles.Particle{Index: 3, Name: "Yttrium", Symbol: "Y", Charge: 3}
)

func TestNewSet_SortsAndDeduplicates(t *testing.T) {
	s, err := particles.NewSet(1, oxygen, particles.Void(), oxygen, zircon)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []particles.Particle{particles.Void(), zircon, oxygen}, s.Particles())
	assert.True(t, s.IsVacancyCapable())
	assert.True(t, s.Contains(oxygen))
	assert.False(t, s.Contains(yttrium))
	assert.Equal(t, "{Vc,Zr,O}", s.String())
}

func TestNewSet_Errors(t *testing.T) {
	_, err := particles.NewSet(-1)
	assert.ErrorIs(t, err, particles.ErrNegativeIndex)

	_, err = particles.NewSet(0, particles.Particle{Index: -3, Name: "bad"})
	assert.ErrorIs(t, err, particles.ErrNegativeIndex)
}

func TestSet_ParticlesIsCopy(t *testing.T) {
	s, err := particles.NewSet(0, oxygen)
	require.NoError(t, err)
	got := s.Particles()
	got[0] = zircon
	assert.Equal(t, oxygen, s.Particles()[0])
}

func TestSymPair_Unordered(t *testing.T) {
	assert.Equal(t, particles.NewSymPair(oxygen, zircon), particles.NewSymPair(zircon, oxygen))
	assert.Equal(t, "Zr-O", particles.NewSymPair(oxygen, zircon).String())
	assert.Negative(t, particles.ComparePairs(particles.NewSymPair(zircon, zircon), particles.NewSymPair(zircon, oxygen)))
}

func TestParticle_String(t *testing.T) {
	assert.Equal(t, "O", oxygen.String())
	assert.Equal(t, "Named", particles.Particle{Index: 4, Name: "Named"}.String())
	assert.Equal(t, "#5", particles.Particle{Index: 5}.String())
	assert.True(t, particles.Void().IsVoid())
}
