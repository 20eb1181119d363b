package colorscheme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/bsmap/colorscheme"
)

func TestForEnvironment(t *testing.T) {
	s := colorscheme.ForEnvironment("KDAEnvironment")
	assert.Equal(t, "KDA", s.Name)
	assert.Equal(t, 1.0, s.EnvColorLeft.R)

	fallback := colorscheme.ForEnvironment("NoSuchEnvironment")
	assert.Equal(t, colorscheme.DefaultName, fallback.Name)
	assert.Equal(t, []any{0.1882353, 0.675294, 1.0}, fallback.EnvColorRight.RGB())
	assert.Equal(t, 1.0, fallback.EnvColorRight.Alpha())
}

func TestEveryEnvironmentResolves(t *testing.T) {
	envs := colorscheme.Environments()
	require.NotEmpty(t, envs)
	for _, env := range envs {
		s := colorscheme.ForEnvironment(env)
		assert.NotNil(t, s.EnvColorLeft, env)
		_, ok := colorscheme.Get(s.Name)
		assert.True(t, ok, env)
	}
}

func TestParseRejectsDanglingEnvironment(t *testing.T) {
	_, _, err := colorscheme.Parse([]byte(`
schemes:
  A:
    envColorLeft: {r: 1, g: 0, b: 0}
    envColorRight: {r: 0, g: 0, b: 1}
environments:
  X: B
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown scheme "B"`)
}

func TestParseRequiresEnvironmentColors(t *testing.T) {
	_, _, err := colorscheme.Parse([]byte("schemes:\n  A:\n    colorLeft: {r: 1, g: 0, b: 0}\n"))
	require.Error(t, err)
}
