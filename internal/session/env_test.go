package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffEnv_OnlyNovelKeys(t *testing.T) {
	base := map[string]string{"HOME": "/home/me", "PATH": "/usr/bin", "LANG": "C"}
	env := map[string]string{
		"HOME":        "/home/me",
		"PATH":        "/opt/bin:/usr/bin", // changed value, still inherited
		"VIRTUAL_ENV": "/home/me/.venv",
		"AWS_PROFILE": "dev",
	}

	diff := DiffEnv(base, env)
	assert.Equal(t, map[string]string{
		"VIRTUAL_ENV": "/home/me/.venv",
		"AWS_PROFILE": "dev",
	}, diff)
	for k, v := range diff {
		assert.NotContains(t, base, k)
		assert.Equal(t, env[k], v)
	}
}

func TestDiffEnv_EmptyInputs(t *testing.T) {
	assert.Empty(t, DiffEnv(nil, nil))
	assert.NotNil(t, DiffEnv(nil, nil))
	assert.Equal(t, map[string]string{"A": "1"}, DiffEnv(nil, map[string]string{"A": "1"}))
	assert.Empty(t, DiffEnv(map[string]string{"A": "x"}, map[string]string{"A": "1"}))
}

func TestDiffEnv_DoesNotMutate(t *testing.T) {
	base := map[string]string{"A": "1"}
	env := map[string]string{"A": "1", "B": "2"}
	_ = DiffEnv(base, env)
	assert.Len(t, base, 1)
	assert.Len(t, env, 2)
}
