package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialMap_Add(t *testing.T) {
	m := NewCredentialMap()

	m.Add("github", "p@ss")
	assert.Equal(t, CredentialMap{"github": "p@ss"}, m)

	m.Add("github", "new")
	assert.Equal(t, CredentialMap{"github": "new"}, m)
}

func TestCredentialMap_Edit(t *testing.T) {
	t.Run("existing account is overwritten", func(t *testing.T) {
		m := CredentialMap{"github": "old"}
		assert.True(t, m.Edit("github", "new"))
		assert.Equal(t, "new", m["github"])
	})

	t.Run("missing account is not inserted", func(t *testing.T) {
		m := CredentialMap{"github": "old"}
		assert.False(t, m.Edit("gitlab", "new"))
		assert.Equal(t, CredentialMap{"github": "old"}, m)
	})
}

func TestCredentialMap_Delete(t *testing.T) {
	m := CredentialMap{"a": "1", "b": "2"}

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("a"))
	assert.Equal(t, CredentialMap{"b": "2"}, m)
}

func TestCredentialMap_Names_Sorted(t *testing.T) {
	m := CredentialMap{"zeta": "1", "alpha": "2", "mid": "3"}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, m.Names())
	assert.Empty(t, NewCredentialMap().Names())
}

func TestCredentialMap_Clone_Independent(t *testing.T) {
	m := CredentialMap{"a": "1"}
	c := m.Clone()
	c["a"] = "changed"
	c["b"] = "2"

	assert.Equal(t, CredentialMap{"a": "1"}, m)
}

func TestCredentialMap_Merge(t *testing.T) {
	m := CredentialMap{"a": "1", "b": "2"}
	n := m.Merge(CredentialMap{"b": "x", "c": "3"})

	assert.Equal(t, 2, n)
	assert.Equal(t, CredentialMap{"a": "1", "b": "x", "c": "3"}, m)
}
