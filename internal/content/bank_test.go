package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/plantquiz/internal/quiz"
)

func TestDefaultBank(t *testing.T) {
	b := Default()
	require.NotNil(t, b)
	assert.Equal(t, "v1", SupportedMajor)
	assert.Len(t, b.Questions, 10)

	q, err := b.Quiz()
	require.NoError(t, err)
	assert.Equal(t, 10, q.Len())

	seen := map[quiz.Category]bool{}
	for i := 0; i < q.Len(); i++ {
		question, err := q.Question(i)
		require.NoError(t, err)
		assert.NotEmpty(t, question.Prompt)
		assert.NotEmpty(t, question.Options)
		for _, opt := range question.Options {
			seen[opt.Category] = true
		}
	}
	for _, c := range quiz.AllCategories() {
		assert.Truef(t, seen[c], "category %s is never offered", c)
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"version":`},
		{"missing questions", `{"version":"v1.0.0"}`},
		{"empty questions", `{"version":"v1.0.0","questions":[]}`},
		{"empty options", `{"version":"v1.0.0","questions":[{"prompt":"p","options":[]}]}`},
		{"unknown category", `{"version":"v1.0.0","questions":[{"prompt":"p","options":[{"label":"a","category":"rose"}]}]}`},
		{"extra field", `{"version":"v1.0.0","questions":[{"prompt":"p","options":[{"label":"a","category":"mint","score":2}]}]}`},
		{"bad version", `{"version":"1.0","questions":[{"prompt":"p","options":[{"label":"a","category":"mint"}]}]}`},
		{"unsupported major", `{"version":"v2.0.0","questions":[{"prompt":"p","options":[{"label":"a","category":"mint"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test", []byte(tt.raw))
			require.Error(t, err)

			var vErr *ValidationError
			assert.True(t, errors.As(err, &vErr), "want *ValidationError, got %T", err)
		})
	}
}

func TestParse_Minimal(t *testing.T) {
	raw := `{"version":"v1.4.2","questions":[{"prompt":"Tea or coffee?","options":[
		{"label":"Tea","category":"chamomile"},
		{"label":"Coffee","category":"mint"}]}]}`

	b, err := Parse("test", []byte(raw))
	require.NoError(t, err)

	q, err := b.Quiz()
	require.NoError(t, err)
	question, err := q.Question(0)
	require.NoError(t, err)
	assert.Equal(t, "Tea or coffee?", question.Prompt)
	assert.Equal(t, quiz.Chamomile, question.Options[0].Category)
	assert.Equal(t, quiz.Mint, question.Options[1].Category)
}

func TestResolve(t *testing.T) {
	b, err := Resolve("")
	require.NoError(t, err)
	assert.Len(t, b.Questions, 10)

	dir := t.TempDir()
	path := filepath.Join(dir, "bank.json")
	raw := `{"version":"v1.0.0","questions":[{"prompt":"p","options":[{"label":"a","category":"hinoki"}]}]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	b, err = Resolve(path)
	require.NoError(t, err)
	assert.Len(t, b.Questions, 1)

	_, err = Resolve(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "open question bank"))
}

func TestProfiles_Exhaustive(t *testing.T) {
	for _, c := range quiz.AllCategories() {
		p, ok := ProfileFor(c)
		require.Truef(t, ok, "no profile for %s", c)
		assert.NotEmpty(t, p.Name, c.String())
		assert.Regexp(t, `^#[0-9A-F]{6}$`, p.Accent, c.String())
		assert.NotEmpty(t, p.Description, c.String())
		for _, role := range AllRoles() {
			rel, ok := p.Relations[role]
			require.Truef(t, ok, "%s has no %s relation", c, role)
			assert.NotEmpty(t, rel.Plants)
			for _, other := range rel.Plants {
				assert.True(t, other.Valid())
				assert.NotEqual(t, c, other, "%s should not relate to itself", c)
			}
		}
	}

	_, ok := ProfileFor(quiz.Category(-1))
	assert.False(t, ok)
}
