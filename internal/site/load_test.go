package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
hero:
  title: Ada
  ctas:
    primary: {label: Work, target: "#projects"}
    secondary: {label: Mail, target: "mailto:ada@example.dev"}
contact:
  title: Contact
  email: ada@example.dev
projects:
  title: Projects
  items:
    - id: one
      title: One
`

const minimalJSON = `{
  "hero": {"title": "Ada"},
  "contact": {"title": "Contact"},
  "licenses": {"title": "Licenses", "items": [{"title": "CKA", "issuer": "CNCF"}]}
}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	s, err := Load(writeFile(t, "site.yml", minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "Ada", s.Hero.Title)
	assert.Equal(t, "#projects", s.Hero.CTAs.Primary.Target)
	require.Len(t, s.Projects.Items, 1)
	assert.Nil(t, s.Experience)
}

func TestLoadJSON(t *testing.T) {
	s, err := Load(writeFile(t, "site.json", minimalJSON))
	require.NoError(t, err)

	require.NotNil(t, s.Licenses)
	assert.Equal(t, "CNCF", s.Licenses.Items[0].Issuer)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load(writeFile(t, "site.txt", minimalJSON))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format .txt")
}

func TestLoadReportsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseValidates(t *testing.T) {
	_, err := Parse([]byte(`{"hero": {"title": ""}, "contact": {"title": "c"}}`), FormatJSON)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte(`hero = [`), FormatTOML)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestSampleHasEverySection(t *testing.T) {
	s, err := Sample()
	require.NoError(t, err)
	assert.Equal(t, Order, s.SectionIDs())
	assert.NotEmpty(t, s.Licenses.Items)
}

func TestSectionIDsOmitAbsentOptionalSections(t *testing.T) {
	s, err := Parse([]byte(minimalJSON), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"home", "about", "projects", "licenses", "interest", "contact"},
		s.SectionIDs())
	assert.False(t, s.Has("experience"))
	assert.False(t, s.Has("nope"))
}
