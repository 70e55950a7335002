package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tj2904.com/internal/models"
)

func record(id, sortOrder int, slug string) models.Record {
	return models.Record{
		ID:         id,
		Type:       models.KindSoftware,
		SortOrder:  sortOrder,
		Published:  "2023-05-01",
		Slug:       slug,
		Title:      "Project " + slug,
		Repo:       "https://github.com/tj2904/" + slug,
		Stack:      []models.TechRef{{Tech: "Go"}},
		Deployment: []models.TechRef{},
	}
}

func TestNewKeepsDeclaredOrder(t *testing.T) {
	c, err := New([]models.Record{
		record(1, 5, "first"),
		record(2, 1, "second"),
		record(3, 3, "third"),
	})
	require.NoError(t, err)

	var slugs []string
	for _, p := range c.All() {
		slugs = append(slugs, p.Common().Slug)
	}
	assert.Equal(t, []string{"first", "second", "third"}, slugs)
	assert.Equal(t, 3, c.Len())
}

func TestAllReturnsCopy(t *testing.T) {
	c := MustNew([]models.Record{record(1, 1, "a"), record(2, 2, "b")})

	all := c.All()
	all[0], all[1] = all[1], all[0]

	assert.Equal(t, "a", c.All()[0].Common().Slug)
}

func TestAllDoesNotExposeCatalogData(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	sw, ok := c.All()[0].(models.Software)
	require.True(t, ok)
	require.NotEmpty(t, sw.Stack)
	want := sw.Stack[0].Tech
	sw.Stack[0].Tech = "mutated"

	assert.Equal(t, want, c.All()[0].(models.Software).Stack[0].Tech)
	assert.Equal(t, want, c.Records()[0].Stack[0].Tech)
}

func TestNewEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestNewDuplicateSlug(t *testing.T) {
	_, err := New([]models.Record{record(1, 1, "same"), record(2, 2, "same")})
	require.ErrorIs(t, err, ErrDuplicateSlug)

	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, 1, recErr.Index)
	assert.Equal(t, "same", recErr.Slug)
}

func TestNewDuplicateID(t *testing.T) {
	// Mirrors the source dataset, where kitchen-helper reused id 2.
	_, err := New([]models.Record{
		record(1, 1, "positive-press"),
		record(2, 2, "pp-api"),
		record(2, 20, "kitchen-helper"),
	})
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), "kitchen-helper")
}

func TestNewReportsEveryProblem(t *testing.T) {
	bad := record(2, 2, "bad")
	bad.Type = "video"
	badDate := record(3, 3, "bad-date")
	badDate.Published = "yesterday"

	_, err := New([]models.Record{
		record(1, 1, "ok"),
		bad,
		badDate,
		record(1, 4, "dup-id"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownType)
	assert.ErrorIs(t, err, models.ErrInvalidDate)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestRecordsRoundTrip(t *testing.T) {
	in := []models.Record{record(1, 1, "a"), record(2, 2, "b")}
	c := MustNew(in)
	assert.Equal(t, in, c.Records())
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew(nil) })
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 7, c.Len())

	bySlug := make(map[string]models.Project)
	for _, p := range c.All() {
		bySlug[p.Common().Slug] = p
	}
	require.Contains(t, bySlug, "positive-press")
	assert.Equal(t, models.KindSoftware, bySlug["positive-press"].Kind())
	require.Contains(t, bySlug, "challenges-of-unstructured-data")
	assert.Equal(t, models.KindReport, bySlug["challenges-of-unstructured-data"].Kind())
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id": 1, "type": "report", "sortOrder": 1, "published": "2024-01-02",
		 "slug": "a-report", "title": "A Report", "link": "/assets/a.pdf"}
	]`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	p := c.All()[0]
	assert.Equal(t, models.KindReport, p.Kind())
	assert.Empty(t, p.Common().Image)
	assert.Empty(t, p.Common().Rational)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: 1
  type: software
  sortOrder: 3
  published: "2023-08-12"
  slug: simple-nutrition
  title: Simple Nutrition
  repo: https://www.github.com/tj2904/simple-nutrition
  stack:
    - tech: NextJS
    - tech: PostgreSQL
      explanation: Used for backend database
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	sw, ok := c.All()[0].(models.Software)
	require.True(t, ok)
	assert.Equal(t, "Used for backend database", sw.Stack[1].Explanation)
	assert.Empty(t, sw.Deployment)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	txt := filepath.Join(dir, "projects.txt")
	require.NoError(t, os.WriteFile(txt, []byte("[]"), 0o644))
	_, err = Load(txt)
	assert.ErrorContains(t, err, "unsupported catalog format")

	broken := filepath.Join(dir, "projects.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o644))
	_, err = Load(broken)
	assert.ErrorContains(t, err, "failed to parse projects.json")
}
