// Package catalog holds the validated, read-only set of portfolio projects.
//
// A Catalog is built once at start-up from a list of records and is never
// mutated afterwards, so it can be shared between requests without locking.
// Construction fails if any record is malformed or if two records share a
// slug or an id.
package catalog

import (
	"errors"
	"fmt"

	"tj2904.com/internal/models"
)

var (
	ErrEmptyCatalog  = errors.New("catalog has no projects")
	ErrDuplicateSlug = errors.New("duplicate slug")
	ErrDuplicateID   = errors.New("duplicate id")
)

// RecordError ties a validation failure to the record that caused it
type RecordError struct {
	Index int
	Slug  string
	Err   error
}

func (e *RecordError) Error() string {
	if e.Slug == "" {
		return fmt.Sprintf("record %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("record %d (%s): %v", e.Index, e.Slug, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Catalog is the ordered collection of all projects
type Catalog struct {
	projects []models.Project
}

// New validates records and builds a Catalog in declared order.
// Every problem found is reported, joined into a single error.
func New(records []models.Record) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	var errs []error
	projects := make([]models.Project, 0, len(records))
	slugs := make(map[string]int, len(records))
	ids := make(map[int]int, len(records))

	for i, rec := range records {
		if first, seen := slugs[rec.Slug]; seen {
			errs = append(errs, &RecordError{
				Index: i,
				Slug:  rec.Slug,
				Err:   fmt.Errorf("%w: also used by record %d", ErrDuplicateSlug, first),
			})
		} else {
			slugs[rec.Slug] = i
		}
		if first, seen := ids[rec.ID]; seen {
			errs = append(errs, &RecordError{
				Index: i,
				Slug:  rec.Slug,
				Err:   fmt.Errorf("%w: %d also used by record %d", ErrDuplicateID, rec.ID, first),
			})
		} else {
			ids[rec.ID] = i
		}

		p, err := models.FromRecord(rec)
		if err != nil {
			errs = append(errs, &RecordError{Index: i, Slug: rec.Slug, Err: err})
			continue
		}
		projects = append(projects, p)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &Catalog{projects: projects}, nil
}

// MustNew is like New but panics on an invalid catalog. Intended for tests
// and fixed datasets.
func MustNew(records []models.Record) *Catalog {
	c, err := New(records)
	if err != nil {
		panic("invalid catalog: " + err.Error())
	}
	return c
}

// All returns every project in declared order.
// Both the slice and the projects are copies; callers may modify them freely.
func (c *Catalog) All() []models.Project {
	out := make([]models.Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = p.Clone()
	}
	return out
}

// Records returns the persisted shape of every project in declared order
func (c *Catalog) Records() []models.Record {
	out := make([]models.Record, len(c.projects))
	for i, p := range c.projects {
		out[i] = p.Record()
	}
	return out
}

// Len returns the number of projects
func (c *Catalog) Len() int {
	return len(c.projects)
}
