package models

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
)

// DateLayout is the layout of the published field in catalog data
const DateLayout = "2006-01-02"

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Kind discriminates the project variants
type Kind string

const (
	KindSoftware Kind = "software"
	KindReport   Kind = "report"
)

// TechRef names one technology used by a project
type TechRef struct {
	Tech        string `json:"tech" yaml:"tech"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Record is the persisted shape of a catalog entry.
// Optional fields that are missing decode to their zero value.
type Record struct {
	ID          int       `json:"id" yaml:"id"`
	Type        Kind      `json:"type" yaml:"type"`
	SortOrder   int       `json:"sortOrder" yaml:"sortOrder"`
	Published   string    `json:"published" yaml:"published"`
	Slug        string    `json:"slug" yaml:"slug"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Image       string    `json:"image" yaml:"image"`
	Link        string    `json:"link" yaml:"link"`
	Repo        string    `json:"repo" yaml:"repo"`
	Rational    string    `json:"rational" yaml:"rational"`
	Stack       []TechRef `json:"stack" yaml:"stack"`
	Deployment  []TechRef `json:"deployment" yaml:"deployment"`
}

// Project is a validated catalog entry: either Software or Report.
type Project interface {
	Common() Base
	Kind() Kind
	Record() Record
	// Clone returns a copy that shares no slices with the receiver.
	Clone() Project
	isProject()
}

// Base holds the fields shared by every project variant
type Base struct {
	ID          int
	SortOrder   int
	Published   time.Time
	Slug        string
	Title       string
	Description string
	Image       string
	Link        string
	Rational    string
}

// Common returns the shared fields
func (b Base) Common() Base { return b }

func (b Base) record(kind Kind) Record {
	return Record{
		ID:          b.ID,
		Type:        kind,
		SortOrder:   b.SortOrder,
		Published:   b.Published.Format(DateLayout),
		Slug:        b.Slug,
		Title:       b.Title,
		Description: b.Description,
		Image:       b.Image,
		Link:        b.Link,
		Rational:    b.Rational,
		Stack:       []TechRef{},
		Deployment:  []TechRef{},
	}
}

// Software is a deployed or published piece of software.
// Link is the live deployment and may be empty.
type Software struct {
	Base
	Repo       string
	Stack      []TechRef
	Deployment []TechRef
}

// Kind implements Project
func (Software) Kind() Kind { return KindSoftware }

func (Software) isProject() {}

// Clone implements Project
func (s Software) Clone() Project {
	s.Stack = slices.Clone(s.Stack)
	s.Deployment = slices.Clone(s.Deployment)
	return s
}

// Record converts the project back to its persisted shape
func (s Software) Record() Record {
	r := s.record(KindSoftware)
	r.Repo = s.Repo
	r.Stack = slices.Clone(s.Stack)
	r.Deployment = slices.Clone(s.Deployment)
	return r
}

// Report is a written document; Link is the document location.
type Report struct {
	Base
}

// Kind implements Project
func (Report) Kind() Kind { return KindReport }

func (Report) isProject() {}

// Clone implements Project
func (r Report) Clone() Project { return r }

// Record converts the project back to its persisted shape
func (r Report) Record() Record {
	return r.record(KindReport)
}

// FromRecord validates a single record and builds its variant.
// Cross-record invariants (unique slug and id) are checked by the catalog.
func FromRecord(r Record) (Project, error) {
	if r.ID <= 0 {
		return nil, fmt.Errorf("%w: id %d", ErrInvalidOrdering, r.ID)
	}
	if r.SortOrder <= 0 {
		return nil, fmt.Errorf("%w: sortOrder %d", ErrInvalidOrdering, r.SortOrder)
	}
	if !slugPattern.MatchString(r.Slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, r.Slug)
	}
	if strings.TrimSpace(r.Title) == "" {
		return nil, ErrMissingTitle
	}
	published, err := time.Parse(DateLayout, r.Published)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, r.Published)
	}

	base := Base{
		ID:          r.ID,
		SortOrder:   r.SortOrder,
		Published:   published,
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Link:        r.Link,
		Rational:    r.Rational,
	}

	switch r.Type {
	case KindSoftware:
		stack, err := techRefs("stack", r.Stack)
		if err != nil {
			return nil, err
		}
		deployment, err := techRefs("deployment", r.Deployment)
		if err != nil {
			return nil, err
		}
		return Software{
			Base:       base,
			Repo:       r.Repo,
			Stack:      stack,
			Deployment: deployment,
		}, nil
	case KindReport:
		switch {
		case r.Repo != "":
			return nil, fmt.Errorf("%w: repo on a report", ErrFieldNotAllowed)
		case len(r.Stack) > 0:
			return nil, fmt.Errorf("%w: stack on a report", ErrFieldNotAllowed)
		case len(r.Deployment) > 0:
			return nil, fmt.Errorf("%w: deployment on a report", ErrFieldNotAllowed)
		}
		return Report{Base: base}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, r.Type)
	}
}

// techRefs copies refs so the project never shares storage with its source
func techRefs(field string, refs []TechRef) ([]TechRef, error) {
	out := make([]TechRef, len(refs))
	for i, ref := range refs {
		if strings.TrimSpace(ref.Tech) == "" {
			return nil, fmt.Errorf("%w: %s[%d]", ErrEmptyTech, field, i)
		}
		out[i] = ref
	}
	return out, nil
}
