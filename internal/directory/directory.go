// Package directory holds the ordered, read-only list of team members
// shown on the team page.
package directory

import (
	_ "embed"
	"fmt"
	"iter"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aidar/stellar-team/internal/domain"
)

//go:embed members.yaml
var membersYAML []byte

// Directory is an immutable, ordered collection of members. Order is display order.
// A Directory is safe for concurrent use: nothing mutates it after construction.
type Directory struct {
	members []domain.Member
}

type document struct {
	Members []domain.Member `yaml:"members"`
}

var defaultDirectory = sync.OnceValue(func() *Directory {
	d, err := Parse(membersYAML)
	if err != nil {
		panic(fmt.Sprintf("directory: embedded members.yaml: %v", err))
	}
	return d
})

// Default returns the process-wide directory built from the embedded member data.
func Default() *Directory {
	return defaultDirectory()
}

// New builds a directory from the given members, in order. The slice is copied.
func New(members ...domain.Member) *Directory {
	d := &Directory{members: make([]domain.Member, 0, len(members))}
	for _, m := range members {
		d.members = append(d.members, normalize(m))
	}
	return d
}

// Parse builds a directory from a YAML document with a top-level "members" list.
func Parse(data []byte) (*Directory, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse members: %w", err)
	}
	return New(doc.Members...), nil
}

// All returns every member in display order. The returned slice is a copy.
func (d *Directory) All() []domain.Member {
	out := make([]domain.Member, len(d.members))
	copy(out, d.members)
	return out
}

// Len returns the number of members.
func (d *Directory) Len() int {
	return len(d.members)
}

// Members iterates over the members in display order, yielding each position and record.
func (d *Directory) Members() iter.Seq2[int, domain.Member] {
	return func(yield func(int, domain.Member) bool) {
		for i, m := range d.members {
			if !yield(i, m) {
				return
			}
		}
	}
}

// normalize trims surrounding whitespace left over from hand-edited data.
func normalize(m domain.Member) domain.Member {
	return domain.Member{
		Name:        strings.TrimSpace(m.Name),
		Affiliation: strings.TrimSpace(m.Affiliation),
		Link:        strings.TrimSpace(m.Link),
		Photo:       strings.TrimSpace(m.Photo),
	}
}
