package directory_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/stellar-team/internal/directory"
	"github.com/aidar/stellar-team/internal/domain"
)

// record mirrors domain.Member with the constraints every authored entry must satisfy.
type record struct {
	Name        string `validate:"required"`
	Affiliation string `validate:"required"`
	Link        string `validate:"required,http_url"`
	Photo       string `validate:"required,startswith=/"`
}

func TestDefault_Members(t *testing.T) {
	want := []domain.Member{
		{
			Name:        "Boris Grot",
			Affiliation: "University of Edinburgh, United Kingdom",
			Link:        "https://homepages.inf.ed.ac.uk/bgrot/",
			Photo:       "/STeLLAR/static/avatars/boris.jpg",
		},
		{
			Name:        "Dilina Dehigama",
			Affiliation: "University of Edinburgh, United Kingdom",
			Link:        "https://github.com/dilinade",
			Photo:       "/STeLLAR/static/avatars/dilina.jpeg",
		},
		{
			Name:        "Dmitrii Ustiugov",
			Affiliation: "Nanyang Technological University, Singapore",
			Link:        "https://ustiugov.github.io/",
			Photo:       "/STeLLAR/static/avatars/dmitrii.jpeg",
		},
		{
			Name:        "Theodor Amariucai",
			Affiliation: "ETH Zurich, Switzerland",
			Link:        "https://github.com/amariucaitheodor",
			Photo:       "/STeLLAR/static/avatars/theodor.jpeg",
		},
	}

	if diff := cmp.Diff(want, directory.Default().All()); diff != "" {
		t.Errorf("Default().All() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_SameInstance(t *testing.T) {
	assert.Same(t, directory.Default(), directory.Default())
}

func TestDefault_StableAcrossReads(t *testing.T) {
	d := directory.Default()

	first := d.All()
	second := d.All()

	require.Len(t, second, len(first))
	assert.Equal(t, d.Len(), len(first))
	assert.Equal(t, names(first), names(second))
}

func TestDefault_RecordsComplete(t *testing.T) {
	v := validator.New()

	for i, m := range directory.Default().Members() {
		err := v.Struct(record{
			Name:        m.Name,
			Affiliation: m.Affiliation,
			Link:        m.Link,
			Photo:       m.Photo,
		})
		assert.NoError(t, err, "member #%d (%q)", i, m.Name)
		assert.Equal(t, strings.TrimSpace(m.Name), m.Name, "member #%d name not trimmed", i)
		assert.True(t, strings.HasPrefix(m.Link, "http://") || strings.HasPrefix(m.Link, "https://"), "member #%d link %q", i, m.Link)
		assert.True(t, strings.HasPrefix(m.Photo, "/"), "member #%d photo %q", i, m.Photo)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	d := directory.New(domain.Member{Name: "Ada"}, domain.Member{Name: "Grace"})

	got := d.All()
	got[0].Name = "changed"
	got[1] = domain.Member{Name: "replaced"}

	assert.Equal(t, []string{"Ada", "Grace"}, names(d.All()))
	assert.Equal(t, 2, d.Len())
}

func TestNew_CopiesInput(t *testing.T) {
	in := []domain.Member{{Name: "Ada"}}
	d := directory.New(in...)

	in[0].Name = "changed"

	assert.Equal(t, "Ada", d.All()[0].Name)
}

func TestNew_TrimsWhitespace(t *testing.T) {
	d := directory.New(domain.Member{
		Name:        " Theodor Amariucai ",
		Affiliation: " ETH Zurich, Switzerland\n",
		Link:        "\thttps://github.com/amariucaitheodor",
		Photo:       "/STeLLAR/static/avatars/theodor.jpeg ",
	})

	assert.Equal(t, domain.Member{
		Name:        "Theodor Amariucai",
		Affiliation: "ETH Zurich, Switzerland",
		Link:        "https://github.com/amariucaitheodor",
		Photo:       "/STeLLAR/static/avatars/theodor.jpeg",
	}, d.All()[0])
}

func TestNew_AllowsDuplicateNames(t *testing.T) {
	d := directory.New(domain.Member{Name: "Ada"}, domain.Member{Name: "Ada"})
	assert.Equal(t, 2, d.Len())
}

func TestParse(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		d, err := directory.Parse([]byte(`
members:
  - name: Zed
    affiliation: Somewhere, Nowhere
    link: https://example.com/zed
    photo: /img/zed.png
  - name: Amy
    affiliation: Elsewhere, Nowhere
    link: https://example.com/amy
    photo: /img/amy.png
`))
		require.NoError(t, err)
		assert.Equal(t, []string{"Zed", "Amy"}, names(d.All()))
	})

	t.Run("empty document", func(t *testing.T) {
		d, err := directory.Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, d.Len())
		assert.Empty(t, d.All())
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := directory.Parse([]byte("members: [name: {"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse members")
	})
}

func TestMembers_StopsEarly(t *testing.T) {
	d := directory.New(domain.Member{Name: "a"}, domain.Member{Name: "b"}, domain.Member{Name: "c"})

	var seen []string
	for i, m := range d.Members() {
		seen = append(seen, m.Name)
		if i == 1 {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestDefault_ConcurrentReads(t *testing.T) {
	want := names(directory.Default().All())

	var wg sync.WaitGroup
	results := make([][]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = names(directory.Default().All())
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func names(members []domain.Member) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.Name)
	}
	return out
}
