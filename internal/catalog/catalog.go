package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyID     = errors.New("project id is empty")
	ErrDuplicateID = errors.New("duplicate project id")
)

//go:embed projects.yaml
var defaultProjects []byte

// Catalog is the fixed, ordered list of projects. Order is load order and is the order
// portals are created and tie-broken in.
type Catalog struct {
	projects []Project
	byID     map[string]int
}

// New validates projects (non-empty, unique ids) and returns a catalog holding copies of them.
func New(projects []Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, 0, len(projects)),
		byID:     make(map[string]int, len(projects)),
	}
	for i, p := range projects {
		if p.ID == "" {
			return nil, fmt.Errorf("project %d: %w", i, ErrEmptyID)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("project %q: %w", p.ID, ErrDuplicateID)
		}
		c.byID[p.ID] = len(c.projects)
		c.projects = append(c.projects, p.clone())
	}
	return c, nil
}

// All returns every project in catalog order. The slice is a copy.
func (c *Catalog) All() []Project {
	out := make([]Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = p.clone()
	}
	return out
}

// FindByID returns the project with the given id.
func (c *Catalog) FindByID(id string) (Project, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Project{}, false
	}
	return c.projects[i].clone(), true
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// file is the YAML layout of a catalog file (see projects.yaml).
type file struct {
	Projects []projectDef `yaml:"projects"`
}

type projectDef struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	URL         string   `yaml:"url"`
	Position    struct {
		X float32 `yaml:"x"`
		Y float32 `yaml:"y"`
		Z float32 `yaml:"z"`
	} `yaml:"position"`
	Color string `yaml:"color"`
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	projects := make([]Project, 0, len(f.Projects))
	for _, d := range f.Projects {
		color := RGB{R: 255, G: 255, B: 255}
		if d.Color != "" {
			c, err := ParseColor(d.Color)
			if err != nil {
				return nil, fmt.Errorf("catalog: project %q: %w", d.ID, err)
			}
			color = c
		}
		projects = append(projects, Project{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Tags:        d.Tags,
			URL:         d.URL,
			Position:    mgl32.Vec3{d.Position.X, d.Position.Y, d.Position.Z},
			Color:       color,
		})
	}
	c, err := New(projects)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return c, nil
}

// Load reads and parses a YAML catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return Parse(data)
}

// Default returns the catalog built into the binary.
func Default() *Catalog {
	c, err := Parse(defaultProjects)
	if err != nil {
		panic(err)
	}
	return c
}
