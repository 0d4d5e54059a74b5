package resources

import (
	"fmt"
	"footballdrivebot/pkg/layout"
	"footballdrivebot/pkg/render"
	"log"
	"os"

	"github.com/pkg/errors"
)

type builder func(filePath string, prims []render.Primitive) error

type Resource struct {
	id      string
	dir     string
	builder builder
	prefix  string
	suffix  string
	_type   string
}

// Store writes field snapshots into a directory served by the webserver.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	// create resources dir if not exists
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "creating resources dir %q", dir)
		}
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) BuildFieldPNG(id string, frame render.Frame) (Resource, error) {
	r := Resource{
		dir:     s.dir,
		builder: layout.BuildFieldPNG,
		prefix:  "field_",
		suffix:  ".png",
		_type:   "field",
	}

	return r.build(id, frame.Primitives)
}

func (s *Store) BuildFieldSVG(id string, frame render.Frame) (Resource, error) {
	r := Resource{
		dir:     s.dir,
		builder: layout.BuildFieldSVG,
		prefix:  "field_",
		suffix:  ".svg",
		_type:   "svg-field",
	}

	return r.build(id, frame.Primitives)
}

func (r Resource) buildFilePath(id string) string {
	return fmt.Sprintf("%s/%s%s%s", r.dir, r.prefix, id, r.suffix)
}

func (r Resource) IsZero() bool {
	return r.id == ""
}

func (r Resource) String() string {
	return fmt.Sprintf("ID: %s, Type: %s", r.id, r._type)
}

func (r Resource) FilePath() string {
	return r.buildFilePath(r.id)
}

func (r Resource) FileName() string {
	return fmt.Sprintf("%s%s%s", r.prefix, r.id, r.suffix)
}

// build always overwrites: a snapshot must reflect the latest history.
func (r *Resource) build(id string, prims []render.Primitive) (Resource, error) {
	if id == "" {
		return *r, fmt.Errorf("id cannot be empty")
	}
	filePath := r.buildFilePath(id)
	if err := r.builder(filePath, prims); err != nil {
		log.Printf("Error building resource: %s\n", err)
		return *r, err
	}

	r.id = id
	return *r, nil
}
