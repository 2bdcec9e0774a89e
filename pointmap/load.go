package pointmap

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"
)

// ErrEmptyPointSet is returned when an input holds no points.
var ErrEmptyPointSet = errors.New("pointmap: no points")

// ErrMalformedPoint is returned for a line or entry that is not a finite x, y pair.
var ErrMalformedPoint = errors.New("pointmap: malformed point")

// ErrCountMismatch is returned when a count header disagrees with the number of points read.
var ErrCountMismatch = errors.New("pointmap: point count does not match header")

// Load reads a point file, choosing the format by extension:
// ".yaml" and ".yml" use ReadYAML, anything else uses ReadText.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var m *Map
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err = ReadYAML(f)
	default:
		m, err = ReadText(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return m, nil
}

// ReadText parses whitespace- or comma-separated "x y" lines.
//
// Blank lines and lines starting with '#' are skipped. If the first
// remaining line holds a single integer it is a count header and must match
// the number of points that follow.
func ReadText(r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)
	var (
		points    []r2.Vec
		want      = -1
		lineNo    int
		seenFirst bool
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := splitFields(line)

		if !seenFirst {
			seenFirst = true
			if len(fields) == 1 {
				n, err := strconv.Atoi(fields[0])
				if err != nil || n < 0 {
					return nil, errors.Wrapf(ErrMalformedPoint, "line %d: bad count %q", lineNo, fields[0])
				}
				want = n
				continue
			}
		}

		p, err := parsePair(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read points")
	}

	if want >= 0 && want != len(points) {
		return nil, errors.Wrapf(ErrCountMismatch, "header says %d, read %d", want, len(points))
	}
	if len(points) == 0 {
		return nil, ErrEmptyPointSet
	}

	return New(points), nil
}

type yamlPoint struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
}

type yamlDoc struct {
	Points []yamlPoint `yaml:"points"`
}

// ReadYAML parses a document of the form:
//
//	points:
//	  - {x: 0, y: 0}
//	  - {x: 1, y: 0}
func ReadYAML(r io.Reader) (*Map, error) {
	var doc yamlDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyPointSet
		}

		return nil, errors.Wrap(err, "decode yaml")
	}
	if len(doc.Points) == 0 {
		return nil, ErrEmptyPointSet
	}

	points := make([]r2.Vec, len(doc.Points))
	for i, p := range doc.Points {
		if p.X == nil || p.Y == nil {
			return nil, errors.Wrapf(ErrMalformedPoint, "point %d: missing coordinate", i)
		}
		if !finite(*p.X) || !finite(*p.Y) {
			return nil, errors.Wrapf(ErrMalformedPoint, "point %d: non-finite coordinate", i)
		}
		points[i] = r2.Vec{X: *p.X, Y: *p.Y}
	}

	return New(points), nil
}

// WriteText writes m in the format accepted by ReadText, with a count header.
func WriteText(w io.Writer, m *Map) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", m.Count()); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, p := range m.points {
		x := strconv.FormatFloat(p.X, 'g', -1, 64)
		y := strconv.FormatFloat(p.Y, 'g', -1, 64)
		if _, err := fmt.Fprintf(bw, "%s %s\n", x, y); err != nil {
			return errors.Wrap(err, "write point")
		}
	}

	return errors.Wrap(bw.Flush(), "flush points")
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func parsePair(fields []string) (r2.Vec, error) {
	if len(fields) != 2 {
		return r2.Vec{}, errors.Wrapf(ErrMalformedPoint, "want 2 fields, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || !finite(x) {
		return r2.Vec{}, errors.Wrapf(ErrMalformedPoint, "bad x %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || !finite(y) {
		return r2.Vec{}, errors.Wrapf(ErrMalformedPoint, "bad y %q", fields[1])
	}

	return r2.Vec{X: x, Y: y}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
