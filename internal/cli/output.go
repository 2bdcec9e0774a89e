package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstour/config"
	"github.com/katalvlaran/mstour/mstour"
)

// Report is the rendered outcome of one run.
type Report struct {
	Points     int     `yaml:"points"`
	Valid      bool    `yaml:"valid"`
	TreeWeight float64 `yaml:"tree_weight"`
	Distance   float64 `yaml:"distance"`
	Tour       []int   `yaml:"tour,flow"`
}

func newReport(m mstour.LinkMap, res mstour.TSResult) Report {
	return Report{
		Points:     m.Count(),
		Valid:      mstour.IsValidTour(m),
		TreeWeight: res.TreeWeight,
		Distance:   mstour.TourDistance(m),
		Tour:       res.Tour,
	}
}

func writeResult(w io.Writer, format string, m mstour.LinkMap, res mstour.TSResult) error {
	r := newReport(m, res)
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encode report")
		}
		return errors.Wrap(enc.Close(), "encode report")
	default:
		return writeText(w, r)
	}
}

func writeText(w io.Writer, r Report) error {
	tour := make([]string, len(r.Tour))
	for i, v := range r.Tour {
		tour[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintf(w, "points: %d\nvalid: %t\ntree weight: %g\ndistance: %g\ntour: %s\n",
		r.Points, r.Valid, r.TreeWeight, r.Distance, strings.Join(tour, " "))

	return errors.Wrap(err, "write report")
}
