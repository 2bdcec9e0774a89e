package cli

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstour/config"
	"github.com/katalvlaran/mstour/mstour"
	"github.com/katalvlaran/mstour/pointmap"
)

func newRunCommand(ctx context.Context, input *Input, out io.Writer) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd.Flags(), input, args)
		if err != nil {
			return err
		}
		level, _ := log.ParseLevel(cfg.LogLevel)
		log.SetLevel(level)

		m, err := loadPoints(cfg)
		if err != nil {
			return err
		}
		log.Debugf("Loaded %d points", m.Count())

		if cfg.SavePoints != "" {
			if err = savePoints(cfg.SavePoints, m); err != nil {
				return err
			}
			log.Debugf("Saved points to %s", cfg.SavePoints)
		}

		if err = ctx.Err(); err != nil {
			return err
		}

		res, err := mstour.Solve(m, solveOptions(cfg)...)
		if err != nil {
			return errors.Wrap(err, "solve")
		}
		log.WithFields(log.Fields{
			"points":      m.Count(),
			"tree_weight": res.TreeWeight,
			"distance":    res.Cost,
		}).Info("Tour built")

		return writeResult(out, cfg.Output, m, res)
	}
}

func loadPoints(cfg config.Config) (*pointmap.Map, error) {
	if cfg.Random > 0 {
		log.Debugf("Generating %d random points (seed %d)", cfg.Random, cfg.Seed)
		return pointmap.Random(cfg.Random, cfg.Seed, cfg.Width, cfg.Height), nil
	}
	log.Debugf("Reading points from %s", cfg.Input)

	return pointmap.Load(cfg.Input)
}

func savePoints(path string, m *pointmap.Map) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err = pointmap.WriteText(f, m); err != nil {
		f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "close %s", path)
}

func solveOptions(cfg config.Config) []mstour.Option {
	var opts []mstour.Option
	if cfg.TwoOpt {
		opts = append(opts, mstour.WithTwoOpt(cfg.TwoOptMaxIters))
	}
	if cfg.Progress {
		opts = append(opts, mstour.WithProgress(func(p mstour.Progress) {
			log.WithFields(log.Fields{
				"iteration": p.Iteration,
				"attached":  p.Attached,
				"remaining": p.Remaining,
				"closed":    p.Closed,
			}).Debug("Leaf attached")
		}))
	}

	return opts
}
