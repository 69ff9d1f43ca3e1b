package main

import (
	"context"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"bwestbro.com/summarize"
	"bwestbro.com/summarize/symm"
)

// LoadAll parses files concurrently, at most conf.Jobs at a time, and
// returns their summaries in the same order. The first failure
// cancels the files not yet started
func LoadAll(ctx context.Context, files []string,
	conf Config) ([]*summarize.Summary, error) {
	sums := make([]*summarize.Summary, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(conf.Jobs)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum, err := load(file, conf)
			if err != nil {
				return err
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sums, nil
}

// load reads a single summary, either from SPECTRO output or from the
// JSON written by a previous -json run
func load(file string, conf Config) (*summarize.Summary, error) {
	if strings.EqualFold(filepath.Ext(file), ".json") {
		sum, err := summarize.LoadJSON(file)
		if err != nil {
			return nil, err
		}
		if len(sum.LXM) > 0 &&
			(conf.Reclassify || len(sum.Irreps) != len(sum.LXM)) {
			sum.Classify(symm.Classifier{}, conf.Tolerance)
		}
		return sum, nil
	}
	return summarize.Load(file, symm.Classifier{}, conf.Tolerance)
}
