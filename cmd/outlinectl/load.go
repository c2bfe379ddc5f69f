package main

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/outlinekit/pkg/outline"
	"github.com/joshuapare/outlinekit/pkg/snapfile"
)

func inputOptions() snapfile.Options {
	return snapfile.Options{
		Format:   snapfile.Format(inputFormat),
		Encoding: inputEncoding,
	}
}

// loadSnapshot reads one snapshot file.
func loadSnapshot(path string) (*outline.Snapshot[string], error) {
	printVerbose("Loading %s\n", path)
	snap, err := snapfile.Load(path, inputOptions())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return snap, nil
}

// loadPair reads the old and new snapshots concurrently.
func loadPair(oldPath, newPath string) (old, next *outline.Snapshot[string], err error) {
	var g errgroup.Group
	g.Go(func() error {
		var err error
		old, err = loadSnapshot(oldPath)
		return err
	})
	g.Go(func() error {
		var err error
		next, err = loadSnapshot(newPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return old, next, nil
}
