package internal

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// FormatCount renders the -c summary line.
func FormatCount(n int) string {
	return fmt.Sprintf("There is(are) %d line(s) in the file that match the pattern.", n)
}

// Run reads cfg.FilePath and writes the result of the filter to w.
// Nothing is written when the file can't be read.
func Run(ctx context.Context, cfg Config, w io.Writer) error {
	var stats RunStats
	stats.Start()

	log := logrus.WithFields(logrus.Fields{"file": cfg.FilePath, "pattern": PatternFor(cfg).Desc()})
	log.WithFields(logrus.Fields{
		"ignore_case": cfg.IgnoreCase,
		"reversed":    cfg.Reversed,
		"line_number": cfg.LineNumber,
		"count":       cfg.Count,
	}).Debug("Run started")

	content, err := ReadContent(ctx, cfg.FilePath)
	if err != nil {
		return err
	}
	stats.BytesRead = len(content)

	bw := bufio.NewWriter(w)
	if cfg.Count {
		stats.Matches, stats.LinesScanned = countMatches(cfg, content)
		if _, err := fmt.Fprintln(bw, FormatCount(stats.Matches)); err != nil {
			return fmt.Errorf("write count: %w", err)
		}
	} else {
		var lines []string
		lines, stats.LinesScanned = searchMatches(cfg, content)
		stats.Matches = len(lines)
		for _, line := range lines {
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	log.WithFields(logrus.Fields{
		"bytes":   stats.BytesRead,
		"lines":   stats.LinesScanned,
		"matches": stats.Matches,
	}).Debugf("Run finished in %s", stats.Elapsed())
	return nil
}
