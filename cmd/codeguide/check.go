package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Strob0t/codeguide/internal/adapter/yamlfs"
	"github.com/Strob0t/codeguide/internal/config"
	"github.com/Strob0t/codeguide/internal/port/contentsource"
	"github.com/Strob0t/codeguide/internal/service"
)

// runCheck loads the data directory once and prints what it found. It fails
// when the directory is unreadable or any present file could not be parsed.
func runCheck(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	dir := fs.String("dir", "", "data directory (default: content.data_dir from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dir == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		*dir = cfg.Content.DataDir
	}

	info, err := os.Stat(*dir)
	if err != nil {
		return fmt.Errorf("data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", *dir)
	}

	content := service.NewContentService(yamlfs.New(*dir), nil)
	st, err := content.Reload(context.Background(), "check")
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "COLLECTION\tRECORDS\n")
	for _, name := range []string{contentsource.Guide, contentsource.Tools, contentsource.Resources} {
		fmt.Fprintf(tw, "%s\t%d\n", name, st.Counts[name])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, issue := range st.Issues {
		fmt.Fprintf(out, "error: %s (%s): %s\n", issue.Collection, issue.Location, issue.Error)
	}
	if len(st.Issues) > 0 {
		return fmt.Errorf("%d data file(s) could not be loaded", len(st.Issues))
	}
	return nil
}
