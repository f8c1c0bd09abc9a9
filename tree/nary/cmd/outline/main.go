// Command outline reads an indented outline and prints it back as
// a pre-order list, a post-order list, or a drawing. Elements can be
// removed while the outline is walked.
//
//	outline [--order pre|post|outline] [--remove ELEM]... [file]
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	orderPre     = "pre"
	orderPost    = "post"
	orderOutline = "outline"
)

type options struct {
	order   string
	remove  []string
	indent  int
	verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "outline [options] [file]",
		Short:         "walk an indented outline as a tree",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.order, "order", "o", orderOutline,
		"output order: pre, post or outline")
	flags.StringArrayVarP(&opts.remove, "remove", "r", nil,
		"remove this element and everything under it (repeatable)")
	flags.IntVar(&opts.indent, "indent", 2, "spaces per level of nesting")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	switch opts.order {
	case orderPre, orderPost, orderOutline:
	default:
		return errors.Errorf("unknown order %q", opts.order)
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening outline")
		}
		defer f.Close()
		in = f
	}

	tr, err := parseOutline(in, opts.indent, log)
	if err != nil {
		return err
	}
	log.WithField("elements", tr.Len()).Debug("outline read")

	if n := prune(tr, opts.order, opts.remove, log); n > 0 {
		log.WithFields(logrus.Fields{
			"removed":   n,
			"remaining": tr.Len(),
		}).Info("pruned outline")
	}

	out := cmd.OutOrStdout()
	switch opts.order {
	case orderPre:
		_, err = fmt.Fprintln(out, tr)
	case orderPost:
		var post []string
		tr.PostOrder(func(e string) bool {
			post = append(post, e)
			return true
		})
		_, err = fmt.Fprintf(out, "[%s]\n", strings.Join(post, ", "))
	case orderOutline:
		_, err = io.WriteString(out, tr.Outline())
	}

	return errors.Wrap(err, "writing output")
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "outline:", err)
		os.Exit(1)
	}
}
