package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cam-per/binview/utils"
	"github.com/cam-per/binview/view"
	"github.com/sirupsen/logrus"
	urfave "github.com/urfave/cli/v3"
)

var appVersion = "develop"

var (
	ErrMissingPath = errors.New("please provide the file path argument")
)

// ConfigError is a failure caused by the command line or the config file.
// It is reported together with the usage text.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

// Run parses args, renders the requested file to stdout and reports any
// failure to stderr. It returns the error instead of exiting.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := New(stdout, stderr)
	err := cmd.Run(ctx, dropUnknownFlags(args, cmd.Flags))
	if err != nil {
		report(stderr, cmd, err)
	}
	return err
}

// New builds the root command. Errors are returned from Run untouched.
func New(stdout, stderr io.Writer) *urfave.Command {
	log := newLogger(stderr)

	return &urfave.Command{
		Name:            "binview",
		Usage:           "show the bytes of a file as a grid of numbers",
		ArgsUsage:       "<file>",
		Version:         appVersion,
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags:           flags(),
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfave.Command) error {
			return render(cmd, log)
		},
		OnUsageError: func(ctx context.Context, cmd *urfave.Command, err error, isSubcommand bool) error {
			return &ConfigError{Err: err}
		},
		ExitErrHandler: func(context.Context, *urfave.Command, error) {},
	}
}

func render(cmd *urfave.Command, log *logrus.Logger) error {
	opts, err := resolve(cmd, log)
	if err != nil {
		return err
	}

	buf, err := utils.LoadFile(opts.view.FilePath, opts.skip, opts.count)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"path":   opts.view.FilePath,
		"offset": opts.skip,
		"bytes":  len(buf),
	}).Debug("file loaded")

	if err := view.NewEncoder(cmd.Root().Writer, opts.view).Encode(buf); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.WithFields(logrus.Fields{
		"bytes": len(buf),
		"plain": opts.view.Plain,
	}).Debug("rendered")
	return nil
}

func report(w io.Writer, cmd *urfave.Command, err error) {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		usage(w, cmd)
	}
	fmt.Fprintf(w, "ERROR: %v\n", err)
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}
