package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/cam-per/binview/config"
	"github.com/cam-per/binview/utils"
	"github.com/cam-per/binview/view"
	"github.com/sirupsen/logrus"
	urfave "github.com/urfave/cli/v3"
)

func flags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.BoolFlag{
			Name:  "bin",
			Usage: "Show every byte in binary format",
			Action: func(context.Context, *urfave.Command, bool) error {
				return &ConfigError{Err: view.ErrUnsupportedFormat}
			},
		},
		&urfave.BoolFlag{
			Name:  "dec",
			Usage: "Show every byte in decimal format",
		},
		&urfave.BoolFlag{
			Name:    "plain",
			Usage:   "Do not show anything except the file data",
			Sources: urfave.EnvVars("BINVIEW_PLAIN"),
		},
		&urfave.StringFlag{
			Name:    "line",
			Usage:   "Show `n` bytes per line",
			Sources: urfave.EnvVars("BINVIEW_LINE"),
		},
		&urfave.BoolFlag{
			Name:  "text",
			Usage: "Append the printable characters of every line",
		},
		&urfave.StringFlag{
			Name:  "charset",
			Usage: "Decode the text column with the IANA `charset` (e.g. IBM866)",
		},
		&urfave.BoolFlag{
			Name:  "human",
			Usage: "Add a human readable size to the header",
		},
		&urfave.Int64Flag{
			Name:  "skip",
			Usage: "Start at byte `offset` of the file",
		},
		&urfave.Int64Flag{
			Name:  "count",
			Usage: "Show at most `n` bytes",
			Value: -1,
		},
		&urfave.StringFlag{
			Name:      "config",
			Usage:     "Read defaults from a YAML `file`",
			Sources:   urfave.EnvVars("BINVIEW_CONFIG"),
			TakesFile: true,
		},
		&urfave.BoolFlag{
			Name:  "verbose",
			Usage: "Log debug information to stderr",
		},
	}
}

type options struct {
	view  view.Config
	skip  int64
	count int64
}

// resolve merges flags, environment and the optional config file into the
// view configuration. Flags win over the file.
func resolve(cmd *urfave.Command, log *logrus.Logger) (options, error) {
	opts := options{
		skip:  cmd.Int64("skip"),
		count: cmd.Int64("count"),
	}

	path := cmd.Args().First()
	if path == "" {
		return opts, &ConfigError{Err: ErrMissingPath}
	}
	if extra := cmd.Args().Tail(); len(extra) > 0 {
		log.WithField("args", extra).Debug("ignoring extra arguments")
	}

	defaults := config.Default()
	if file := cmd.String("config"); file != "" {
		var err error
		if defaults, err = config.Read(file); err != nil {
			return opts, &ConfigError{Err: fmt.Errorf("config %s: %w", file, err)}
		}
		log.WithField("file", file).Debug("config loaded")
	}

	format, err := view.ParseFormat(defaults.Format)
	if err != nil {
		return opts, &ConfigError{Err: err}
	}
	if cmd.Bool("dec") {
		format = view.Decimal
	}

	perRow := defaults.Line
	if cmd.IsSet("line") {
		perRow = atoi(cmd.String("line"))
	}

	charset := defaults.Charset
	if cmd.IsSet("charset") {
		charset = cmd.String("charset")
	}
	cm, err := utils.LookupCharmap(charset)
	if err != nil {
		return opts, &ConfigError{Err: err}
	}

	opts.view = view.Config{
		Format:      format,
		BytesPerRow: perRow,
		Plain:       flagOr(cmd, "plain", defaults.Plain),
		FilePath:    path,
		Text:        flagOr(cmd, "text", defaults.Text),
		Charmap:     cm,
		HumanSize:   flagOr(cmd, "human", defaults.Human),
	}
	if err := opts.view.Validate(); err != nil {
		return opts, &ConfigError{Err: err}
	}

	log.WithFields(logrus.Fields{
		"format": opts.view.Format,
		"line":   opts.view.BytesPerRow,
		"plain":  opts.view.Plain,
	}).Debug("config resolved")
	return opts, nil
}

func flagOr(cmd *urfave.Command, name string, fallback bool) bool {
	if cmd.IsSet(name) {
		return cmd.Bool(name)
	}
	return fallback
}

// atoi parses a leading decimal integer the way C's atoi does: leading
// blanks and a sign are accepted, parsing stops at the first non-digit and
// anything unparsable is 0.
func atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func usage(w io.Writer, cmd *urfave.Command) {
	type line struct{ name, desc string }

	var (
		lines []line
		width int
	)
	for _, fl := range cmd.Root().Flags {
		doc, ok := fl.(urfave.DocGenerationFlag)
		if !ok {
			continue
		}
		name := "-" + fl.Names()[0]
		if doc.TakesValue() {
			name += " <" + placeholder(doc.GetUsage()) + ">"
		}
		width = max(width, len(name))
		lines = append(lines, line{name, strings.ReplaceAll(doc.GetUsage(), "`", "")})
	}

	fmt.Fprintf(w, "USAGE: %s <ARGS> [FLAGS]\n", cmd.Root().Name)
	for _, l := range lines {
		fmt.Fprintf(w, "    %-*s %s\n", width, l.name, l.desc)
	}
}

// placeholder returns the back-quoted word of a usage string, as urfave
// does for its own help output.
func placeholder(usage string) string {
	if start := strings.IndexByte(usage, '`'); start >= 0 {
		if end := strings.IndexByte(usage[start+1:], '`'); end >= 0 {
			return usage[start+1 : start+1+end]
		}
	}
	return "value"
}

// dropUnknownFlags removes flags urfave does not know once the file path
// has been seen, so that `binview file -whatever` still renders file.
// Unknown flags before the path are left in place and fail as usage errors.
func dropUnknownFlags(args []string, known []urfave.Flag) []string {
	if len(args) == 0 {
		return args
	}
	takesValue := map[string]bool{}
	for _, fl := range slices.Concat(known, []urfave.Flag{urfave.HelpFlag, urfave.VersionFlag}) {
		if fl == nil {
			continue
		}
		doc, ok := fl.(urfave.DocGenerationFlag)
		for _, name := range fl.Names() {
			takesValue[name] = ok && doc.TakesValue()
		}
	}

	out := []string{args[0]}
	seenPath := false
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' || !unicode.IsLetter(rune(arg[1])) && arg[1] != '-' {
			seenPath = true
			out = append(out, arg)
			continue
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		value, ok := takesValue[name]
		if !ok {
			if !seenPath {
				out = append(out, arg)
			}
			continue
		}
		out = append(out, arg)
		if value && !hasValue && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out
}
