// Package rangecat implements the rangecat command,
// which prints the elements of several sources as one stream.
package rangecat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/multirange/adapter/localfs"
	"go.llib.dev/multirange/pkg/rangekit"
)

const ErrNoSource errorkit.Error = "ErrNoSource"

type Command struct {
	Manifest string `flag:"manifest,m" desc:"YAML file listing the sources, visited before the arguments"`
	Strategy string `flag:"strategy,s" enum:"chain,multi," desc:"traversal strategy, chain or multi"`
	Sep      string `flag:"sep" desc:"separator written after every element"`
	Number   bool   `flag:"number,n" desc:"prefix every element with its position"`

	Config *Config
	Logger *logging.Logger
	// IsTerminal reports whether the output is an interactive terminal.
	IsTerminal func() bool
}

func (cmd Command) Summary() string {
	return "print the elements of every SOURCE as one stream"
}

func (cmd Command) ServeCLI(w cli.Response, r *cli.Request) {
	var (
		ctx = r.Context()
		cfg = cmd.config()
		log = cmd.logger(cfg)
	)

	sources, err := cmd.sources(r.Args)
	if err != nil {
		log.Warn(ctx, "invalid sources", logging.ErrField(err))
		w.ExitCode(cli.ExitCodeBadRequest)
		fmt.Fprintln(errOut(w), err.Error())
		return
	}

	n, stages, err := cmd.run(ctx, log, cfg, w, r.Body, sources)
	if err != nil {
		log.Error(ctx, "rangecat failed", logging.ErrField(err))
		w.ExitCode(cli.ExitCodeError)
		fmt.Fprintln(errOut(w), err.Error())
		return
	}

	log.Info(ctx, "rangecat finished",
		logging.Field("elements", n),
		logging.Field("stages", stages))

	if cmd.isTerminal() {
		fmt.Fprintf(errOut(w), "%d elements from %d stages\n", n, stages)
	}
}

func (cmd Command) config() Config {
	c := defaultConfig()
	if cmd.Config != nil {
		c = *cmd.Config
	}
	if cmd.Strategy != "" {
		c.Strategy = cmd.Strategy
	}
	if cmd.Sep != "" {
		c.Separator = cmd.Sep
	}
	if c.Strategy == "" {
		c.Strategy = StrategyChain
	}
	return c
}

func (cmd Command) logger(cfg Config) *logging.Logger {
	if cmd.Logger != nil {
		return cmd.Logger
	}
	return &logging.Logger{Out: os.Stderr, Level: cfg.LogLevel}
}

func (cmd Command) isTerminal() bool {
	if cmd.IsTerminal != nil {
		return cmd.IsTerminal()
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (cmd Command) sources(args []string) ([]Source, error) {
	var srcs []Source
	if cmd.Manifest != "" {
		f, err := os.Open(cmd.Manifest)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		m, err := ReadManifest(f)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, m.Sources...)
	}
	for _, arg := range args {
		src, err := ParseSource(arg)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, src)
	}
	if len(srcs) == 0 {
		return nil, ErrNoSource.F("at least one SOURCE is required")
	}
	return srcs, nil
}

func (cmd Command) run(ctx context.Context, log *logging.Logger, cfg Config, out io.Writer, stdin io.Reader, sources []Source) (_ int, _ int, returnErr error) {
	o := &opener{
		fsys:  localfs.FileSystem{RootPath: cfg.RootPath},
		stdin: stdin,
	}

	var stages = make([]stage, 0, len(sources))
	defer func() {
		for _, s := range stages {
			returnErr = errorkit.Merge(returnErr, s.close())
		}
	}()
	for _, src := range sources {
		s, err := o.Open(src)
		if err != nil {
			return 0, 0, fmt.Errorf("%s: %w", src.String(), err)
		}
		log.Debug(ctx, "source opened", logging.Field("source", s.name))
		stages = append(stages, s)
	}

	all, err := traverse(cfg.Strategy, stages)
	if err != nil {
		return 0, 0, err
	}
	log.Debug(ctx, "traversal ready",
		logging.Field("strategy", cfg.Strategy),
		logging.Field("stages", len(stages)))

	var (
		bw = bufio.NewWriter(out)
		n  int
	)
	for v := range all {
		n++
		if cmd.Number {
			bw.WriteString(strconv.Itoa(n))
			bw.WriteByte('\t')
		}
		bw.WriteString(v)
		bw.WriteString(cfg.Separator)
	}
	if err := bw.Flush(); err != nil {
		return n, len(stages), err
	}

	var errs []error
	for _, s := range stages {
		if err := s.err(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
		}
	}
	return n, len(stages), errorkit.Merge(errs...)
}

// traverse builds the element stream of the stages with the given strategy.
// Both strategies yield the same elements.
func traverse(strategy string, stages []stage) (iter.Seq[string], error) {
	if len(stages) == 0 {
		return func(yield func(string) bool) {}, nil
	}
	switch strategy {
	case StrategyChain:
		var ss = make([]rangekit.Stage[string], 0, len(stages))
		for _, s := range stages {
			ss = append(ss, s.chain)
		}
		return rangekit.NewChain(ss[0], ss[1:]...).All(), nil

	case StrategyMulti:
		var rs = make([]rangekit.Range[rangekit.ErasedPosition[string], string], 0, len(stages))
		for _, s := range stages {
			rs = append(rs, s.erased)
		}
		return rangekit.New(rs...).All(), nil

	default:
		return nil, fmt.Errorf("unknown strategy: %q", strategy)
	}
}

func errOut(w cli.Response) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		if o := ew.Stderr(); o != nil {
			return o
		}
	}
	return w
}
