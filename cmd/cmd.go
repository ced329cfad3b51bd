package cmd

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Shopify/go-lua"
	"github.com/rubiojr/scriptrand/config"
	"github.com/rubiojr/scriptrand/doc"
	"github.com/rubiojr/scriptrand/logger"
	"github.com/rubiojr/scriptrand/luabind"
	"github.com/rubiojr/scriptrand/modules"
	"github.com/rubiojr/scriptrand/rng"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Execute runs the scriptrand CLI with the given version string.
// Import modules via blank imports before calling this function
// so they register via init().
func Execute(version string) {
	if err := newCommand(version).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(version string) *cli.Command {
	return &cli.Command{
		Name:    "scriptrand",
		Usage:   "Run Lua scripts with random number functions",
		Version: version,
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "Seed the generator for reproducible runs (env SCRIPTRAND_SEED)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error (env SCRIPTRAND_LOG_LEVEL)",
			},
		},
		// Allow `scriptrand script.lua` as shorthand for `scriptrand run script.lua`
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 {
				arg := cmd.Args().First()
				if strings.HasSuffix(arg, ".lua") || isLuaScript(arg) {
					s, err := newSession(cmd)
					if err != nil {
						return err
					}
					defer s.close()
					return s.runFile(arg, cmd.Args().Tail())
				}
			}
			return cli.DefaultShowRootCommandHelp(cmd)
		},
		Commands: []*cli.Command{
			{
				Name:            "run",
				Usage:           "Run a Lua script",
				ArgsUsage:       "<file.lua> [args...]",
				SkipFlagParsing: true,
				Action:          runAction,
			},
			{
				Name:      "eval",
				Usage:     "Evaluate a Lua expression and print the result",
				ArgsUsage: "<expr>",
				Action:    evalAction,
			},
			{
				Name:  "doc",
				Usage: "Show the function reference",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "markdown",
						Usage: "Emit markdown",
					},
					&cli.StringFlag{
						Name:  "module",
						Usage: "Show a single module",
					},
				},
				Action: docAction,
			},
		},
	}
}

// session carries what every subcommand needs: configuration, logger and
// the function registry built from the registered modules.
type session struct {
	cfg *config.Config
	log *zap.Logger
	reg *modules.Registry
	out io.Writer
}

func newSession(cmd *cli.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("seed") {
		seed := cmd.Uint64("seed")
		cfg.Seed = &seed
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}

	log, err := logger.Initialize(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	reg, err := modules.Default()
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}
	log.Debug("registry built",
		zap.Strings("modules", modules.Names()),
		zap.Int("functions", len(reg.Funcs())),
		zap.Bool("metadata", modules.Metadata))

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	return &session{cfg: cfg, log: log, reg: reg, out: out}, nil
}

func (s *session) close() {
	_ = s.log.Sync()
}

// state returns a fresh Lua state owning its own generator.
func (s *session) state() *lua.State {
	if s.cfg.Seed != nil {
		s.log.Debug("seeded generator", zap.Uint64("seed", *s.cfg.Seed))
	} else {
		s.log.Debug("entropy seeded generator")
	}
	return luabind.NewState(s.reg, rng.FromSeed(s.cfg.Seed))
}

func (s *session) runFile(path string, args []string) error {
	l := s.state()

	// arg[0] is the script, arg[1..n] its arguments.
	l.CreateTable(len(args), 1)
	l.PushString(path)
	l.RawSetInt(-2, 0)
	for i, a := range args {
		l.PushString(a)
		l.RawSetInt(-2, i+1)
	}
	l.SetGlobal("arg")

	s.log.Debug("running script", zap.String("path", path), zap.Int("args", len(args)))
	if err := lua.DoFile(l, path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (s *session) eval(expr string) error {
	l := s.state()
	if err := lua.DoString(l, "return "+expr); err != nil {
		return err
	}
	results := make([]string, l.Top())
	for i := range results {
		results[i] = formatValue(l, i+1, 0)
	}
	fmt.Fprintln(s.out, strings.Join(results, "\t"))
	return nil
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: scriptrand run <file.lua> [args...]")
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()
	return s.runFile(cmd.Args().First(), cmd.Args().Tail())
}

func evalAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: scriptrand eval <expr>")
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()
	return s.eval(strings.Join(cmd.Args().Slice(), " "))
}

func docAction(ctx context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if name := cmd.String("module"); name != "" {
		m, ok := modules.Get(name)
		if !ok {
			return fmt.Errorf("unknown module %q, available: %s", name, strings.Join(modules.Names(), ", "))
		}
		fmt.Fprint(s.out, doc.FormatModule(m))
		return nil
	}
	if cmd.Bool("markdown") {
		fmt.Fprint(s.out, doc.Markdown(s.reg))
		return nil
	}
	fmt.Fprint(s.out, doc.FormatRegistry(s.reg, s.useColor()))
	return nil
}

// useColor reports whether ANSI output is wanted: NO_COLOR unset and
// stdout attached to a terminal.
func (s *session) useColor() bool {
	if s.cfg.NoColor || s.out != os.Stdout {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// formatValue renders the Lua value at index the way eval prints it.
// Integral numbers print without a fraction; sequences print as [a, b].
func formatValue(l *lua.State, index, depth int) string {
	switch l.TypeOf(index) {
	case lua.TypeNil, lua.TypeNone:
		return "nil"
	case lua.TypeBoolean:
		return strconv.FormatBool(l.ToBoolean(index))
	case lua.TypeNumber:
		n, _ := l.ToNumber(index)
		if i, ok := modules.ToInt(n); ok {
			return strconv.FormatInt(i, 10)
		}
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return fmt.Sprint(n)
		}
		return strconv.FormatFloat(n, 'g', -1, 64)
	case lua.TypeString:
		str, _ := l.ToString(index)
		if depth > 0 {
			return strconv.Quote(str)
		}
		return str
	case lua.TypeTable:
		if depth > 8 {
			return "[...]"
		}
		index = l.AbsIndex(index)
		parts := make([]string, l.RawLength(index))
		for i := range parts {
			l.RawGetInt(index, i+1)
			parts[i] = formatValue(l, -1, depth+1)
			l.Pop(1)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return lua.TypeNameOf(l, index)
	}
}

// isLuaScript checks if a file exists and starts with a shebang.
func isLuaScript(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	buf := make([]byte, 64)
	n, _ := f.Read(buf)
	return strings.HasPrefix(string(buf[:n]), "#!")
}
