package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/abhinav/huffpack/internal/log"
	"github.com/abhinav/huffpack/internal/paniclog"
	"github.com/benbjohnson/clock"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-shellwords"
	homedir "github.com/mitchellh/go-homedir"
	"go.uber.org/multierr"
)

var _version = "dev"

var _main = mainCmd{
	Stdin:   os.Stdin,
	Stdout:  os.Stdout,
	Stderr:  os.Stderr,
	Getenv:  os.Getenv,
	HomeDir: homedir.Dir,
	Clock:   clock.New(),
}

func main() {
	if err := run(&_main, os.Args[1:]); err != nil && err != flag.ErrHelp {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

// _flagsEnv holds options applied before those on the command line.
const _flagsEnv = "HUFFPACK_FLAGS"

func run(cmd *mainCmd, args []string) (err error) {
	if extra := cmd.getenv(_flagsEnv); len(extra) > 0 {
		words, err := shellwords.Parse(extra)
		if err != nil {
			return fmt.Errorf("parse $%v: %w", _flagsEnv, err)
		}
		args = append(words, args...)
	}

	var cfg config
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		name := flag.Name()
		fmt.Fprintf(flag.Output(), _usage, name)
	}
	cfg.RegisterFlags(flag)
	version := flag.Bool("version", false, "")
	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "huffpack version %v\n", _version)
		return nil
	}

	args = flag.Args()
	if len(args) == 0 {
		return fmt.Errorf("please provide a command: %v", strings.Join(commandNames(), ", "))
	}
	name, args := args[0], args[1:]
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments %q", args)
	}

	c, ok := _commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q: must be one of %v", name, strings.Join(commandNames(), ", "))
	}

	return cmd.Run(&cfg, c)
}

type mainCmd struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Getenv  func(string) string    // == os.Getenv
	HomeDir func() (string, error) // == homedir.Dir
	Clock   clock.Clock

	// Reports whether w is a terminal.
	// Defaults to checking *os.File with isatty.
	isTerminal func(io.Writer) bool
}

const _name = "huffpack"

const _usage = `usage: %v [options] command

Compresses text with Huffman coding.

The following commands are available:

	compress
		compress text and write the encoded bits and code table as JSON.
			{"encodedText": "0110...", "codeTable": {"a": "0", ...}}
	decompress
		read JSON written by compress and write the original text as
		JSON.
			{"text": "..."}
	pack
		compress text into a compact binary archive.
	unpack
		read an archive written by pack and write the original text.
	table
		list the code assigned to every character of the text.

The following flags are available:

	-i FILE
		file to read input from.
		Uses stdin by default.
	-o FILE
		file to write output to.
		Uses stdout by default.
	-json-input
		read the text for compress as JSON instead of raw text.
			{"text": "..."}
	-codec NAME
		algorithm used to compress the code table inside archives.
		One of none, zstd, s2, lz4. Uses zstd by default.
	-max-input BYTES
		largest input accepted, in bytes.
		Uses 16 MiB by default.
	-pretty
		indent JSON output, highlighting it if writing to a terminal.
	-stats
		log compression statistics.
	-config FILE
		YAML file to read defaults for these flags from.
		Uses $HUFFPACK_CONFIG or ~/.config/huffpack/config.yaml by
		default.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
	-version
		display version information.

Options in $HUFFPACK_FLAGS are applied before those on the command line.
`

func (cmd *mainCmd) init() {
	if cmd.Getenv == nil {
		cmd.Getenv = os.Getenv
	}
	if cmd.HomeDir == nil {
		cmd.HomeDir = homedir.Dir
	}
	if cmd.Clock == nil {
		cmd.Clock = clock.New()
	}
	if cmd.isTerminal == nil {
		cmd.isTerminal = isTerminal
	}
}

func (cmd *mainCmd) getenv(k string) string {
	if cmd.Getenv == nil {
		return os.Getenv(k)
	}
	return cmd.Getenv(k)
}

func (cmd *mainCmd) Run(cfg *config, c command) (err error) {
	cmd.init()

	fileCfg, err := cmd.loadConfig(cfg.ConfigFile)
	if err != nil {
		return err
	}
	if fileCfg != nil {
		cfg.FillFrom(fileCfg)
	}
	cfg.FillFrom(&_defaultConfig)

	stderr := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		f, openErr := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if openErr != nil {
			return fmt.Errorf("open log %q: %v", file, openErr)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		stderr = f
	}

	opts := log.Options{Level: log.Info}
	if cfg.Verbose {
		opts.Level = log.Debug
	}
	if f, ok := stderr.(*os.File); ok && cmd.isTerminal(f) {
		opts.Color = true
		stderr = colorable.NewColorable(f)
	}
	logger := log.New(stderr, &opts)

	defer paniclog.Recover(&err, logger)

	start := cmd.Clock.Now()
	defer func() {
		logger.Debug("finished",
			"command", c.Name,
			"elapsed", cmd.Clock.Since(start),
			"ok", err == nil)
	}()

	s := session{
		Log:    logger,
		Config: cfg,
	}

	in, err := cmd.openInput(cfg.Input)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(in))
	s.Input = in

	out, err := cmd.openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(out))
	s.Output = out
	s.Color = len(cfg.Output) == 0 && cmd.isTerminal(cmd.Stdout)
	if f, ok := cmd.Stdout.(*os.File); ok && s.Color {
		s.Output = nopWriteCloser{colorable.NewColorable(f)}
	}

	logger.Debug("running",
		"command", c.Name,
		"codec", cfg.Codec,
		"maxInput", cfg.MaxInput,
		log.OmitEmpty(slog.String, "input", cfg.Input),
		log.OmitEmpty(slog.String, "output", cfg.Output))
	if err := c.Run(&s); err != nil {
		return fmt.Errorf("%v: %w", c.Name, err)
	}
	return nil
}

func (cmd *mainCmd) openInput(path string) (io.ReadCloser, error) {
	if len(path) == 0 {
		return io.NopCloser(cmd.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func (cmd *mainCmd) openOutput(path string) (io.WriteCloser, error) {
	if len(path) == 0 {
		return nopWriteCloser{cmd.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
