package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/tevino/abool/v2"
	"golang.org/x/term"

	"github.com/tysh-sh/tysh/config"
	"github.com/tysh-sh/tysh/log"
	"github.com/tysh-sh/tysh/parser"
	"github.com/tysh-sh/tysh/vm"
)

const version = "0.1.0"

// interrupted is set by the SIGINT handler and drops whatever partial
// input the prompt loop is buffering.
var interrupted = abool.New()

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "c:nv")
	if err != nil {
		usage()
	}

	var command string
	parseOnly := false
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			command = opt.Value
		case 'n':
			parseOnly = true
		case 'v':
			fmt.Println("tysh " + version)
			return
		}
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Warn("%s", err)
	}

	m := vm.New()
	args := os.Args[optind:]

	switch {
	case command != "":
		log.CrashOnError = true
		run(m, command, parseOnly)
	case len(args) == 1:
		log.CrashOnError = true
		runFile(m, args[0], parseOnly)
	case len(args) > 1:
		usage()
	case term.IsTerminal(int(os.Stdin.Fd())):
		runRepl(m, cfg, parseOnly)
	default:
		log.CrashOnError = true
		bytes, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Err("%s", err)
		}
		runScript(m, string(bytes), parseOnly)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: tysh [-nv] [-c command] [file]")
	os.Exit(1)
}

func runRepl(m *vm.VM, cfg config.Config, parseOnly bool) {
	runFile(m, cfg.RcFile, parseOnly)
	m.Interactive = true

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		for range sig {
			interrupted.Set()
		}
	}()

	r := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, prompt(m, cfg))

		input, ok := readCommand(r)
		if !ok {
			fmt.Fprintln(os.Stderr, "^D")
			return
		}
		if interrupted.IsSet() {
			interrupted.UnSet()
			continue
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		run(m, input, parseOnly)
	}
}

// readCommand reads one logical command: a line, plus continuation
// lines while a heredoc is still waiting for its delimiter.
func readCommand(r *bufio.Reader) (string, bool) {
	line, err := r.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", false
	}

	input := strings.TrimSuffix(line, "\n")
	for !parser.IsHeredocComplete(input) {
		if interrupted.IsSet() {
			return "", true
		}
		fmt.Fprint(os.Stderr, "> ")

		more, err := r.ReadString('\n')
		input += "\n" + strings.TrimSuffix(more, "\n")
		if errors.Is(err, io.EOF) {
			break
		}
	}
	return input, true
}

func prompt(m *vm.VM, cfg config.Config) string {
	p := cfg.Prompt
	if status, ok := m.Vars.Get("?"); ok && status != "0" {
		p = fmt.Sprintf("[%s] %s", status, p)
	}
	if cfg.Color {
		return color.GreenString(p)
	}
	return p
}

func runFile(m *vm.VM, path string, parseOnly bool) {
	bytes, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return
	case err != nil:
		log.Err("%s", err)
		return
	}
	runScript(m, string(bytes), parseOnly)
}

// runScript executes a whole script, buffering lines only while a
// heredoc keeps a command open.
func runScript(m *vm.VM, script string, parseOnly bool) {
	buf := ""
	for _, line := range strings.Split(script, "\n") {
		if buf == "" {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			buf = line
		} else {
			buf += "\n" + line
		}

		if parser.IsHeredocComplete(buf) {
			run(m, buf, parseOnly)
			buf = ""
		}
	}
	if buf != "" {
		run(m, buf, parseOnly)
	}
}

func run(m *vm.VM, input string, parseOnly bool) {
	if parseOnly {
		pipe, err := m.Parse(input)
		if err != nil {
			log.Err("%s", err)
			return
		}
		describe(pipe)
		return
	}

	if err := m.RunLine(input); err != nil {
		log.Err("%s", err)
	}
}

func describe(p *parser.Pipeline) {
	for _, seg := range p.Segments {
		fmt.Printf("segment %d: %s", seg.Index, seg.Program)
		for _, a := range seg.Args {
			fmt.Printf(" %q", a)
		}
		fmt.Println()
		for _, r := range seg.Redirs {
			fmt.Printf("  redir %d -> %q\n", r.Type, r.Path)
		}
	}
	if p.Background {
		fmt.Println("background")
	}
}
