// Package shell implements the interactive line interpreter for Lodge.
// It drives a Storage through plain calls: each line is a command name
// with string arguments, with an alternate dot-notation form
// Class.command(args) accepted for the record commands.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mesh-intelligence/lodge/pkg/types"
)

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "(lodge) "

// Console messages for user mistakes. Commands print these to the error
// writer and keep the session going.
const (
	msgMissingClass = "** class name missing **"
	msgNoClass      = "** class doesn't exist **"
	msgMissingID    = "** instance id missing **"
	msgNoInstance   = "** no instance found **"
	msgMissingAttr  = "** attribute name missing **"
	msgMissingValue = "** value missing **"
)

// Shell is a line-oriented interpreter over a Storage. It owns no
// state beyond the store reference and the streams it talks to.
type Shell struct {
	store  types.Storage
	in     io.Reader
	out    io.Writer
	errs   io.Writer
	prompt string
}

// New returns a Shell reading commands from in and writing results to
// out and user errors to errs.
func New(store types.Storage, in io.Reader, out, errs io.Writer) *Shell {
	return &Shell{
		store:  store,
		in:     in,
		out:    out,
		errs:   errs,
		prompt: DefaultPrompt,
	}
}

// Run reads and executes lines until quit, EOF, or a read error.
func (s *Shell) Run() error {
	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if s.Exec(scanner.Text()) {
			return nil
		}
	}
}

// Exec runs a single command line and reports whether the session
// should end. Empty lines are ignored. System failures (a flush that
// cannot write, for example) are reported on the error stream; the
// session continues either way.
func (s *Shell) Exec(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if rewritten, ok := rewriteDotNotation(line); ok {
		line = rewritten
	}

	args := tokenize(line)
	if len(args) == 0 {
		return false
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "quit", "EOF":
		return true
	case "help":
		s.help()
	case "create":
		s.create(rest)
	case "show":
		s.show(rest)
	case "destroy":
		s.destroy(rest)
	case "all":
		s.all(rest)
	case "count":
		s.count(rest)
	case "update":
		s.update(rest)
	default:
		fmt.Fprintf(s.errs, "*** Unknown syntax: %s\n", line)
	}
	return false
}

func (s *Shell) help() {
	fmt.Fprintln(s.out, "Documented commands:")
	fmt.Fprintln(s.out, "  create <Class>                         create a record and print its id")
	fmt.Fprintln(s.out, "  show <Class> <id>                      print one record")
	fmt.Fprintln(s.out, "  destroy <Class> <id>                   delete a record")
	fmt.Fprintln(s.out, "  all [Class]                            print records, optionally one class")
	fmt.Fprintln(s.out, "  count <Class>                          print the number of records of a class")
	fmt.Fprintln(s.out, "  update <Class> <id> <attr> <value>     set a field and persist")
	fmt.Fprintln(s.out, "  quit                                   end the session")
	fmt.Fprintln(s.out, "Dot notation: Class.all(), Class.count(), Class.show(\"id\"),")
	fmt.Fprintln(s.out, "  Class.destroy(\"id\"), Class.update(\"id\", \"attr\", \"value\")")
}

func (s *Shell) create(args []string) {
	class, ok := s.requireClass(args)
	if !ok {
		return
	}
	r, err := types.NewRecord(class)
	if err != nil {
		fmt.Fprintln(s.errs, msgNoClass)
		return
	}
	s.store.New(r)
	if err := s.store.Save(); err != nil {
		fmt.Fprintln(s.errs, "save:", err)
		return
	}
	fmt.Fprintln(s.out, r.RecordID())
}

func (s *Shell) show(args []string) {
	r, _, ok := s.requireRecord(args)
	if !ok {
		return
	}
	fmt.Fprintln(s.out, r.String())
}

func (s *Shell) destroy(args []string) {
	_, k, ok := s.requireRecord(args)
	if !ok {
		return
	}
	delete(s.store.All(), k)
	if err := s.store.Save(); err != nil {
		fmt.Fprintln(s.errs, "save:", err)
	}
}

func (s *Shell) all(args []string) {
	class := ""
	if len(args) > 0 {
		class = args[0]
		if !types.KnownClass(class) {
			fmt.Fprintln(s.errs, msgNoClass)
			return
		}
	}

	lines := make([]string, 0, len(s.store.All()))
	for _, r := range s.store.All() {
		if class != "" && r.Class() != class {
			continue
		}
		lines = append(lines, r.String())
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(s.out, line)
	}
}

func (s *Shell) count(args []string) {
	class, ok := s.requireClass(args)
	if !ok {
		return
	}
	n := 0
	for _, r := range s.store.All() {
		if r.Class() == class {
			n++
		}
	}
	fmt.Fprintln(s.out, n)
}

func (s *Shell) update(args []string) {
	r, k, ok := s.requireRecord(args)
	if !ok {
		return
	}
	if len(args) < 3 {
		fmt.Fprintln(s.errs, msgMissingAttr)
		return
	}
	if len(args) < 4 {
		fmt.Fprintln(s.errs, msgMissingValue)
		return
	}

	updated, err := types.SetField(r, args[2], args[3])
	if err != nil {
		fmt.Fprintln(s.errs, "update:", err)
		return
	}
	delete(s.store.All(), k)
	s.store.New(updated)
	if err := types.Save(updated, s.store); err != nil {
		fmt.Fprintln(s.errs, "save:", err)
	}
}

// requireClass validates the leading class-name argument.
func (s *Shell) requireClass(args []string) (string, bool) {
	if len(args) == 0 {
		fmt.Fprintln(s.errs, msgMissingClass)
		return "", false
	}
	if !types.KnownClass(args[0]) {
		fmt.Fprintln(s.errs, msgNoClass)
		return "", false
	}
	return args[0], true
}

// requireRecord validates class and id arguments and looks the record up.
func (s *Shell) requireRecord(args []string) (types.Record, string, bool) {
	class, ok := s.requireClass(args)
	if !ok {
		return nil, "", false
	}
	if len(args) < 2 {
		fmt.Fprintln(s.errs, msgMissingID)
		return nil, "", false
	}
	k := class + "." + args[1]
	r, ok := s.store.All()[k]
	if !ok {
		fmt.Fprintln(s.errs, msgNoInstance)
		return nil, "", false
	}
	return r, k, true
}

// rewriteDotNotation converts "Class.command(arg, ...)" into the plain
// "command Class arg ..." form. Returns ok=false when the line is not in
// dot-notation shape, letting malformed lines fall through to the
// unknown-syntax path.
func rewriteDotNotation(line string) (string, bool) {
	dot := strings.Index(line, ".")
	open := strings.Index(line, "(")
	if dot <= 0 || open <= dot+1 || !strings.HasSuffix(line, ")") {
		return "", false
	}

	class := line[:dot]
	command := line[dot+1 : open]
	if strings.ContainsAny(class, " \t") || strings.ContainsAny(command, " \t") {
		return "", false
	}

	parts := []string{command, class}
	inner := strings.TrimSpace(line[open+1 : len(line)-1])
	if inner != "" {
		for _, arg := range strings.Split(inner, ",") {
			arg = strings.TrimSpace(arg)
			arg = strings.Trim(arg, `"`)
			parts = append(parts, quoteIfSpaced(arg))
		}
	}
	return strings.Join(parts, " "), true
}

// quoteIfSpaced re-quotes an argument containing whitespace so that
// tokenize keeps it together.
func quoteIfSpaced(arg string) string {
	if strings.ContainsAny(arg, " \t") {
		return `"` + arg + `"`
	}
	return arg
}

// tokenize splits a command line on whitespace, honoring double-quoted
// tokens so update values may contain spaces.
func tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuote := false
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '"':
			if inQuote {
				tokens = append(tokens, current.String())
				current.Reset()
				inQuote = false
			} else {
				inQuote = true
			}
		case (r == ' ' || r == '\t') && !inQuote:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}
