package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/fatih/color"

	"github.com/daimatz/gojavap/pkg/classfile"
	"github.com/daimatz/gojavap/pkg/classpath"
	"github.com/daimatz/gojavap/pkg/disasm"
)

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdout, os.Stderr))
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gojavap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cp := fs.String("cp", os.Getenv("GOJAVAP_CLASSPATH"), "class path of directories, jars and jmods")
	constants := fs.Bool("constants", false, "list the constant pool")
	colored := fs.Bool("color", false, "always highlight the listing with ANSI colors")
	noColor := fs.Bool("no-color", false, "never highlight the listing")
	format := fs.String("format", "text", "output format: text or yaml")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gojavap [options] <file.class | class/Name>\n\n")
		fmt.Fprintln(stderr, "Disassembles a compiled Java class.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log.SetHandler(cli.New(stderr))
	log.SetLevel(log.InfoLevel)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "error: exactly one class argument is required")
		fs.Usage()
		return 2
	}
	if *colored && *noColor {
		fmt.Fprintln(stderr, "error: -color and -no-color are mutually exclusive")
		return 2
	}
	if *format != "text" && *format != "yaml" {
		fmt.Fprintf(stderr, "error: unknown format %q\n", *format)
		return 2
	}

	cf, err := load(fs.Arg(0), *cp)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	opts := disasm.Options{Constants: *constants, Color: useColor(stdout, *colored, *noColor)}
	if *format == "yaml" {
		err = disasm.DumpYAML(stdout, cf, opts)
	} else {
		err = disasm.New(stdout, opts).Disassemble(cf)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// load reads target either as a file path or, failing that, as a binary
// class name looked up on the class path and then in java.base.jmod.
func load(target, cp string) (*classfile.ClassFile, error) {
	if strings.HasSuffix(target, ".class") || isFile(target) {
		log.WithField("path", target).Debug("reading class file")
		cf, err := classfile.ParseFile(target)
		if err != nil {
			return nil, err
		}
		if err := cf.ResolveAttributes(); err != nil {
			return nil, err
		}
		return cf, nil
	}

	if cp == "" {
		cp = "."
	}
	chain, err := classpath.Parse(cp)
	if err != nil {
		return nil, err
	}
	if jmod := classpath.JavaBaseJmod(); jmod != "" {
		log.WithField("jmod", jmod).Debug("using bootstrap classes")
		chain = append(chain, classpath.NewArchive(jmod))
	}

	name := strings.ReplaceAll(target, ".", "/")
	cf, err := classpath.Load(chain, name)
	if errors.Is(err, classpath.ErrClassNotFound) {
		return nil, fmt.Errorf("class %s not found (set -cp, GOJAVAP_CLASSPATH or JAVA_HOME)", target)
	}
	return cf, err
}

// useColor highlights when forced, or by default when stdout is the
// terminal fatih/color detected at startup (it honors NO_COLOR).
func useColor(stdout io.Writer, force, never bool) bool {
	switch {
	case force:
		return true
	case never:
		return false
	}
	return stdout == io.Writer(os.Stdout) && !color.NoColor
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
