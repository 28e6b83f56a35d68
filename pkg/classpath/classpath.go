// Package classpath locates class file bytes by binary class name
// (e.g. "java/lang/Object") in directories, jar files and jmod files.
package classpath

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"github.com/daimatz/gojavap/pkg/classfile"
)

// ErrClassNotFound is returned when no source holds the requested class.
var ErrClassNotFound = errors.New("class not found")

// Source supplies raw class file bytes.
type Source interface {
	ReadClass(name string) ([]byte, error)
}

// Dir reads classes from a directory tree. The zero value with Path set is
// ready to use.
type Dir struct {
	Path  string
	cache map[string][]byte
}

// NewDir creates a Dir rooted at path.
func NewDir(path string) *Dir {
	return &Dir{Path: path}
}

func (d *Dir) ReadClass(name string) ([]byte, error) {
	if data, ok := d.cache[name]; ok {
		return data, nil
	}
	path := filepath.Join(d.Path, filepath.FromSlash(name)+".class")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("dir: %s in %s: %w", name, d.Path, ErrClassNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("dir: reading %s: %w", path, err)
	}
	if d.cache == nil {
		d.cache = make(map[string][]byte)
	}
	d.cache[name] = data
	return data, nil
}

// jmodMagic prefixes the zip data of a jmod file.
var jmodMagic = []byte("JM\x01\x00")

// Archive reads classes from a jar or jmod file. The archive is opened
// on first use, so the zero value with Path set is ready to use.
type Archive struct {
	Path      string
	prefix    string
	cache     map[string][]byte
	zipReader *zip.Reader
}

// NewArchive creates an Archive for a .jar or .jmod file.
func NewArchive(path string) *Archive {
	return &Archive{Path: path}
}

func (a *Archive) ensureZipReader() error {
	if a.zipReader != nil {
		return nil
	}

	data, err := os.ReadFile(a.Path)
	if err != nil {
		return fmt.Errorf("archive: reading %s: %w", a.Path, err)
	}

	if bytes.HasPrefix(data, jmodMagic) {
		data = data[len(jmodMagic):]
		a.prefix = "classes/"
	}
	a.zipReader, err = zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("archive: opening zip %s: %w", a.Path, err)
	}
	return nil
}

func (a *Archive) ReadClass(name string) ([]byte, error) {
	if data, ok := a.cache[name]; ok {
		return data, nil
	}

	if err := a.ensureZipReader(); err != nil {
		return nil, err
	}

	target := a.prefix + name + ".class"
	for _, file := range a.zipReader.File {
		if file.Name != target {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("archive: opening %s: %w", target, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("archive: reading %s: %w", target, err)
		}
		if a.cache == nil {
			a.cache = make(map[string][]byte)
		}
		a.cache[name] = data
		return data, nil
	}

	return nil, fmt.Errorf("archive: %s in %s: %w", name, a.Path, ErrClassNotFound)
}

// Chain tries each source in order and returns the first hit.
type Chain []Source

func (c Chain) ReadClass(name string) ([]byte, error) {
	for _, src := range c {
		data, err := src.ReadClass(name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, ErrClassNotFound) {
			return nil, err
		}
		log.WithField("class", name).WithError(err).Debug("not in source")
	}
	return nil, fmt.Errorf("%s: %w", name, ErrClassNotFound)
}

// Parse builds a Chain from a list of directories and archives separated
// by the OS path list separator. Empty elements are skipped.
func Parse(list string) (Chain, error) {
	var chain Chain
	for _, elem := range filepath.SplitList(list) {
		if elem == "" {
			continue
		}
		info, err := os.Stat(elem)
		if err != nil {
			return nil, fmt.Errorf("classpath: %w", err)
		}
		if info.IsDir() {
			chain = append(chain, NewDir(elem))
			continue
		}
		switch strings.ToLower(filepath.Ext(elem)) {
		case ".jar", ".zip", ".jmod":
			chain = append(chain, NewArchive(elem))
		default:
			return nil, fmt.Errorf("classpath: %s is neither a directory nor an archive", elem)
		}
	}
	return chain, nil
}

// JavaBaseJmod locates java.base.jmod from the environment, or returns "".
func JavaBaseJmod() string {
	// 1. Explicit env var
	if env := os.Getenv("JAVA_BASE_JMOD"); env != "" {
		return env
	}
	// 2. JAVA_HOME
	if javaHome := os.Getenv("JAVA_HOME"); javaHome != "" {
		p := filepath.Join(javaHome, "jmods", "java.base.jmod")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	// 3. Glob fallback
	matches, _ := filepath.Glob("/usr/lib/jvm/java-*-openjdk-*/jmods/java.base.jmod")
	if len(matches) > 0 {
		return matches[0]
	}
	return ""
}

// Load reads, parses and resolves the class called name from src.
func Load(src Source, name string) (*classfile.ClassFile, error) {
	data, err := src.ReadClass(name)
	if err != nil {
		return nil, err
	}
	cf, err := classfile.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if err := cf.ResolveAttributes(); err != nil {
		return nil, fmt.Errorf("resolving %s: %w", name, err)
	}
	return cf, nil
}
