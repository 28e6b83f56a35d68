package disasm

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/daimatz/gojavap/pkg/classfile"
)

type classView struct {
	Name        string         `yaml:"name"`
	Super       string         `yaml:"super,omitempty"`
	Version     string         `yaml:"version"`
	AccessFlags string         `yaml:"access_flags"`
	SourceFile  string         `yaml:"source_file,omitempty"`
	Constants   []constantView `yaml:"constants,omitempty"`
	Methods     []methodView   `yaml:"methods"`
}

type constantView struct {
	Index uint16 `yaml:"index"`
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

type methodView struct {
	Name       string    `yaml:"name"`
	Descriptor string    `yaml:"descriptor"`
	Flags      []string  `yaml:"flags,omitempty"`
	Code       *codeView `yaml:"code,omitempty"`
	Other      []string  `yaml:"other_attributes,omitempty"`
}

type codeView struct {
	MaxStack     uint16     `yaml:"max_stack"`
	MaxLocals    uint16     `yaml:"max_locals"`
	Instructions []string   `yaml:"instructions"`
	Lines        []lineView `yaml:"line_numbers,omitempty"`
	Other        []string   `yaml:"other_attributes,omitempty"`
}

type lineView struct {
	PC   uint16 `yaml:"pc"`
	Line uint16 `yaml:"line"`
}

// DumpYAML writes a symbolic view of the resolved class cf as YAML.
// Unlike the text listing it tolerates attributes it cannot render and
// lists them by name.
func DumpYAML(w io.Writer, cf *classfile.ClassFile, opts Options) error {
	view, err := buildView(cf, opts)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func buildView(cf *classfile.ClassFile, opts Options) (*classView, error) {
	pool := cf.ConstantPool
	name, err := cf.ClassName()
	if err != nil {
		return nil, fmt.Errorf("resolving this_class: %w", err)
	}
	super, err := cf.SuperClassName()
	if err != nil {
		return nil, fmt.Errorf("resolving super_class: %w", err)
	}
	view := &classView{
		Name:        name,
		Super:       super,
		Version:     fmt.Sprintf("%d.%d", cf.MajorVersion, cf.MinorVersion),
		AccessFlags: fmt.Sprintf("0x%04x", uint16(cf.AccessFlags)),
		SourceFile:  cf.SourceFile(),
		Methods:     []methodView{},
	}

	if opts.Constants {
		for i, e := range pool {
			if e == nil {
				continue
			}
			index := uint16(i + 1)
			desc, err := describeConstant(pool, index)
			if err != nil {
				return nil, fmt.Errorf("constant %d: %w", index, err)
			}
			view.Constants = append(view.Constants, constantView{
				Index: index,
				Kind:  classfile.TagName(e.Tag()),
				Value: desc,
			})
		}
	}

	for i := range cf.Methods {
		m := &cf.Methods[i]
		mname, descriptor, err := cf.MethodName(m)
		if err != nil {
			return nil, fmt.Errorf("method %d: %w", i, err)
		}
		mv := methodView{Name: mname, Descriptor: descriptor, Flags: m.AccessFlags.Names()}
		for _, attr := range m.Attributes {
			if err := checkResolved(pool, attr); err != nil {
				return nil, fmt.Errorf("method %s: %w", mname, err)
			}
			code, ok := attr.Info.(*classfile.CodeAttribute)
			if !ok {
				mv.Other = append(mv.Other, attributeName(pool, attr))
				continue
			}
			cv, err := buildCodeView(pool, code)
			if err != nil {
				return nil, fmt.Errorf("method %s: %w", mname, err)
			}
			mv.Code = cv
		}
		view.Methods = append(view.Methods, mv)
	}
	return view, nil
}

func buildCodeView(pool classfile.ConstantPool, code *classfile.CodeAttribute) (*codeView, error) {
	cv := &codeView{MaxStack: code.MaxStack, MaxLocals: code.MaxLocals, Instructions: []string{}}
	for _, in := range code.Instructions {
		text, err := formatInstruction(pool, in, plainPalette)
		if err != nil {
			return nil, err
		}
		cv.Instructions = append(cv.Instructions, fmt.Sprintf("%d: %s", in.Offset, text))
	}
	for _, attr := range code.Attributes {
		if err := checkResolved(pool, attr); err != nil {
			return nil, fmt.Errorf("code: %w", err)
		}
		lnt, ok := attr.Info.(*classfile.LineNumberTableAttribute)
		if !ok {
			cv.Other = append(cv.Other, attributeName(pool, attr))
			continue
		}
		for _, ln := range lnt.Entries {
			cv.Lines = append(cv.Lines, lineView{PC: ln.StartPC, Line: ln.LineNumber})
		}
	}
	return cv, nil
}

func checkResolved(pool classfile.ConstantPool, attr classfile.Attribute) error {
	if _, ok := attr.Info.(*classfile.RawAttribute); ok {
		return fmt.Errorf("%w: %s", classfile.ErrUnresolved, attributeName(pool, attr))
	}
	return nil
}

func attributeName(pool classfile.ConstantPool, attr classfile.Attribute) string {
	if name, err := pool.Utf8(attr.NameIndex); err == nil {
		return name
	}
	return fmt.Sprintf("#%d", attr.NameIndex)
}
