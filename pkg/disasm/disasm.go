// Package disasm renders resolved class files as text.
//
// Rendering never modifies the class. Instruction operands that point
// outside the constant pool are annotated and skipped over. Any other
// inconsistency ends the listing with an error, including a bad index
// nested inside the entry an operand names and any attribute the renderer
// has no format for. Lines written before the error are left in place.
package disasm

import (
	"fmt"
	"io"

	"github.com/daimatz/gojavap/pkg/classfile"
)

// Options controls what a Disassembler prints.
type Options struct {
	Constants bool // list the constant pool
	Color     bool // highlight names and mnemonics with ANSI colors
}

// Disassembler writes listings to an io.Writer.
type Disassembler struct {
	w    io.Writer
	opts Options
	p    palette
	err  error
}

// New creates a Disassembler writing to w.
func New(w io.Writer, opts Options) *Disassembler {
	p := plainPalette
	if opts.Color {
		p = colorPalette()
	}
	return &Disassembler{w: w, opts: opts, p: p}
}

func (d *Disassembler) printf(format string, args ...interface{}) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

// Disassemble writes the listing of cf, which must already be resolved.
func (d *Disassembler) Disassemble(cf *classfile.ClassFile) error {
	d.err = nil
	if err := d.disassemble(cf); err != nil {
		return err
	}
	return d.err
}

func (d *Disassembler) disassemble(cf *classfile.ClassFile) error {
	pool := cf.ConstantPool

	className, err := cf.ClassName()
	if err != nil {
		return fmt.Errorf("resolving this_class: %w", err)
	}
	d.printf("this_class %s\n", d.p.class(className))
	super, err := cf.SuperClassName()
	if err != nil {
		return fmt.Errorf("resolving super_class: %w", err)
	}
	if super != "" {
		d.printf("super_class %s\n", d.p.class(super))
	}
	d.printf("version %d.%d\n", cf.MajorVersion, cf.MinorVersion)
	if source := cf.SourceFile(); source != "" {
		d.printf("source_file %s\n", source)
	}

	if d.opts.Constants {
		for i, e := range pool {
			if e == nil {
				continue
			}
			desc, err := describeConstant(pool, uint16(i+1))
			if err != nil {
				return fmt.Errorf("constant %d: %w", i+1, err)
			}
			d.printf("const %3d %s\n", i+1, desc)
		}
	}

	for i := range cf.Methods {
		if err := d.method(cf, &cf.Methods[i]); err != nil {
			return fmt.Errorf("method %d: %w", i, err)
		}
	}
	return nil
}

func (d *Disassembler) method(cf *classfile.ClassFile, m *classfile.MethodInfo) error {
	name, descriptor, err := cf.MethodName(m)
	if err != nil {
		return err
	}
	if flags := m.AccessFlags.String(); flags != "" {
		d.printf("method %s %s %s\n", flags, d.p.method(name), descriptor)
	} else {
		d.printf("method %s %s\n", d.p.method(name), descriptor)
	}

	for _, attr := range m.Attributes {
		switch info := attr.Info.(type) {
		case *classfile.CodeAttribute:
			if err := d.code(cf.ConstantPool, info); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		case *classfile.LineNumberTableAttribute:
		default:
			return fmt.Errorf("%s: %w", name, attributeError(cf.ConstantPool, attr))
		}
	}
	return nil
}

func (d *Disassembler) code(pool classfile.ConstantPool, code *classfile.CodeAttribute) error {
	d.printf("  attribute Code max_stack=%d max_locals=%d\n", code.MaxStack, code.MaxLocals)

	for _, attr := range code.Attributes {
		if _, ok := attr.Info.(*classfile.LineNumberTableAttribute); ok {
			continue
		}
		return fmt.Errorf("code: %w", attributeError(pool, attr))
	}

	for _, in := range code.Instructions {
		text, err := formatInstruction(pool, in, d.p)
		if err != nil {
			return err
		}
		d.printf("    %4d: %s\n", in.Offset, text)
	}

	if len(code.ExceptionHandlers) > 0 {
		return fmt.Errorf("%w: exception table rendering", classfile.ErrUnsupported)
	}
	return nil
}

// attributeError reports an attribute the listing has no format for.
func attributeError(pool classfile.ConstantPool, attr classfile.Attribute) error {
	name, err := pool.Utf8(attr.NameIndex)
	if err != nil {
		name = fmt.Sprintf("#%d", attr.NameIndex)
	}
	if _, ok := attr.Info.(*classfile.RawAttribute); ok {
		return fmt.Errorf("%w: %s", classfile.ErrUnresolved, name)
	}
	return fmt.Errorf("%w: rendering %s attribute", classfile.ErrUnsupported, name)
}
