package classfile

import (
	"fmt"
	"io"
	"os"
)

const classMagic = 0xCAFEBABE

// ParseFile opens and parses a .class file from the given path.
func ParseFile(path string) (*ClassFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a .class file from the given reader and returns a ClassFile.
// Attributes are left raw; call ResolveAttributes to interpret them.
func Parse(r io.Reader) (*ClassFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading class file: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes decodes a class file held in memory.
func ParseBytes(data []byte) (*ClassFile, error) {
	r := NewReader(data)
	cf := &ClassFile{}

	// Magic number
	magic, err := r.ReadU4()
	if err != nil {
		return nil, fmt.Errorf("reading magic number: %w", err)
	}
	if magic != classMagic {
		return nil, fmt.Errorf("%w: 0x%X (expected 0xCAFEBABE)", ErrBadMagic, magic)
	}

	// Version
	if cf.MinorVersion, err = r.ReadU2(); err != nil {
		return nil, fmt.Errorf("reading minor version: %w", err)
	}
	if cf.MajorVersion, err = r.ReadU2(); err != nil {
		return nil, fmt.Errorf("reading major version: %w", err)
	}

	// Constant pool
	cpCount, err := r.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("reading constant pool count: %w", err)
	}
	if cf.ConstantPool, err = parseConstantPool(r, cpCount); err != nil {
		return nil, fmt.Errorf("parsing constant pool: %w", err)
	}

	// Access flags, this_class, super_class
	flags, err := r.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("reading access flags: %w", err)
	}
	cf.AccessFlags = AccessFlags(flags)
	if cf.ThisClass, err = r.ReadU2(); err != nil {
		return nil, fmt.Errorf("reading this_class: %w", err)
	}
	if cf.SuperClass, err = r.ReadU2(); err != nil {
		return nil, fmt.Errorf("reading super_class: %w", err)
	}

	// Interfaces and fields are not supported
	interfacesCount, err := r.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("reading interfaces count: %w", err)
	}
	if interfacesCount != 0 {
		return nil, fmt.Errorf("%w: class implements %d interfaces", ErrUnsupported, interfacesCount)
	}
	fieldsCount, err := r.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("reading fields count: %w", err)
	}
	if fieldsCount != 0 {
		return nil, fmt.Errorf("%w: class declares %d fields", ErrUnsupported, fieldsCount)
	}

	// Methods
	methodsCount, err := r.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("reading methods count: %w", err)
	}
	if cf.Methods, err = ReadArray(r, int(methodsCount), parseMethod); err != nil {
		return nil, fmt.Errorf("parsing methods: %w", err)
	}

	// Class-level attributes
	if cf.Attributes, err = readAttributes(r); err != nil {
		return nil, fmt.Errorf("parsing class attributes: %w", err)
	}

	return cf, nil
}

func parseMethod(r *Reader) (MethodInfo, error) {
	var m MethodInfo
	flags, err := r.ReadU2()
	if err != nil {
		return m, fmt.Errorf("reading method access flags: %w", err)
	}
	m.AccessFlags = AccessFlags(flags)
	if m.NameIndex, err = r.ReadU2(); err != nil {
		return m, fmt.Errorf("reading method name index: %w", err)
	}
	if m.DescriptorIndex, err = r.ReadU2(); err != nil {
		return m, fmt.Errorf("reading method descriptor index: %w", err)
	}
	if m.Attributes, err = readAttributes(r); err != nil {
		return m, fmt.Errorf("parsing method attributes: %w", err)
	}
	return m, nil
}

// ResolveAttributes runs the resolution pass over the class's own
// attributes and those of every method.
func (cf *ClassFile) ResolveAttributes() error {
	if err := ResolveAttributes(cf.ConstantPool, cf.Attributes); err != nil {
		return fmt.Errorf("class attributes: %w", err)
	}
	for i := range cf.Methods {
		if err := ResolveAttributes(cf.ConstantPool, cf.Methods[i].Attributes); err != nil {
			return fmt.Errorf("method %d attributes: %w", i, err)
		}
	}
	return nil
}

// SourceFile returns the resolved SourceFile attribute value, or "".
func (cf *ClassFile) SourceFile() string {
	for _, attr := range cf.Attributes {
		if sf, ok := attr.Info.(*SourceFileAttribute); ok {
			return sf.SourceFile
		}
	}
	return ""
}

// MethodName returns the name and descriptor of m.
func (cf *ClassFile) MethodName(m *MethodInfo) (name, descriptor string, err error) {
	if name, err = cf.ConstantPool.Utf8(m.NameIndex); err != nil {
		return "", "", fmt.Errorf("resolving method name: %w", err)
	}
	if descriptor, err = cf.ConstantPool.Utf8(m.DescriptorIndex); err != nil {
		return "", "", fmt.Errorf("resolving method descriptor: %w", err)
	}
	return name, descriptor, nil
}

// FindMethod finds a method by name and descriptor.
func (cf *ClassFile) FindMethod(name, descriptor string) *MethodInfo {
	for i := range cf.Methods {
		n, d, err := cf.MethodName(&cf.Methods[i])
		if err == nil && n == name && d == descriptor {
			return &cf.Methods[i]
		}
	}
	return nil
}

// FindMethodByName finds a method by name only (first match).
func (cf *ClassFile) FindMethodByName(name string) *MethodInfo {
	for i := range cf.Methods {
		if n, err := cf.ConstantPool.Utf8(cf.Methods[i].NameIndex); err == nil && n == name {
			return &cf.Methods[i]
		}
	}
	return nil
}
