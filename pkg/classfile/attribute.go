package classfile

import (
	"fmt"

	"github.com/apex/log"
)

// Attribute names with a structured decoder.
const (
	AttrCode            = "Code"
	AttrLineNumberTable = "LineNumberTable"
	AttrSourceFile      = "SourceFile"
)

// readAttribute reads one attribute_info, keeping its payload raw.
func readAttribute(r *Reader) (Attribute, error) {
	nameIndex, err := r.ReadU2()
	if err != nil {
		return Attribute{}, fmt.Errorf("reading attribute name index: %w", err)
	}
	length, err := r.ReadU4()
	if err != nil {
		return Attribute{}, fmt.Errorf("reading attribute length: %w", err)
	}
	data, err := r.ReadBytes(int(length))
	if err != nil {
		return Attribute{}, fmt.Errorf("reading attribute data (%d bytes): %w", length, err)
	}
	return Attribute{NameIndex: nameIndex, Info: &RawAttribute{Data: data}}, nil
}

func readAttributes(r *Reader) ([]Attribute, error) {
	count, err := r.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("reading attributes count: %w", err)
	}
	attrs, err := ReadArray(r, int(count), readAttribute)
	if err != nil {
		return nil, err
	}
	return attrs, nil
}

// ResolveAttributes replaces every raw attribute in attrs with its structured
// form, looking names up in pool. Attributes that are already resolved are
// left alone, so calling it twice is harmless.
func ResolveAttributes(pool ConstantPool, attrs []Attribute) error {
	for i := range attrs {
		raw, ok := attrs[i].Info.(*RawAttribute)
		if !ok {
			continue
		}
		name, err := pool.Utf8(attrs[i].NameIndex)
		if err != nil {
			return fmt.Errorf("resolving attribute %d name: %w", i, err)
		}
		info, err := decodeAttribute(pool, name, raw.Data)
		if err != nil {
			return fmt.Errorf("decoding %s attribute: %w", name, err)
		}
		attrs[i].Info = info
	}
	return nil
}

// decodeAttribute decodes a payload by attribute name. A known payload must
// be consumed exactly.
func decodeAttribute(pool ConstantPool, name string, data []byte) (AttributeInfo, error) {
	var decode func(ConstantPool, *Reader) (AttributeInfo, error)
	switch name {
	case AttrCode:
		decode = decodeCode
	case AttrSourceFile:
		decode = decodeSourceFile
	case AttrLineNumberTable:
		decode = decodeLineNumberTable
	default:
		log.WithField("name", name).Debug("unrecognized attribute")
		return &UnrecognizedAttribute{Name: name, Data: data}, nil
	}

	r := NewReader(data)
	info, err := decode(pool, r)
	if err != nil {
		return nil, err
	}
	if !r.Empty() {
		return nil, &DecodeError{Offset: r.Offset(), Op: name, Err: fmt.Errorf("%w: %d bytes", ErrTrailingBytes, r.Len())}
	}
	return info, nil
}

func decodeSourceFile(pool ConstantPool, r *Reader) (AttributeInfo, error) {
	index, err := r.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("reading sourcefile index: %w", err)
	}
	source, err := pool.Utf8(index)
	if err != nil {
		return nil, fmt.Errorf("resolving sourcefile: %w", err)
	}
	return &SourceFileAttribute{SourceFile: source}, nil
}

func decodeLineNumberTable(_ ConstantPool, r *Reader) (AttributeInfo, error) {
	count, err := r.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("reading line number table length: %w", err)
	}
	entries, err := ReadArray(r, int(count), readLineNumber)
	if err != nil {
		return nil, fmt.Errorf("reading line number table: %w", err)
	}
	return &LineNumberTableAttribute{Entries: entries}, nil
}

func readLineNumber(r *Reader) (LineNumber, error) {
	startPC, err := r.ReadU2()
	if err != nil {
		return LineNumber{}, err
	}
	line, err := r.ReadU2()
	if err != nil {
		return LineNumber{}, err
	}
	return LineNumber{StartPC: startPC, LineNumber: line}, nil
}

func decodeCode(pool ConstantPool, r *Reader) (AttributeInfo, error) {
	maxStack, err := r.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("reading max_stack: %w", err)
	}
	maxLocals, err := r.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("reading max_locals: %w", err)
	}
	codeLength, err := r.ReadU4()
	if err != nil {
		return nil, fmt.Errorf("reading code_length: %w", err)
	}
	code, err := r.ReadBytes(int(codeLength))
	if err != nil {
		return nil, fmt.Errorf("reading code (%d bytes): %w", codeLength, err)
	}
	instructions, err := DecodeCode(code)
	if err != nil {
		return nil, fmt.Errorf("decoding code: %w", err)
	}

	exTableLen, err := r.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("reading exception table length: %w", err)
	}
	if exTableLen != 0 {
		return nil, fmt.Errorf("%w: exception table with %d entries", ErrUnsupported, exTableLen)
	}

	attrs, err := readAttributes(r)
	if err != nil {
		return nil, fmt.Errorf("reading code attributes: %w", err)
	}
	if err := ResolveAttributes(pool, attrs); err != nil {
		return nil, fmt.Errorf("resolving code attributes: %w", err)
	}

	return &CodeAttribute{
		MaxStack:     maxStack,
		MaxLocals:    maxLocals,
		CodeLength:   codeLength,
		Instructions: instructions,
		Attributes:   attrs,
	}, nil
}
