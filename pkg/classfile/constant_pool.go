package classfile

import (
	"fmt"
	"math"
)

// Constant pool tags
const (
	TagUtf8               = 1
	TagInteger            = 3
	TagFloat              = 4
	TagLong               = 5
	TagDouble             = 6
	TagClass              = 7
	TagString             = 8
	TagFieldref           = 9
	TagMethodref          = 10
	TagInterfaceMethodref = 11
	TagNameAndType        = 12
	TagMethodHandle       = 15
	TagMethodType         = 16
	TagDynamic            = 17
	TagInvokeDynamic      = 18
)

var tagNames = map[uint8]string{
	TagUtf8:               "Utf8",
	TagInteger:            "Integer",
	TagFloat:              "Float",
	TagLong:               "Long",
	TagDouble:             "Double",
	TagClass:              "Class",
	TagString:             "String",
	TagFieldref:           "Fieldref",
	TagMethodref:          "Methodref",
	TagInterfaceMethodref: "InterfaceMethodref",
	TagNameAndType:        "NameAndType",
	TagMethodHandle:       "MethodHandle",
	TagMethodType:         "MethodType",
	TagDynamic:            "Dynamic",
	TagInvokeDynamic:      "InvokeDynamic",
}

// TagName returns the JVMS name of a constant pool tag.
func TagName(tag uint8) string {
	if name, ok := tagNames[tag]; ok {
		return name
	}
	return fmt.Sprintf("tag(%d)", tag)
}

// ConstantPool holds the decoded pool. Index i (1-based) is stored at
// offset i-1. The slot following a Long or Double is nil.
type ConstantPool []ConstantPoolEntry

// parseConstantPool reads count-1 entries from r.
func parseConstantPool(r *Reader, count uint16) (ConstantPool, error) {
	if count == 0 {
		return nil, fmt.Errorf("constant pool count 0: %w", ErrBadIndex)
	}
	pool := make(ConstantPool, count-1)

	for i := uint16(1); i < count; i++ {
		entry, err := parseConstant(r, i)
		if err != nil {
			return nil, err
		}
		pool[i-1] = entry

		if tag := entry.Tag(); tag == TagLong || tag == TagDouble {
			// 8-byte constants take two slots
			if i+1 >= count {
				return nil, fmt.Errorf("%s at index %d overruns pool of %d entries: %w",
					TagName(tag), i, count-1, ErrBadIndex)
			}
			i++
		}
	}

	return pool, nil
}

func parseConstant(r *Reader, i uint16) (ConstantPoolEntry, error) {
	tag, err := r.ReadU1()
	if err != nil {
		return nil, fmt.Errorf("reading constant pool tag at index %d: %w", i, err)
	}

	// refs reads the u2 index fields that make up most entries.
	refs := func(n int) ([]uint16, error) {
		out, err := ReadArray(r, n, (*Reader).ReadU2)
		if err != nil {
			return nil, fmt.Errorf("reading %s at index %d: %w", TagName(tag), i, err)
		}
		return out, nil
	}

	switch tag {
	case TagUtf8:
		length, err := r.ReadU2()
		if err != nil {
			return nil, fmt.Errorf("reading Utf8 length at index %d: %w", i, err)
		}
		raw, err := r.ReadBytes(int(length))
		if err != nil {
			return nil, fmt.Errorf("reading Utf8 bytes at index %d: %w", i, err)
		}
		s, err := decodeModifiedUTF8(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding Utf8 at index %d: %w", i, err)
		}
		return &ConstantUtf8{Value: s}, nil

	case TagInteger:
		v, err := r.ReadU4()
		if err != nil {
			return nil, fmt.Errorf("reading Integer at index %d: %w", i, err)
		}
		return &ConstantInteger{Value: int32(v)}, nil

	case TagFloat:
		v, err := r.ReadU4()
		if err != nil {
			return nil, fmt.Errorf("reading Float at index %d: %w", i, err)
		}
		return &ConstantFloat{Value: math.Float32frombits(v)}, nil

	case TagLong, TagDouble:
		hi, err := r.ReadU4()
		if err != nil {
			return nil, fmt.Errorf("reading %s at index %d: %w", TagName(tag), i, err)
		}
		lo, err := r.ReadU4()
		if err != nil {
			return nil, fmt.Errorf("reading %s at index %d: %w", TagName(tag), i, err)
		}
		bits := uint64(hi)<<32 | uint64(lo)
		if tag == TagLong {
			return &ConstantLong{Value: int64(bits)}, nil
		}
		return &ConstantDouble{Value: math.Float64frombits(bits)}, nil

	case TagClass:
		v, err := refs(1)
		if err != nil {
			return nil, err
		}
		return &ConstantClass{NameIndex: v[0]}, nil

	case TagString:
		v, err := refs(1)
		if err != nil {
			return nil, err
		}
		return &ConstantString{StringIndex: v[0]}, nil

	case TagFieldref:
		v, err := refs(2)
		if err != nil {
			return nil, err
		}
		return &ConstantFieldref{ClassIndex: v[0], NameAndTypeIndex: v[1]}, nil

	case TagMethodref:
		v, err := refs(2)
		if err != nil {
			return nil, err
		}
		return &ConstantMethodref{ClassIndex: v[0], NameAndTypeIndex: v[1]}, nil

	case TagInterfaceMethodref:
		v, err := refs(2)
		if err != nil {
			return nil, err
		}
		return &ConstantInterfaceMethodref{ClassIndex: v[0], NameAndTypeIndex: v[1]}, nil

	case TagNameAndType:
		v, err := refs(2)
		if err != nil {
			return nil, err
		}
		return &ConstantNameAndType{NameIndex: v[0], DescriptorIndex: v[1]}, nil

	case TagMethodHandle:
		kind, err := r.ReadU1()
		if err != nil {
			return nil, fmt.Errorf("reading MethodHandle at index %d: %w", i, err)
		}
		v, err := refs(1)
		if err != nil {
			return nil, err
		}
		return &ConstantMethodHandle{ReferenceKind: kind, ReferenceIndex: v[0]}, nil

	case TagMethodType:
		v, err := refs(1)
		if err != nil {
			return nil, err
		}
		return &ConstantMethodType{DescriptorIndex: v[0]}, nil

	case TagDynamic, TagInvokeDynamic:
		v, err := refs(2)
		if err != nil {
			return nil, err
		}
		return &ConstantDynamic{
			tag:                      tag,
			BootstrapMethodAttrIndex: v[0],
			NameAndTypeIndex:         v[1],
		}, nil
	}

	return nil, fmt.Errorf("%w %d at index %d", ErrUnknownTag, tag, i)
}

// Entry returns the entry at 1-based index i.
func (p ConstantPool) Entry(i uint16) (ConstantPoolEntry, error) {
	if i == 0 || int(i) > len(p) {
		return nil, fmt.Errorf("%w %d (pool has %d entries)", ErrBadIndex, i, len(p))
	}
	e := p[i-1]
	if e == nil {
		return nil, fmt.Errorf("%w %d: second slot of an 8-byte constant", ErrBadIndex, i)
	}
	return e, nil
}

// InRange reports whether i addresses a slot of the pool.
func (p ConstantPool) InRange(i uint16) bool {
	return i != 0 && int(i) <= len(p)
}

func wrongKind(i uint16, e ConstantPoolEntry, want uint8) error {
	return fmt.Errorf("%w: index %d is %s, want %s", ErrWrongKind, i, TagName(e.Tag()), TagName(want))
}

// Utf8 returns the text of the Utf8 entry at index i.
func (p ConstantPool) Utf8(i uint16) (string, error) {
	e, err := p.Entry(i)
	if err != nil {
		return "", err
	}
	utf8, ok := e.(*ConstantUtf8)
	if !ok {
		return "", wrongKind(i, e, TagUtf8)
	}
	return utf8.Value, nil
}

// ClassName returns the name referenced by the Class entry at index i.
func (p ConstantPool) ClassName(i uint16) (string, error) {
	e, err := p.Entry(i)
	if err != nil {
		return "", err
	}
	class, ok := e.(*ConstantClass)
	if !ok {
		return "", wrongKind(i, e, TagClass)
	}
	name, err := p.Utf8(class.NameIndex)
	if err != nil {
		return "", fmt.Errorf("resolving Class %d name: %w", i, err)
	}
	return name, nil
}

// StringLiteral returns the text referenced by the String entry at index i.
func (p ConstantPool) StringLiteral(i uint16) (string, error) {
	e, err := p.Entry(i)
	if err != nil {
		return "", err
	}
	s, ok := e.(*ConstantString)
	if !ok {
		return "", wrongKind(i, e, TagString)
	}
	text, err := p.Utf8(s.StringIndex)
	if err != nil {
		return "", fmt.Errorf("resolving String %d text: %w", i, err)
	}
	return text, nil
}

// NameAndType returns the name and descriptor of the NameAndType entry at index i.
func (p ConstantPool) NameAndType(i uint16) (name, descriptor string, err error) {
	e, err := p.Entry(i)
	if err != nil {
		return "", "", err
	}
	nat, ok := e.(*ConstantNameAndType)
	if !ok {
		return "", "", wrongKind(i, e, TagNameAndType)
	}
	if name, err = p.Utf8(nat.NameIndex); err != nil {
		return "", "", fmt.Errorf("resolving NameAndType %d name: %w", i, err)
	}
	if descriptor, err = p.Utf8(nat.DescriptorIndex); err != nil {
		return "", "", fmt.Errorf("resolving NameAndType %d descriptor: %w", i, err)
	}
	return name, descriptor, nil
}

// MemberRef holds a resolved field, method or interface method reference.
type MemberRef struct {
	ClassName  string
	Name       string
	Descriptor string
}

// memberRef resolves a Fieldref, Methodref or InterfaceMethodref entry,
// checking that its tag is want.
func (p ConstantPool) memberRef(i uint16, want uint8) (*MemberRef, error) {
	e, err := p.Entry(i)
	if err != nil {
		return nil, err
	}
	if e.Tag() != want {
		return nil, wrongKind(i, e, want)
	}

	var classIndex, natIndex uint16
	switch ref := e.(type) {
	case *ConstantFieldref:
		classIndex, natIndex = ref.ClassIndex, ref.NameAndTypeIndex
	case *ConstantMethodref:
		classIndex, natIndex = ref.ClassIndex, ref.NameAndTypeIndex
	case *ConstantInterfaceMethodref:
		classIndex, natIndex = ref.ClassIndex, ref.NameAndTypeIndex
	}

	className, err := p.ClassName(classIndex)
	if err != nil {
		return nil, fmt.Errorf("resolving %s %d class: %w", TagName(want), i, err)
	}
	name, descriptor, err := p.NameAndType(natIndex)
	if err != nil {
		return nil, fmt.Errorf("resolving %s %d name and type: %w", TagName(want), i, err)
	}
	return &MemberRef{ClassName: className, Name: name, Descriptor: descriptor}, nil
}

// FieldRef resolves the Fieldref entry at index i.
func (p ConstantPool) FieldRef(i uint16) (*MemberRef, error) {
	return p.memberRef(i, TagFieldref)
}

// MethodRef resolves the Methodref entry at index i.
func (p ConstantPool) MethodRef(i uint16) (*MemberRef, error) {
	return p.memberRef(i, TagMethodref)
}

// InterfaceMethodRef resolves the InterfaceMethodref entry at index i.
func (p ConstantPool) InterfaceMethodRef(i uint16) (*MemberRef, error) {
	return p.memberRef(i, TagInterfaceMethodref)
}
