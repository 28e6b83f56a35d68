package disasm

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daimatz/gojavap/pkg/classfile"
)

// palette colors the parts of a listing; plainPalette leaves text as is.
type palette struct {
	class   func(a ...interface{}) string
	method  func(a ...interface{}) string
	opcode  func(a ...interface{}) string
	comment func(a ...interface{}) string
}

func plain(a ...interface{}) string { return fmt.Sprint(a...) }

var plainPalette = palette{class: plain, method: plain, opcode: plain, comment: plain}

func colorPalette() palette {
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return palette{
		class:   mk(color.Bold, color.FgHiMagenta),
		method:  mk(color.FgHiCyan),
		opcode:  mk(color.FgHiGreen),
		comment: mk(color.Faint),
	}
}

const unresolved = "couldn't resolve constant"

var arrayTypes = map[int32]string{
	4: "boolean", 5: "char", 6: "float", 7: "double",
	8: "byte", 9: "short", 10: "int", 11: "long",
}

// describeConstant renders the pool entry at index i symbolically.
// References inside the entry must point at entries of the right kind.
func describeConstant(pool classfile.ConstantPool, i uint16) (string, error) {
	e, err := pool.Entry(i)
	if err != nil {
		return "", err
	}

	switch c := e.(type) {
	case *classfile.ConstantUtf8:
		return fmt.Sprintf("%q", c.Value), nil
	case *classfile.ConstantInteger:
		return fmt.Sprintf("int %d", c.Value), nil
	case *classfile.ConstantFloat:
		return fmt.Sprintf("float %g", c.Value), nil
	case *classfile.ConstantLong:
		return fmt.Sprintf("long %d", c.Value), nil
	case *classfile.ConstantDouble:
		return fmt.Sprintf("double %g", c.Value), nil
	case *classfile.ConstantClass:
		name, err := pool.ClassName(i)
		if err != nil {
			return "", err
		}
		return "class=" + name, nil
	case *classfile.ConstantString:
		s, err := pool.StringLiteral(i)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("string %q", s), nil
	case *classfile.ConstantFieldref:
		ref, err := pool.FieldRef(i)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("fieldref class=%s field=%s descriptor=%q", ref.ClassName, ref.Name, ref.Descriptor), nil
	case *classfile.ConstantMethodref:
		ref, err := pool.MethodRef(i)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("methodref class=%s method=%s descriptor=%q", ref.ClassName, ref.Name, ref.Descriptor), nil
	case *classfile.ConstantInterfaceMethodref:
		ref, err := pool.InterfaceMethodRef(i)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("interfacemethodref class=%s method=%s descriptor=%q", ref.ClassName, ref.Name, ref.Descriptor), nil
	case *classfile.ConstantNameAndType:
		name, descriptor, err := pool.NameAndType(i)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("name=%s type=%q", name, descriptor), nil
	case *classfile.ConstantMethodHandle:
		return fmt.Sprintf("methodhandle kind=%d index=%d", c.ReferenceKind, c.ReferenceIndex), nil
	case *classfile.ConstantMethodType:
		descriptor, err := pool.Utf8(c.DescriptorIndex)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("methodtype descriptor=%q", descriptor), nil
	case *classfile.ConstantDynamic:
		name, descriptor, err := pool.NameAndType(c.NameAndTypeIndex)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s bootstrap=%d name=%s type=%q",
			strings.ToLower(classfile.TagName(c.Tag())), c.BootstrapMethodAttrIndex, name, descriptor), nil
	}
	return "", fmt.Errorf("%w: constant %s", classfile.ErrUnsupported, classfile.TagName(e.Tag()))
}

// describeOperand renders the comment for a pool-index operand. An operand
// outside the pool is annotated rather than reported; indices inside the
// entry it names must still be valid.
func describeOperand(pool classfile.ConstantPool, i uint16) (string, error) {
	if !pool.InRange(i) {
		return unresolved, nil
	}
	return describeConstant(pool, i)
}

// formatInstruction renders one instruction, without its offset.
func formatInstruction(pool classfile.ConstantPool, in classfile.Instruction, p palette) (string, error) {
	var sb strings.Builder
	sb.WriteString(p.opcode(in.Opcode.String()))

	comment := ""
	switch in.Kind() {
	case classfile.OperandNone:
	case classfile.OperandByte:
		fmt.Fprintf(&sb, " %d", in.Operand)
		comment = fmt.Sprintf("%#04x", uint8(in.Operand))
	case classfile.OperandArrayType:
		if name, ok := arrayTypes[in.Operand]; ok {
			fmt.Fprintf(&sb, " %s", name)
		} else {
			fmt.Fprintf(&sb, " %d", in.Operand)
		}
	case classfile.OperandLocal, classfile.OperandShort:
		fmt.Fprintf(&sb, " %d", in.Operand)
	case classfile.OperandBranch16, classfile.OperandBranch32:
		fmt.Fprintf(&sb, " %d", int64(in.Offset)+int64(in.Operand))
	case classfile.OperandIinc:
		fmt.Fprintf(&sb, " %d %d", in.Operand, in.Extra)
	default:
		index, _ := in.PoolIndex()
		fmt.Fprintf(&sb, " %d", index)
		if in.Kind() == classfile.OperandInvokeInterface || in.Kind() == classfile.OperandMultiANewArray {
			fmt.Fprintf(&sb, ", %d", in.Extra)
		}
		desc, err := describeOperand(pool, index)
		if err != nil {
			return "", fmt.Errorf("%s at pc %d: %w", in.Opcode, in.Offset, err)
		}
		comment = desc
	}

	if comment != "" {
		sb.WriteString(" ")
		sb.WriteString(p.comment("// " + comment))
	}
	return sb.String(), nil
}
