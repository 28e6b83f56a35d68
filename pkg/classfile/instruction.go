package classfile

import "fmt"

// OperandKind describes the operand bytes following an opcode.
type OperandKind uint8

const (
	OperandNone            OperandKind = iota
	OperandLocal                       // u1 local variable index
	OperandByte                        // s1 literal
	OperandArrayType                   // u1 primitive array type
	OperandShort                       // s2 literal
	OperandPoolIndex8                  // u1 constant pool index
	OperandPoolIndex16                 // u2 constant pool index
	OperandBranch16                    // s2 branch offset
	OperandBranch32                    // s4 branch offset
	OperandIinc                        // u1 local index, s1 increment
	OperandInvokeInterface             // u2 constant pool index, u1 count, u1 zero
	OperandInvokeDynamic               // u2 constant pool index, two zero bytes
	OperandMultiANewArray              // u2 constant pool index, u1 dimensions
)

var operandWidths = [...]int{
	OperandNone:            0,
	OperandLocal:           1,
	OperandByte:            1,
	OperandArrayType:       1,
	OperandShort:           2,
	OperandPoolIndex8:      1,
	OperandPoolIndex16:     2,
	OperandBranch16:        2,
	OperandBranch32:        4,
	OperandIinc:            2,
	OperandInvokeInterface: 4,
	OperandInvokeDynamic:   4,
	OperandMultiANewArray:  3,
}

type opcodeInfo struct {
	name string
	kind OperandKind
}

func (op Opcode) info() (opcodeInfo, bool) {
	info := opcodes[op]
	return info, info.name != ""
}

func (op Opcode) String() string {
	if info, ok := op.info(); ok {
		return info.name
	}
	return fmt.Sprintf("opcode(0x%02x)", uint8(op))
}

// Instruction is one decoded instruction.
type Instruction struct {
	Offset  uint32 // position of the opcode within the code array
	Opcode  Opcode
	Operand int32 // local index, literal, constant pool index or branch offset
	Extra   int32 // iinc increment, invokeinterface count or multianewarray dimensions
}

// Kind returns the operand layout of the instruction.
func (in Instruction) Kind() OperandKind {
	info, _ := in.Opcode.info()
	return info.kind
}

// Width returns the encoded size of the instruction in bytes.
func (in Instruction) Width() int {
	return 1 + operandWidths[in.Kind()]
}

// PoolIndex returns the constant pool index operand, if the instruction has one.
func (in Instruction) PoolIndex() (uint16, bool) {
	switch in.Kind() {
	case OperandPoolIndex8, OperandPoolIndex16, OperandInvokeInterface,
		OperandInvokeDynamic, OperandMultiANewArray:
		return uint16(in.Operand), true
	}
	return 0, false
}

// DecodeCode decodes a code array. The whole array must be consumed by
// whole instructions.
func DecodeCode(code []byte) ([]Instruction, error) {
	r := NewReader(code)
	var out []Instruction
	for !r.Empty() {
		in, err := decodeInstruction(r)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func decodeInstruction(r *Reader) (Instruction, error) {
	pc := uint32(r.Offset())
	b, err := r.ReadU1()
	if err != nil {
		return Instruction{}, err
	}
	in := Instruction{Offset: pc, Opcode: Opcode(b)}

	info, ok := in.Opcode.info()
	if !ok {
		return Instruction{}, fmt.Errorf("%w 0x%02x at pc %d", ErrUnknownOpcode, b, pc)
	}
	if need := operandWidths[info.kind]; r.Len() < need {
		return Instruction{}, fmt.Errorf("%w: %s at pc %d needs %d operand bytes, %d left",
			ErrCodeBoundary, info.name, pc, need, r.Len())
	}

	if err := in.readOperands(r, info.kind); err != nil {
		return Instruction{}, fmt.Errorf("%s at pc %d: %w", info.name, pc, err)
	}
	return in, nil
}

func (in *Instruction) readOperands(r *Reader, kind OperandKind) error {
	switch kind {
	case OperandNone:
		return nil
	case OperandLocal, OperandArrayType, OperandPoolIndex8:
		v, err := r.ReadU1()
		in.Operand = int32(v)
		return err
	case OperandByte:
		v, err := r.ReadU1()
		in.Operand = int32(int8(v))
		return err
	case OperandShort, OperandBranch16:
		v, err := r.ReadU2()
		in.Operand = int32(int16(v))
		return err
	case OperandPoolIndex16:
		v, err := r.ReadU2()
		in.Operand = int32(v)
		return err
	case OperandBranch32:
		v, err := r.ReadU4()
		in.Operand = int32(v)
		return err
	case OperandIinc:
		index, err := r.ReadU1()
		if err != nil {
			return err
		}
		inc, err := r.ReadU1()
		in.Operand, in.Extra = int32(index), int32(int8(inc))
		return err
	case OperandInvokeInterface, OperandInvokeDynamic, OperandMultiANewArray:
		index, err := r.ReadU2()
		if err != nil {
			return err
		}
		in.Operand = int32(index)
		if kind == OperandMultiANewArray {
			dims, err := r.ReadU1()
			in.Extra = int32(dims)
			return err
		}
		count, err := r.ReadU1()
		if err != nil {
			return err
		}
		in.Extra = int32(count)
		_, err = r.ReadU1()
		if kind == OperandInvokeDynamic {
			in.Extra = 0
		}
		return err
	}
	return fmt.Errorf("%w: operand kind %d", ErrUnsupported, kind)
}
