package classfile

// Opcode is a JVM instruction opcode.
type Opcode uint8

// Opcodes
const (
	OpNop             Opcode = 0x00
	OpAconstNull      Opcode = 0x01
	OpIconstM1        Opcode = 0x02
	OpIconst0         Opcode = 0x03
	OpIconst1         Opcode = 0x04
	OpIconst2         Opcode = 0x05
	OpIconst3         Opcode = 0x06
	OpIconst4         Opcode = 0x07
	OpIconst5         Opcode = 0x08
	OpLconst0         Opcode = 0x09
	OpLconst1         Opcode = 0x0A
	OpFconst0         Opcode = 0x0B
	OpFconst1         Opcode = 0x0C
	OpFconst2         Opcode = 0x0D
	OpDconst0         Opcode = 0x0E
	OpDconst1         Opcode = 0x0F
	OpBipush          Opcode = 0x10
	OpSipush          Opcode = 0x11
	OpLdc             Opcode = 0x12
	OpLdcW            Opcode = 0x13
	OpLdc2W           Opcode = 0x14
	OpIload           Opcode = 0x15
	OpLload           Opcode = 0x16
	OpFload           Opcode = 0x17
	OpDload           Opcode = 0x18
	OpAload           Opcode = 0x19
	OpIload0          Opcode = 0x1A
	OpIload1          Opcode = 0x1B
	OpIload2          Opcode = 0x1C
	OpIload3          Opcode = 0x1D
	OpLload0          Opcode = 0x1E
	OpLload1          Opcode = 0x1F
	OpLload2          Opcode = 0x20
	OpLload3          Opcode = 0x21
	OpFload0          Opcode = 0x22
	OpFload1          Opcode = 0x23
	OpFload2          Opcode = 0x24
	OpFload3          Opcode = 0x25
	OpDload0          Opcode = 0x26
	OpDload1          Opcode = 0x27
	OpDload2          Opcode = 0x28
	OpDload3          Opcode = 0x29
	OpAload0          Opcode = 0x2A
	OpAload1          Opcode = 0x2B
	OpAload2          Opcode = 0x2C
	OpAload3          Opcode = 0x2D
	OpIaload          Opcode = 0x2E
	OpLaload          Opcode = 0x2F
	OpFaload          Opcode = 0x30
	OpDaload          Opcode = 0x31
	OpAaload          Opcode = 0x32
	OpBaload          Opcode = 0x33
	OpCaload          Opcode = 0x34
	OpSaload          Opcode = 0x35
	OpIstore          Opcode = 0x36
	OpLstore          Opcode = 0x37
	OpFstore          Opcode = 0x38
	OpDstore          Opcode = 0x39
	OpAstore          Opcode = 0x3A
	OpIstore0         Opcode = 0x3B
	OpIstore1         Opcode = 0x3C
	OpIstore2         Opcode = 0x3D
	OpIstore3         Opcode = 0x3E
	OpLstore0         Opcode = 0x3F
	OpLstore1         Opcode = 0x40
	OpLstore2         Opcode = 0x41
	OpLstore3         Opcode = 0x42
	OpFstore0         Opcode = 0x43
	OpFstore1         Opcode = 0x44
	OpFstore2         Opcode = 0x45
	OpFstore3         Opcode = 0x46
	OpDstore0         Opcode = 0x47
	OpDstore1         Opcode = 0x48
	OpDstore2         Opcode = 0x49
	OpDstore3         Opcode = 0x4A
	OpAstore0         Opcode = 0x4B
	OpAstore1         Opcode = 0x4C
	OpAstore2         Opcode = 0x4D
	OpAstore3         Opcode = 0x4E
	OpIastore         Opcode = 0x4F
	OpLastore         Opcode = 0x50
	OpFastore         Opcode = 0x51
	OpDastore         Opcode = 0x52
	OpAastore         Opcode = 0x53
	OpBastore         Opcode = 0x54
	OpCastore         Opcode = 0x55
	OpSastore         Opcode = 0x56
	OpPop             Opcode = 0x57
	OpPop2            Opcode = 0x58
	OpDup             Opcode = 0x59
	OpDupX1           Opcode = 0x5A
	OpDupX2           Opcode = 0x5B
	OpDup2            Opcode = 0x5C
	OpDup2X1          Opcode = 0x5D
	OpDup2X2          Opcode = 0x5E
	OpSwap            Opcode = 0x5F
	OpIadd            Opcode = 0x60
	OpLadd            Opcode = 0x61
	OpFadd            Opcode = 0x62
	OpDadd            Opcode = 0x63
	OpIsub            Opcode = 0x64
	OpLsub            Opcode = 0x65
	OpFsub            Opcode = 0x66
	OpDsub            Opcode = 0x67
	OpImul            Opcode = 0x68
	OpLmul            Opcode = 0x69
	OpFmul            Opcode = 0x6A
	OpDmul            Opcode = 0x6B
	OpIdiv            Opcode = 0x6C
	OpLdiv            Opcode = 0x6D
	OpFdiv            Opcode = 0x6E
	OpDdiv            Opcode = 0x6F
	OpIrem            Opcode = 0x70
	OpLrem            Opcode = 0x71
	OpFrem            Opcode = 0x72
	OpDrem            Opcode = 0x73
	OpIneg            Opcode = 0x74
	OpLneg            Opcode = 0x75
	OpFneg            Opcode = 0x76
	OpDneg            Opcode = 0x77
	OpIshl            Opcode = 0x78
	OpLshl            Opcode = 0x79
	OpIshr            Opcode = 0x7A
	OpLshr            Opcode = 0x7B
	OpIushr           Opcode = 0x7C
	OpLushr           Opcode = 0x7D
	OpIand            Opcode = 0x7E
	OpLand            Opcode = 0x7F
	OpIor             Opcode = 0x80
	OpLor             Opcode = 0x81
	OpIxor            Opcode = 0x82
	OpLxor            Opcode = 0x83
	OpIinc            Opcode = 0x84
	OpI2l             Opcode = 0x85
	OpI2f             Opcode = 0x86
	OpI2d             Opcode = 0x87
	OpL2i             Opcode = 0x88
	OpL2f             Opcode = 0x89
	OpL2d             Opcode = 0x8A
	OpF2i             Opcode = 0x8B
	OpF2l             Opcode = 0x8C
	OpF2d             Opcode = 0x8D
	OpD2i             Opcode = 0x8E
	OpD2l             Opcode = 0x8F
	OpD2f             Opcode = 0x90
	OpI2b             Opcode = 0x91
	OpI2c             Opcode = 0x92
	OpI2s             Opcode = 0x93
	OpLcmp            Opcode = 0x94
	OpFcmpl           Opcode = 0x95
	OpFcmpg           Opcode = 0x96
	OpDcmpl           Opcode = 0x97
	OpDcmpg           Opcode = 0x98
	OpIfeq            Opcode = 0x99
	OpIfne            Opcode = 0x9A
	OpIflt            Opcode = 0x9B
	OpIfge            Opcode = 0x9C
	OpIfgt            Opcode = 0x9D
	OpIfle            Opcode = 0x9E
	OpIfIcmpeq        Opcode = 0x9F
	OpIfIcmpne        Opcode = 0xA0
	OpIfIcmplt        Opcode = 0xA1
	OpIfIcmpge        Opcode = 0xA2
	OpIfIcmpgt        Opcode = 0xA3
	OpIfIcmple        Opcode = 0xA4
	OpIfAcmpeq        Opcode = 0xA5
	OpIfAcmpne        Opcode = 0xA6
	OpGoto            Opcode = 0xA7
	OpJsr             Opcode = 0xA8
	OpRet             Opcode = 0xA9
	OpTableswitch     Opcode = 0xAA
	OpLookupswitch    Opcode = 0xAB
	OpIreturn         Opcode = 0xAC
	OpLreturn         Opcode = 0xAD
	OpFreturn         Opcode = 0xAE
	OpDreturn         Opcode = 0xAF
	OpAreturn         Opcode = 0xB0
	OpReturn          Opcode = 0xB1
	OpGetstatic       Opcode = 0xB2
	OpPutstatic       Opcode = 0xB3
	OpGetfield        Opcode = 0xB4
	OpPutfield        Opcode = 0xB5
	OpInvokevirtual   Opcode = 0xB6
	OpInvokespecial   Opcode = 0xB7
	OpInvokestatic    Opcode = 0xB8
	OpInvokeinterface Opcode = 0xB9
	OpInvokedynamic   Opcode = 0xBA
	OpNew             Opcode = 0xBB
	OpNewarray        Opcode = 0xBC
	OpAnewarray       Opcode = 0xBD
	OpArraylength     Opcode = 0xBE
	OpAthrow          Opcode = 0xBF
	OpCheckcast       Opcode = 0xC0
	OpInstanceof      Opcode = 0xC1
	OpMonitorenter    Opcode = 0xC2
	OpMonitorexit     Opcode = 0xC3
	OpWide            Opcode = 0xC4
	OpMultianewarray  Opcode = 0xC5
	OpIfnull          Opcode = 0xC6
	OpIfnonnull       Opcode = 0xC7
	OpGotoW           Opcode = 0xC8
	OpJsrW            Opcode = 0xC9
)

// opcodes is the decode table. Opcodes without an entry, including
// tableswitch, lookupswitch and wide, are rejected by the decoder.
var opcodes = [256]opcodeInfo{
	OpNop:             {"nop", OperandNone},
	OpAconstNull:      {"aconst_null", OperandNone},
	OpIconstM1:        {"iconst_m1", OperandNone},
	OpIconst0:         {"iconst_0", OperandNone},
	OpIconst1:         {"iconst_1", OperandNone},
	OpIconst2:         {"iconst_2", OperandNone},
	OpIconst3:         {"iconst_3", OperandNone},
	OpIconst4:         {"iconst_4", OperandNone},
	OpIconst5:         {"iconst_5", OperandNone},
	OpLconst0:         {"lconst_0", OperandNone},
	OpLconst1:         {"lconst_1", OperandNone},
	OpFconst0:         {"fconst_0", OperandNone},
	OpFconst1:         {"fconst_1", OperandNone},
	OpFconst2:         {"fconst_2", OperandNone},
	OpDconst0:         {"dconst_0", OperandNone},
	OpDconst1:         {"dconst_1", OperandNone},
	OpBipush:          {"bipush", OperandByte},
	OpSipush:          {"sipush", OperandShort},
	OpLdc:             {"ldc", OperandPoolIndex8},
	OpLdcW:            {"ldc_w", OperandPoolIndex16},
	OpLdc2W:           {"ldc2_w", OperandPoolIndex16},
	OpIload:           {"iload", OperandLocal},
	OpLload:           {"lload", OperandLocal},
	OpFload:           {"fload", OperandLocal},
	OpDload:           {"dload", OperandLocal},
	OpAload:           {"aload", OperandLocal},
	OpIload0:          {"iload_0", OperandNone},
	OpIload1:          {"iload_1", OperandNone},
	OpIload2:          {"iload_2", OperandNone},
	OpIload3:          {"iload_3", OperandNone},
	OpLload0:          {"lload_0", OperandNone},
	OpLload1:          {"lload_1", OperandNone},
	OpLload2:          {"lload_2", OperandNone},
	OpLload3:          {"lload_3", OperandNone},
	OpFload0:          {"fload_0", OperandNone},
	OpFload1:          {"fload_1", OperandNone},
	OpFload2:          {"fload_2", OperandNone},
	OpFload3:          {"fload_3", OperandNone},
	OpDload0:          {"dload_0", OperandNone},
	OpDload1:          {"dload_1", OperandNone},
	OpDload2:          {"dload_2", OperandNone},
	OpDload3:          {"dload_3", OperandNone},
	OpAload0:          {"aload_0", OperandNone},
	OpAload1:          {"aload_1", OperandNone},
	OpAload2:          {"aload_2", OperandNone},
	OpAload3:          {"aload_3", OperandNone},
	OpIaload:          {"iaload", OperandNone},
	OpLaload:          {"laload", OperandNone},
	OpFaload:          {"faload", OperandNone},
	OpDaload:          {"daload", OperandNone},
	OpAaload:          {"aaload", OperandNone},
	OpBaload:          {"baload", OperandNone},
	OpCaload:          {"caload", OperandNone},
	OpSaload:          {"saload", OperandNone},
	OpIstore:          {"istore", OperandLocal},
	OpLstore:          {"lstore", OperandLocal},
	OpFstore:          {"fstore", OperandLocal},
	OpDstore:          {"dstore", OperandLocal},
	OpAstore:          {"astore", OperandLocal},
	OpIstore0:         {"istore_0", OperandNone},
	OpIstore1:         {"istore_1", OperandNone},
	OpIstore2:         {"istore_2", OperandNone},
	OpIstore3:         {"istore_3", OperandNone},
	OpLstore0:         {"lstore_0", OperandNone},
	OpLstore1:         {"lstore_1", OperandNone},
	OpLstore2:         {"lstore_2", OperandNone},
	OpLstore3:         {"lstore_3", OperandNone},
	OpFstore0:         {"fstore_0", OperandNone},
	OpFstore1:         {"fstore_1", OperandNone},
	OpFstore2:         {"fstore_2", OperandNone},
	OpFstore3:         {"fstore_3", OperandNone},
	OpDstore0:         {"dstore_0", OperandNone},
	OpDstore1:         {"dstore_1", OperandNone},
	OpDstore2:         {"dstore_2", OperandNone},
	OpDstore3:         {"dstore_3", OperandNone},
	OpAstore0:         {"astore_0", OperandNone},
	OpAstore1:         {"astore_1", OperandNone},
	OpAstore2:         {"astore_2", OperandNone},
	OpAstore3:         {"astore_3", OperandNone},
	OpIastore:         {"iastore", OperandNone},
	OpLastore:         {"lastore", OperandNone},
	OpFastore:         {"fastore", OperandNone},
	OpDastore:         {"dastore", OperandNone},
	OpAastore:         {"aastore", OperandNone},
	OpBastore:         {"bastore", OperandNone},
	OpCastore:         {"castore", OperandNone},
	OpSastore:         {"sastore", OperandNone},
	OpPop:             {"pop", OperandNone},
	OpPop2:            {"pop2", OperandNone},
	OpDup:             {"dup", OperandNone},
	OpDupX1:           {"dup_x1", OperandNone},
	OpDupX2:           {"dup_x2", OperandNone},
	OpDup2:            {"dup2", OperandNone},
	OpDup2X1:          {"dup2_x1", OperandNone},
	OpDup2X2:          {"dup2_x2", OperandNone},
	OpSwap:            {"swap", OperandNone},
	OpIadd:            {"iadd", OperandNone},
	OpLadd:            {"ladd", OperandNone},
	OpFadd:            {"fadd", OperandNone},
	OpDadd:            {"dadd", OperandNone},
	OpIsub:            {"isub", OperandNone},
	OpLsub:            {"lsub", OperandNone},
	OpFsub:            {"fsub", OperandNone},
	OpDsub:            {"dsub", OperandNone},
	OpImul:            {"imul", OperandNone},
	OpLmul:            {"lmul", OperandNone},
	OpFmul:            {"fmul", OperandNone},
	OpDmul:            {"dmul", OperandNone},
	OpIdiv:            {"idiv", OperandNone},
	OpLdiv:            {"ldiv", OperandNone},
	OpFdiv:            {"fdiv", OperandNone},
	OpDdiv:            {"ddiv", OperandNone},
	OpIrem:            {"irem", OperandNone},
	OpLrem:            {"lrem", OperandNone},
	OpFrem:            {"frem", OperandNone},
	OpDrem:            {"drem", OperandNone},
	OpIneg:            {"ineg", OperandNone},
	OpLneg:            {"lneg", OperandNone},
	OpFneg:            {"fneg", OperandNone},
	OpDneg:            {"dneg", OperandNone},
	OpIshl:            {"ishl", OperandNone},
	OpLshl:            {"lshl", OperandNone},
	OpIshr:            {"ishr", OperandNone},
	OpLshr:            {"lshr", OperandNone},
	OpIushr:           {"iushr", OperandNone},
	OpLushr:           {"lushr", OperandNone},
	OpIand:            {"iand", OperandNone},
	OpLand:            {"land", OperandNone},
	OpIor:             {"ior", OperandNone},
	OpLor:             {"lor", OperandNone},
	OpIxor:            {"ixor", OperandNone},
	OpLxor:            {"lxor", OperandNone},
	OpIinc:            {"iinc", OperandIinc},
	OpI2l:             {"i2l", OperandNone},
	OpI2f:             {"i2f", OperandNone},
	OpI2d:             {"i2d", OperandNone},
	OpL2i:             {"l2i", OperandNone},
	OpL2f:             {"l2f", OperandNone},
	OpL2d:             {"l2d", OperandNone},
	OpF2i:             {"f2i", OperandNone},
	OpF2l:             {"f2l", OperandNone},
	OpF2d:             {"f2d", OperandNone},
	OpD2i:             {"d2i", OperandNone},
	OpD2l:             {"d2l", OperandNone},
	OpD2f:             {"d2f", OperandNone},
	OpI2b:             {"i2b", OperandNone},
	OpI2c:             {"i2c", OperandNone},
	OpI2s:             {"i2s", OperandNone},
	OpLcmp:            {"lcmp", OperandNone},
	OpFcmpl:           {"fcmpl", OperandNone},
	OpFcmpg:           {"fcmpg", OperandNone},
	OpDcmpl:           {"dcmpl", OperandNone},
	OpDcmpg:           {"dcmpg", OperandNone},
	OpIfeq:            {"ifeq", OperandBranch16},
	OpIfne:            {"ifne", OperandBranch16},
	OpIflt:            {"iflt", OperandBranch16},
	OpIfge:            {"ifge", OperandBranch16},
	OpIfgt:            {"ifgt", OperandBranch16},
	OpIfle:            {"ifle", OperandBranch16},
	OpIfIcmpeq:        {"if_icmpeq", OperandBranch16},
	OpIfIcmpne:        {"if_icmpne", OperandBranch16},
	OpIfIcmplt:        {"if_icmplt", OperandBranch16},
	OpIfIcmpge:        {"if_icmpge", OperandBranch16},
	OpIfIcmpgt:        {"if_icmpgt", OperandBranch16},
	OpIfIcmple:        {"if_icmple", OperandBranch16},
	OpIfAcmpeq:        {"if_acmpeq", OperandBranch16},
	OpIfAcmpne:        {"if_acmpne", OperandBranch16},
	OpGoto:            {"goto", OperandBranch16},
	OpJsr:             {"jsr", OperandBranch16},
	OpRet:             {"ret", OperandLocal},
	OpIreturn:         {"ireturn", OperandNone},
	OpLreturn:         {"lreturn", OperandNone},
	OpFreturn:         {"freturn", OperandNone},
	OpDreturn:         {"dreturn", OperandNone},
	OpAreturn:         {"areturn", OperandNone},
	OpReturn:          {"return", OperandNone},
	OpGetstatic:       {"getstatic", OperandPoolIndex16},
	OpPutstatic:       {"putstatic", OperandPoolIndex16},
	OpGetfield:        {"getfield", OperandPoolIndex16},
	OpPutfield:        {"putfield", OperandPoolIndex16},
	OpInvokevirtual:   {"invokevirtual", OperandPoolIndex16},
	OpInvokespecial:   {"invokespecial", OperandPoolIndex16},
	OpInvokestatic:    {"invokestatic", OperandPoolIndex16},
	OpInvokeinterface: {"invokeinterface", OperandInvokeInterface},
	OpInvokedynamic:   {"invokedynamic", OperandInvokeDynamic},
	OpNew:             {"new", OperandPoolIndex16},
	OpNewarray:        {"newarray", OperandArrayType},
	OpAnewarray:       {"anewarray", OperandPoolIndex16},
	OpArraylength:     {"arraylength", OperandNone},
	OpAthrow:          {"athrow", OperandNone},
	OpCheckcast:       {"checkcast", OperandPoolIndex16},
	OpInstanceof:      {"instanceof", OperandPoolIndex16},
	OpMonitorenter:    {"monitorenter", OperandNone},
	OpMonitorexit:     {"monitorexit", OperandNone},
	OpMultianewarray:  {"multianewarray", OperandMultiANewArray},
	OpIfnull:          {"ifnull", OperandBranch16},
	OpIfnonnull:       {"ifnonnull", OperandBranch16},
	OpGotoW:           {"goto_w", OperandBranch32},
	OpJsrW:            {"jsr_w", OperandBranch32},
}
