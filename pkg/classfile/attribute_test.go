package classfile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daimatz/gojavap/internal/classtest"
)

func TestResolveCodeAttribute(t *testing.T) {
	b := classtest.New()
	b.ThisClass = b.Class("Hello")
	str := b.StringConst("hi")
	b.Method(0x0009, "main", "([Ljava/lang/String;)V",
		b.Code(2, 1, []byte{0x12, byte(str), 0x57, 0xB1}, b.LineNumberTable(0, 3, 3, 4)))

	cf, err := ParseBytes(b.Bytes())
	require.NoError(t, err)
	require.IsType(t, &RawAttribute{}, cf.Methods[0].Attributes[0].Info)
	require.Nil(t, cf.Methods[0].Code())

	require.NoError(t, cf.ResolveAttributes())

	code := cf.Methods[0].Code()
	require.NotNil(t, code)
	require.Equal(t, uint16(2), code.MaxStack)
	require.Equal(t, uint16(1), code.MaxLocals)
	require.Equal(t, uint32(4), code.CodeLength)
	require.Equal(t, []Instruction{
		{Offset: 0, Opcode: OpLdc, Operand: int32(str)},
		{Offset: 2, Opcode: OpPop},
		{Offset: 3, Opcode: OpReturn},
	}, code.Instructions)
	require.Empty(t, code.ExceptionHandlers)

	require.Len(t, code.Attributes, 1)
	lnt, ok := code.Attributes[0].Info.(*LineNumberTableAttribute)
	require.True(t, ok)
	require.Equal(t, []LineNumber{{StartPC: 0, LineNumber: 3}, {StartPC: 3, LineNumber: 4}}, lnt.Entries)
}

func TestResolveIsIdempotent(t *testing.T) {
	b := classtest.New()
	b.ThisClass = b.Class("Foo")
	b.Method(0x0001, "run", "()V", b.Code(0, 1, []byte{0xB1}))
	b.ClassAttribute(b.SourceFile("Foo.java"))

	cf, err := ParseBytes(b.Bytes())
	require.NoError(t, err)
	require.NoError(t, cf.ResolveAttributes())

	first := cf.Methods[0].Attributes[0].Info
	firstSource := cf.Attributes[0].Info

	require.NoError(t, cf.ResolveAttributes())
	require.Same(t, first, cf.Methods[0].Attributes[0].Info)
	require.Same(t, firstSource, cf.Attributes[0].Info)
	require.Equal(t, "Foo.java", cf.SourceFile())
}

func TestResolveUnrecognizedAttribute(t *testing.T) {
	b := classtest.New()
	b.ThisClass = b.Class("Foo")
	b.ClassAttribute(b.Attribute("Signature", []byte{0x00, 0x01}))

	cf, err := ParseBytes(b.Bytes())
	require.NoError(t, err)
	require.NoError(t, cf.ResolveAttributes())

	un, ok := cf.Attributes[0].Info.(*UnrecognizedAttribute)
	require.True(t, ok)
	require.Equal(t, "Signature", un.Name)
	require.Equal(t, []byte{0x00, 0x01}, un.Data)
}

func TestResolveNestedCodeAttributesUseSameRules(t *testing.T) {
	b := classtest.New()
	b.ThisClass = b.Class("Foo")
	b.Method(0, "f", "()V", b.Code(0, 0, []byte{0xB1},
		b.LineNumberTable(0, 1),
		b.Attribute("StackMapTable", []byte{0x00, 0x00})))

	cf, err := ParseBytes(b.Bytes())
	require.NoError(t, err)
	require.NoError(t, cf.ResolveAttributes())

	attrs := cf.Methods[0].Code().Attributes
	require.Len(t, attrs, 2)
	require.IsType(t, &LineNumberTableAttribute{}, attrs[0].Info)
	require.IsType(t, &UnrecognizedAttribute{}, attrs[1].Info)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *classtest.Builder)
		want  error
	}{
		{
			name: "nonempty exception table",
			build: func(b *classtest.Builder) {
				body := b.CodeBody(0, 0, []byte{0xB1})
				body[len(body)-3] = 1 // exception_table_length low byte
				b.Method(0, "f", "()V", b.Attribute("Code", body))
			},
			want: ErrUnsupported,
		},
		{
			name: "code length overruns attribute",
			build: func(b *classtest.Builder) {
				body := b.CodeBody(0, 0, []byte{0xB1})
				body[7] = 0x40 // code_length
				b.Method(0, "f", "()V", b.Attribute("Code", body))
			},
			want: ErrTruncated,
		},
		{
			name: "instruction crosses code length",
			build: func(b *classtest.Builder) {
				b.Method(0, "f", "()V", b.Code(0, 0, []byte{0xB1, 0xB7, 0x00}))
			},
			want: ErrCodeBoundary,
		},
		{
			name: "unknown opcode",
			build: func(b *classtest.Builder) {
				b.Method(0, "f", "()V", b.Code(0, 0, []byte{0xFE}))
			},
			want: ErrUnknownOpcode,
		},
		{
			name: "sourcefile points at class",
			build: func(b *classtest.Builder) {
				b.ClassAttribute(b.Attribute("SourceFile", []byte{0x00, byte(b.ThisClass)}))
			},
			want: ErrWrongKind,
		},
		{
			name: "trailing bytes after code",
			build: func(b *classtest.Builder) {
				body := append(b.CodeBody(0, 0, []byte{0xB1}), 0xDE, 0xAD)
				b.Method(0, "f", "()V", b.Attribute("Code", body))
			},
			want: ErrTrailingBytes,
		},
		{
			name: "trailing bytes after sourcefile",
			build: func(b *classtest.Builder) {
				name := b.Utf8("Foo.java")
				b.ClassAttribute(b.Attribute("SourceFile", []byte{0x00, byte(name), 0x00}))
			},
			want: ErrTrailingBytes,
		},
		{
			name: "trailing bytes after line number table",
			build: func(b *classtest.Builder) {
				b.ClassAttribute(b.Attribute("LineNumberTable", []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0xFF}))
			},
			want: ErrTrailingBytes,
		},
		{
			name: "attribute name out of range",
			build: func(b *classtest.Builder) {
				b.ClassAttribute([]byte{0x00, 0x7F, 0x00, 0x00, 0x00, 0x00})
			},
			want: ErrBadIndex,
		},
		{
			name: "truncated line number table",
			build: func(b *classtest.Builder) {
				b.ClassAttribute(b.Attribute("LineNumberTable", []byte{0x00, 0x02, 0x00, 0x00, 0x00, 0x01}))
			},
			want: ErrTruncated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := classtest.New()
			b.ThisClass = b.Class("Foo")
			tt.build(b)

			cf, err := ParseBytes(b.Bytes())
			require.NoError(t, err)
			require.ErrorIs(t, cf.ResolveAttributes(), tt.want)
		})
	}
}

func TestResolveTrailingBytesOffset(t *testing.T) {
	b := classtest.New()
	b.ThisClass = b.Class("Foo")
	body := append(b.CodeBody(0, 0, []byte{0xB1}), 0xDE, 0xAD)
	b.Method(0, "f", "()V", b.Attribute("Code", body))

	cf, err := ParseBytes(b.Bytes())
	require.NoError(t, err)

	var de *DecodeError
	require.ErrorAs(t, cf.ResolveAttributes(), &de)
	require.Equal(t, len(body)-2, de.Offset)
	require.Equal(t, "Code", de.Op)
}
