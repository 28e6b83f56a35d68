package classfile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daimatz/gojavap/internal/classtest"
)

// poolOf parses the constant pool written by b.
func poolOf(t *testing.T, b *classtest.Builder) ConstantPool {
	t.Helper()
	cf, err := ParseBytes(b.Bytes())
	require.NoError(t, err)
	return cf.ConstantPool
}

func TestConstantPoolUtf8RoundTrip(t *testing.T) {
	texts := []string{"Foo", "", "java/lang/Object", "([Ljava/lang/String;)V", "héllo", "日本語"}

	b := classtest.New()
	indices := make([]uint16, len(texts))
	for i, s := range texts {
		indices[i] = b.Utf8(s)
	}
	pool := poolOf(t, b)

	for i, s := range texts {
		require.NotZero(t, indices[i])
		got, err := pool.Utf8(indices[i])
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestConstantPoolIsOneBased(t *testing.T) {
	b := classtest.New()
	b.ThisClass = b.Class("Foo")
	pool := poolOf(t, b)

	require.Len(t, pool, 2)
	require.IsType(t, &ConstantUtf8{}, pool[0])
	require.IsType(t, &ConstantClass{}, pool[1])

	_, err := pool.Entry(0)
	require.ErrorIs(t, err, ErrBadIndex)
	_, err = pool.Entry(3)
	require.ErrorIs(t, err, ErrBadIndex)

	name, err := pool.ClassName(2)
	require.NoError(t, err)
	require.Equal(t, "Foo", name)
}

func TestConstantPoolLookups(t *testing.T) {
	b := classtest.New()
	str := b.StringConst("hello")
	field := b.FieldRef("java/lang/System", "out", "Ljava/io/PrintStream;")
	method := b.MethodRef("java/io/PrintStream", "println", "(Ljava/lang/String;)V")
	pool := poolOf(t, b)

	s, err := pool.StringLiteral(str)
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	f, err := pool.FieldRef(field)
	require.NoError(t, err)
	require.Equal(t, &MemberRef{ClassName: "java/lang/System", Name: "out", Descriptor: "Ljava/io/PrintStream;"}, f)

	m, err := pool.MethodRef(method)
	require.NoError(t, err)
	require.Equal(t, "java/io/PrintStream", m.ClassName)
	require.Equal(t, "println", m.Name)
	require.Equal(t, "(Ljava/lang/String;)V", m.Descriptor)

	t.Run("wrong kind", func(t *testing.T) {
		_, err := pool.MethodRef(field)
		require.ErrorIs(t, err, ErrWrongKind)

		_, err = pool.ClassName(str)
		require.ErrorIs(t, err, ErrWrongKind)

		_, err = pool.Utf8(str)
		require.ErrorIs(t, err, ErrWrongKind)
	})
}

func TestConstantPoolMethodRefToNonClass(t *testing.T) {
	b := classtest.New()
	text := b.Utf8("NotAClass")
	nat := b.NameAndType("run", "()V")
	ref := b.Constant(TagMethodref, byte(text>>8), byte(text), byte(nat>>8), byte(nat))
	pool := poolOf(t, b)

	_, err := pool.MethodRef(ref)
	require.ErrorIs(t, err, ErrWrongKind)
}

func TestConstantPoolWideConstants(t *testing.T) {
	b := classtest.New()
	long := b.Long(-2)
	after := b.Utf8("after")
	pool := poolOf(t, b)

	require.Equal(t, long+2, after)

	e, err := pool.Entry(long)
	require.NoError(t, err)
	require.Equal(t, int64(-2), e.(*ConstantLong).Value)

	_, err = pool.Entry(long + 1)
	require.ErrorIs(t, err, ErrBadIndex)

	s, err := pool.Utf8(after)
	require.NoError(t, err)
	require.Equal(t, "after", s)
}

func TestConstantPoolDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		count uint16
		data  []byte
		want  error
	}{
		{"unknown tag", 2, []byte{2, 0, 0}, ErrUnknownTag},
		{"truncated class", 2, []byte{TagClass, 0}, ErrTruncated},
		{"truncated utf8", 2, []byte{TagUtf8, 0, 5, 'a'}, ErrTruncated},
		{"invalid utf8", 2, []byte{TagUtf8, 0, 1, 0xFF}, ErrInvalidText},
		{"long in last slot", 2, []byte{TagLong, 0, 0, 0, 0, 0, 0, 0, 1}, ErrBadIndex},
		{"zero count", 0, nil, ErrBadIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConstantPool(NewReader(tt.data), tt.count)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeModifiedUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", []byte("abc"), "abc"},
		{"encoded nul", []byte{'a', 0xC0, 0x80, 'b'}, "a\x00b"},
		{"two byte", []byte{0xC3, 0xA9}, "é"},
		{"three byte", []byte{0xE6, 0x97, 0xA5}, "日"},
		// U+1F600 as the surrogate pair D83D DE00
		{"surrogate pair", []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}, "\U0001F600"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeModifiedUTF8(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	invalid := map[string][]byte{
		"raw nul":        {'a', 0x00},
		"four byte form": {0xF0, 0x9F, 0x98, 0x80},
		"truncated":      {0xE6, 0x97},
		"bad continue":   {0xC3, 0x41},
		"overlong":       {0xC1, 0x81},
	}
	for name, in := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := decodeModifiedUTF8(in)
			require.ErrorIs(t, err, ErrInvalidText)
		})
	}
}

func TestConstantPoolInRange(t *testing.T) {
	pool := ConstantPool{&ConstantLong{Value: 1}, nil, &ConstantUtf8{Value: "x"}}
	require.False(t, pool.InRange(0))
	require.True(t, pool.InRange(1))
	require.True(t, pool.InRange(2))
	require.True(t, pool.InRange(3))
	require.False(t, pool.InRange(4))
}
