package disasm

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daimatz/gojavap/internal/classtest"
	"github.com/daimatz/gojavap/pkg/classfile"
)

func hi(i uint16) byte { return byte(i >> 8) }
func lo(i uint16) byte { return byte(i) }

// resolved parses and resolves the class written by b.
func resolved(t *testing.T, b *classtest.Builder) *classfile.ClassFile {
	t.Helper()
	cf, err := classfile.ParseBytes(b.Bytes())
	require.NoError(t, err)
	require.NoError(t, cf.ResolveAttributes())
	return cf
}

func listing(t *testing.T, cf *classfile.ClassFile, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New(&buf, opts).Disassemble(cf))
	return buf.String()
}

func TestDisassembleMinimalClass(t *testing.T) {
	b := classtest.New()
	b.ThisClass = b.Class("Foo")

	out := listing(t, resolved(t, b), Options{})
	require.Equal(t, "this_class Foo\nversion 52.0\n", out)
	require.NotContains(t, out, "method")
}

func TestDisassembleSingleReturn(t *testing.T) {
	b := classtest.New()
	b.ThisClass = b.Class("Foo")
	b.Method(0, "run", "()V", b.Code(3, 7, []byte{0xB1}))

	cf := resolved(t, b)
	code := cf.Methods[0].Code()
	require.Equal(t, uint16(3), code.MaxStack)
	require.Equal(t, uint16(7), code.MaxLocals)

	out := listing(t, cf, Options{})
	require.Equal(t, strings.Join([]string{
		"this_class Foo",
		"version 52.0",
		"method run ()V",
		"  attribute Code max_stack=3 max_locals=7",
		"       0: return",
		"",
	}, "\n"), out)
}

func TestDisassembleHello(t *testing.T) {
	b := classtest.New()
	b.AccessFlags = 0x0021
	b.ThisClass = b.Class("Hello")
	b.SuperClass = b.Class("java/lang/Object")
	initRef := b.MethodRef("java/lang/Object", "<init>", "()V")
	out := b.FieldRef("java/lang/System", "out", "Ljava/io/PrintStream;")
	str := b.StringConst("Hello, world")
	printlnRef := b.MethodRef("java/io/PrintStream", "println", "(Ljava/lang/String;)V")

	b.Method(0x0001, "<init>", "()V",
		b.Code(1, 1, []byte{0x2A, 0xB7, hi(initRef), lo(initRef), 0xB1}, b.LineNumberTable(0, 1)))
	b.Method(0x0009, "main", "([Ljava/lang/String;)V",
		b.Code(2, 1, []byte{
			0xB2, hi(out), lo(out),
			0x12, lo(str),
			0xB6, hi(printlnRef), lo(printlnRef),
			0xB1,
		}, b.LineNumberTable(0, 3, 8, 4)))
	b.ClassAttribute(b.SourceFile("Hello.java"))

	want := strings.Join([]string{
		"this_class Hello",
		"super_class java/lang/Object",
		"version 52.0",
		"source_file Hello.java",
		"method public <init> ()V",
		"  attribute Code max_stack=1 max_locals=1",
		"       0: aload_0",
		fmt.Sprintf(`       1: invokespecial %d // methodref class=java/lang/Object method=<init> descriptor="()V"`, initRef),
		"       4: return",
		"method public static main ([Ljava/lang/String;)V",
		"  attribute Code max_stack=2 max_locals=1",
		fmt.Sprintf(`       0: getstatic %d // fieldref class=java/lang/System field=out descriptor="Ljava/io/PrintStream;"`, out),
		fmt.Sprintf(`       3: ldc %d // string "Hello, world"`, str),
		fmt.Sprintf(`       5: invokevirtual %d // methodref class=java/io/PrintStream method=println descriptor="(Ljava/lang/String;)V"`, printlnRef),
		"       8: return",
		"",
	}, "\n")

	require.Equal(t, want, listing(t, resolved(t, b), Options{}))
}

func TestDisassembleOperands(t *testing.T) {
	b := classtest.New()
	b.ThisClass = b.Class("Foo")
	num := b.Integer(42)
	b.Method(0, "f", "()V", b.Code(4, 2, []byte{
		0x10, 0xFF, // bipush -1
		0x3C,             // istore_1
		0x84, 0x01, 0x02, // iinc 1 2
		0xBC, 0x0A, // newarray int
		0x57,       // pop
		0x12, 0x7F, // ldc out of range
		0x12, 0x00, // ldc index 0
		0x12, lo(num), // ldc int
		0x57,             // pop
		0xA7, 0xFF, 0xF0, // goto back to 0
	}))

	out := listing(t, resolved(t, b), Options{})
	for _, want := range []string{
		"       0: bipush -1 // 0xff",
		"       3: iinc 1 2",
		"       6: newarray int",
		"       9: ldc 127 // couldn't resolve constant",
		"      11: ldc 0 // couldn't resolve constant",
		fmt.Sprintf("      13: ldc %d // int 42", num),
		"      16: goto 0",
	} {
		require.Contains(t, out, want+"\n")
	}
}

func TestDisassembleConstants(t *testing.T) {
	b := classtest.New()
	b.ThisClass = b.Class("Foo")
	b.Long(7)
	b.NameAndType("x", "I")

	out := listing(t, resolved(t, b), Options{Constants: true})
	require.Contains(t, out, "const   1 \"Foo\"\n")
	require.Contains(t, out, "const   2 class=Foo\n")
	require.Contains(t, out, "const   3 long 7\n")
	require.NotContains(t, out, "const   4")
	require.Contains(t, out, "const   7 name=x type=\"I\"\n")
}

func TestDisassembleColor(t *testing.T) {
	b := classtest.New()
	b.ThisClass = b.Class("Foo")
	b.Method(0, "run", "()V", b.Code(0, 0, []byte{0xB1}))

	out := listing(t, resolved(t, b), Options{Color: true})
	require.Contains(t, out, "\x1b[")
	require.Contains(t, out, "return")
}

func TestDisassembleErrors(t *testing.T) {
	tests := []struct {
		name    string
		build   func(b *classtest.Builder)
		resolve bool
		want    error
	}{
		{
			name: "method reference to non-class",
			build: func(b *classtest.Builder) {
				text := b.Utf8("NotAClass")
				nat := b.NameAndType("run", "()V")
				ref := b.Constant(classfile.TagMethodref, hi(text), lo(text), hi(nat), lo(nat))
				b.Method(0, "f", "()V", b.Code(1, 1, []byte{0xB7, hi(ref), lo(ref), 0xB1}))
			},
			resolve: true,
			want:    classfile.ErrWrongKind,
		},
		{
			name: "method reference with class index out of range",
			build: func(b *classtest.Builder) {
				nat := b.NameAndType("run", "()V")
				ref := b.Constant(classfile.TagMethodref, 0, 127, hi(nat), lo(nat))
				b.Method(0, "f", "()V", b.Code(1, 1, []byte{0xB7, hi(ref), lo(ref), 0xB1}))
			},
			resolve: true,
			want:    classfile.ErrBadIndex,
		},
		{
			name: "super class is not a class",
			build: func(b *classtest.Builder) {
				b.SuperClass = b.Utf8("NotAClass")
			},
			resolve: true,
			want:    classfile.ErrWrongKind,
		},
		{
			name: "super class out of range",
			build: func(b *classtest.Builder) {
				b.SuperClass = 200
			},
			resolve: true,
			want:    classfile.ErrBadIndex,
		},
		{
			name: "unrecognized method attribute",
			build: func(b *classtest.Builder) {
				b.Method(0, "f", "()V", b.Attribute("Exceptions", []byte{0, 0}))
			},
			resolve: true,
			want:    classfile.ErrUnsupported,
		},
		{
			name: "unrecognized code attribute",
			build: func(b *classtest.Builder) {
				b.Method(0, "f", "()V", b.Code(0, 0, []byte{0xB1}, b.Attribute("StackMapTable", []byte{0, 0})))
			},
			resolve: true,
			want:    classfile.ErrUnsupported,
		},
		{
			name: "attributes not resolved",
			build: func(b *classtest.Builder) {
				b.Method(0, "f", "()V", b.Code(0, 0, []byte{0xB1}))
			},
			want: classfile.ErrUnresolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := classtest.New()
			b.ThisClass = b.Class("Foo")
			tt.build(b)

			cf, err := classfile.ParseBytes(b.Bytes())
			require.NoError(t, err)
			if tt.resolve {
				require.NoError(t, cf.ResolveAttributes())
			}

			err = New(&bytes.Buffer{}, Options{}).Disassemble(cf)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDisassembleBadThisClass(t *testing.T) {
	b := classtest.New()
	b.ThisClass = b.Utf8("Foo")

	err := New(&bytes.Buffer{}, Options{}).Disassemble(resolved(t, b))
	require.ErrorIs(t, err, classfile.ErrWrongKind)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, fmt.Errorf("disk full") }

func TestDisassembleWriteError(t *testing.T) {
	b := classtest.New()
	b.ThisClass = b.Class("Foo")

	err := New(failingWriter{}, Options{}).Disassemble(resolved(t, b))
	require.EqualError(t, err, "disk full")
}
