// Package classtest assembles class files byte by byte for tests.
package classtest

import "golang.org/x/crypto/cryptobyte"

// Builder accumulates a class file. Constant pool helpers return the
// 1-based index of the entry they add; identical Utf8 entries are shared.
type Builder struct {
	Minor, Major uint16
	AccessFlags  uint16
	ThisClass    uint16
	SuperClass   uint16

	// Interfaces and Fields are written as raw counts with no bodies.
	Interfaces uint16
	Fields     uint16

	pool    []byte
	next    uint16
	utf8s   map[string]uint16
	methods [][]byte
	attrs   [][]byte
}

// New returns a Builder for a Java 8 class file with an empty pool.
func New() *Builder {
	return &Builder{Major: 52, next: 1, utf8s: make(map[string]uint16)}
}

func encode(f func(c *cryptobyte.Builder)) []byte {
	c := cryptobyte.NewBuilder(nil)
	f(c)
	return c.BytesOrPanic()
}

func u2(v uint16) []byte {
	return encode(func(c *cryptobyte.Builder) { c.AddUint16(v) })
}

func u4(v uint32) []byte {
	return encode(func(c *cryptobyte.Builder) { c.AddUint32(v) })
}

// Constant appends an entry with the given tag and body and returns its index.
func (b *Builder) Constant(tag byte, body ...byte) uint16 {
	b.pool = append(b.pool, encode(func(c *cryptobyte.Builder) {
		c.AddUint8(tag)
		c.AddBytes(body)
	})...)
	i := b.next
	b.next++
	if tag == 5 || tag == 6 {
		b.next++
	}
	return i
}

// Utf8Raw appends a Utf8 entry with the given encoded bytes.
func (b *Builder) Utf8Raw(raw []byte) uint16 {
	return b.Constant(1, encode(func(c *cryptobyte.Builder) {
		c.AddUint16LengthPrefixed(func(c *cryptobyte.Builder) { c.AddBytes(raw) })
	})...)
}

func (b *Builder) Utf8(s string) uint16 {
	if i, ok := b.utf8s[s]; ok {
		return i
	}
	i := b.Utf8Raw([]byte(s))
	b.utf8s[s] = i
	return i
}

func (b *Builder) Class(name string) uint16 {
	return b.Constant(7, u2(b.Utf8(name))...)
}

func (b *Builder) StringConst(s string) uint16 {
	return b.Constant(8, u2(b.Utf8(s))...)
}

func (b *Builder) Integer(v int32) uint16 {
	return b.Constant(3, u4(uint32(v))...)
}

func (b *Builder) Long(v int64) uint16 {
	return b.Constant(5, encode(func(c *cryptobyte.Builder) {
		c.AddUint32(uint32(uint64(v) >> 32))
		c.AddUint32(uint32(v))
	})...)
}

func (b *Builder) NameAndType(name, descriptor string) uint16 {
	nameIndex, descIndex := b.Utf8(name), b.Utf8(descriptor)
	return b.Constant(12, encode(func(c *cryptobyte.Builder) {
		c.AddUint16(nameIndex)
		c.AddUint16(descIndex)
	})...)
}

func (b *Builder) ref(tag byte, class, name, descriptor string) uint16 {
	classIndex := b.Class(class)
	nat := b.NameAndType(name, descriptor)
	return b.Constant(tag, encode(func(c *cryptobyte.Builder) {
		c.AddUint16(classIndex)
		c.AddUint16(nat)
	})...)
}

func (b *Builder) FieldRef(class, name, descriptor string) uint16 {
	return b.ref(9, class, name, descriptor)
}

func (b *Builder) MethodRef(class, name, descriptor string) uint16 {
	return b.ref(10, class, name, descriptor)
}

func addList(c *cryptobyte.Builder, items [][]byte) {
	c.AddUint16(uint16(len(items)))
	for _, item := range items {
		c.AddBytes(item)
	}
}

// Attribute encodes an attribute_info named name.
func (b *Builder) Attribute(name string, data []byte) []byte {
	nameIndex := b.Utf8(name)
	return encode(func(c *cryptobyte.Builder) {
		c.AddUint16(nameIndex)
		c.AddUint32LengthPrefixed(func(c *cryptobyte.Builder) { c.AddBytes(data) })
	})
}

// CodeBody encodes the payload of a Code attribute with an empty
// exception table.
func (b *Builder) CodeBody(maxStack, maxLocals uint16, code []byte, attrs ...[]byte) []byte {
	return encode(func(c *cryptobyte.Builder) {
		c.AddUint16(maxStack)
		c.AddUint16(maxLocals)
		c.AddUint32LengthPrefixed(func(c *cryptobyte.Builder) { c.AddBytes(code) })
		c.AddUint16(0)
		addList(c, attrs)
	})
}

// Code encodes a complete Code attribute.
func (b *Builder) Code(maxStack, maxLocals uint16, code []byte, attrs ...[]byte) []byte {
	return b.Attribute("Code", b.CodeBody(maxStack, maxLocals, code, attrs...))
}

// LineNumberTable encodes a LineNumberTable from (pc, line) pairs.
func (b *Builder) LineNumberTable(pairs ...uint16) []byte {
	return b.Attribute("LineNumberTable", encode(func(c *cryptobyte.Builder) {
		c.AddUint16(uint16(len(pairs) / 2))
		for _, v := range pairs {
			c.AddUint16(v)
		}
	}))
}

func (b *Builder) SourceFile(name string) []byte {
	return b.Attribute("SourceFile", u2(b.Utf8(name)))
}

// Method adds a method_info with the given encoded attributes.
func (b *Builder) Method(flags uint16, name, descriptor string, attrs ...[]byte) {
	nameIndex, descIndex := b.Utf8(name), b.Utf8(descriptor)
	b.methods = append(b.methods, encode(func(c *cryptobyte.Builder) {
		c.AddUint16(flags)
		c.AddUint16(nameIndex)
		c.AddUint16(descIndex)
		addList(c, attrs)
	}))
}

// ClassAttribute adds a top-level attribute.
func (b *Builder) ClassAttribute(attr []byte) {
	b.attrs = append(b.attrs, attr)
}

// Bytes returns the encoded class file.
func (b *Builder) Bytes() []byte {
	return encode(func(c *cryptobyte.Builder) {
		c.AddUint32(0xCAFEBABE)
		c.AddUint16(b.Minor)
		c.AddUint16(b.Major)
		c.AddUint16(b.next)
		c.AddBytes(b.pool)
		c.AddUint16(b.AccessFlags)
		c.AddUint16(b.ThisClass)
		c.AddUint16(b.SuperClass)
		c.AddUint16(b.Interfaces)
		c.AddUint16(b.Fields)
		addList(c, b.methods)
		addList(c, b.attrs)
	})
}
