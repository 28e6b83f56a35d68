package classtest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderEncoding(t *testing.T) {
	b := New()
	require.Equal(t, uint16(1), b.Utf8("Code"))
	require.Equal(t, uint16(2), b.Long(-2))
	require.Equal(t, uint16(5), b.Class("Foo"))
	require.Equal(t, uint16(1), b.Utf8("Code"))

	require.Equal(t, []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x03, 0xAA, 0xBB, 0xCC},
		b.Attribute("Code", []byte{0xAA, 0xBB, 0xCC}))

	require.Equal(t, []byte{
		0x00, 0x02, // max_stack
		0x00, 0x01, // max_locals
		0x00, 0x00, 0x00, 0x01, 0xB1, // code
		0x00, 0x00, // exception table
		0x00, 0x00, // attributes
	}, b.CodeBody(2, 1, []byte{0xB1}))

	out := b.Bytes()
	require.Equal(t, []byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00, 0x00, 0x00, 0x34, 0x00, 0x06}, out[:10])
	require.Equal(t, []byte{0x01, 0x00, 0x04, 'C', 'o', 'd', 'e'}, out[10:17])
	require.Equal(t, []byte{0x05, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE}, out[17:26])
}
