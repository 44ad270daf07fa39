// chunk.go - Length-prefixed, CRC-checked chunk framing.
package pngenc

import (
	"encoding/binary"
	"hash/crc32"
)

// ChunkType is the 4-byte ASCII tag of a chunk.
type ChunkType [4]byte

// Critical chunk types.
var (
	TypeIHDR = ChunkType{'I', 'H', 'D', 'R'}
	TypePLTE = ChunkType{'P', 'L', 'T', 'E'}
	TypeIDAT = ChunkType{'I', 'D', 'A', 'T'}
	TypeIEND = ChunkType{'I', 'E', 'N', 'D'}
)

func (t ChunkType) String() string {
	return string(t[:])
}

// ChunkCRC returns the CRC-32 (IEEE) over the type tag followed by content.
func ChunkCRC(typ ChunkType, content []byte) uint32 {
	crc := crc32.ChecksumIEEE(typ[:])
	return crc32.Update(crc, crc32.IEEETable, content)
}

// EncodeChunk frames content as a PNG chunk:
// big-endian length, type, content, big-endian CRC of type and content.
func EncodeChunk(typ ChunkType, content []byte) []byte {
	b := make([]byte, 0, 12+len(content))
	b = binary.BigEndian.AppendUint32(b, uint32(len(content)))
	b = append(b, typ[:]...)
	b = append(b, content...)
	return binary.BigEndian.AppendUint32(b, ChunkCRC(typ, content))
}
