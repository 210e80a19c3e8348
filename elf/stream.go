package elf

import (
	"encoding/binary"
	"io"

	"github.com/lunixbochs/struc"

	"github.com/elfkit/elffile/models"
)

// stream decodes scalars and fixed-layout records from r in a byte order
// fixed once per file by the ident. All multi-byte decoding funnels
// through here so the order is applied in exactly one place.
type stream struct {
	r     io.Reader
	order binary.ByteOrder
}

func (s *stream) u16() (uint16, error) {
	var p [2]byte
	if _, err := io.ReadFull(s.r, p[:]); err != nil {
		return 0, err
	}
	return s.order.Uint16(p[:]), nil
}

func (s *stream) u32() (uint32, error) {
	var p [4]byte
	if _, err := io.ReadFull(s.r, p[:]); err != nil {
		return 0, err
	}
	return s.order.Uint32(p[:]), nil
}

func (s *stream) u64() (uint64, error) {
	var p [8]byte
	if _, err := io.ReadFull(s.r, p[:]); err != nil {
		return 0, err
	}
	return s.order.Uint64(p[:]), nil
}

// word reads one class-native address or offset field, widening 32-bit
// values to uint64.
func (s *stream) word(c models.Class) (uint64, error) {
	if c == models.ELFCLASS64 {
		return s.u64()
	}
	v, err := s.u32()
	return uint64(v), err
}

// unpack decodes one fixed-layout record, fields in declaration order.
func (s *stream) unpack(i interface{}) error {
	return struc.UnpackWithOrder(s.r, i, s.order)
}
