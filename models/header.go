package models

import (
	"encoding/binary"
	"fmt"
)

// Class is the ELF word width, taken from ident byte 4. It decides the
// size of every address and offset field in the rest of the file.
type Class uint8

const (
	ELFCLASS32 Class = 1
	ELFCLASS64 Class = 2
)

func (c Class) String() string {
	switch c {
	case ELFCLASS32:
		return "ELF32"
	case ELFCLASS64:
		return "ELF64"
	}
	return fmt.Sprintf("unknown class %#x", uint8(c))
}

// Endianness is the data encoding, taken from ident byte 5.
type Endianness uint8

const (
	ELFDATA2LSB Endianness = 1
	ELFDATA2MSB Endianness = 2
)

// ByteOrder returns the order used to decode every multi-byte field of a
// file with this encoding.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == ELFDATA2MSB {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (e Endianness) String() string {
	switch e {
	case ELFDATA2LSB:
		return "LSB"
	case ELFDATA2MSB:
		return "MSB"
	}
	return fmt.Sprintf("unknown data encoding %#x", uint8(e))
}

// OSABI identifies the operating system ABI, taken from ident byte 7.
// The value space is open; unknown values are kept as-is.
type OSABI uint8

const (
	ELFOSABI_NONE    OSABI = 0
	ELFOSABI_SYSV    OSABI = 0
	ELFOSABI_HPUX    OSABI = 1
	ELFOSABI_NETBSD  OSABI = 2
	ELFOSABI_LINUX   OSABI = 3
	ELFOSABI_SOLARIS OSABI = 6
	ELFOSABI_AIX     OSABI = 7
	ELFOSABI_IRIX    OSABI = 8
	ELFOSABI_FREEBSD OSABI = 9
	ELFOSABI_TRU64   OSABI = 10
	ELFOSABI_MODESTO OSABI = 11
	ELFOSABI_OPENBSD OSABI = 12
)

var osabiNames = map[OSABI]string{
	ELFOSABI_SYSV:    "UNIX System V",
	ELFOSABI_HPUX:    "HP-UX",
	ELFOSABI_NETBSD:  "NetBSD",
	ELFOSABI_LINUX:   "Linux with GNU extensions",
	ELFOSABI_SOLARIS: "Solaris",
	ELFOSABI_AIX:     "AIX",
	ELFOSABI_IRIX:    "SGI Irix",
	ELFOSABI_FREEBSD: "FreeBSD",
	ELFOSABI_TRU64:   "Compaq TRU64 UNIX",
	ELFOSABI_MODESTO: "Novell Modesto",
	ELFOSABI_OPENBSD: "OpenBSD",
}

func (o OSABI) String() string {
	if name, ok := osabiNames[o]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%#x)", uint8(o))
}

// FileType is the object file type (ET_* in the C headers).
type FileType uint16

const (
	ET_NONE FileType = 0
	ET_REL  FileType = 1
	ET_EXEC FileType = 2
	ET_DYN  FileType = 3
	ET_CORE FileType = 4
)

func (t FileType) String() string {
	switch t {
	case ET_NONE:
		return "none"
	case ET_REL:
		return "relocatable object"
	case ET_EXEC:
		return "executable"
	case ET_DYN:
		return "shared library"
	case ET_CORE:
		return "core"
	}
	return fmt.Sprintf("unknown type %#x", uint16(t))
}

// FileHeader holds the decoded ELF file header. It is filled in once
// during the decode and never mutated afterwards.
type FileHeader struct {
	Class      Class
	Endianness Endianness
	OSABI      OSABI
	ABIVersion uint8
	Type       FileType
	Machine    Machine
	// Entry is the virtual address of the program entry point.
	Entry uint64
}

func (h FileHeader) String() string {
	return fmt.Sprintf("File Header for %s %s ELF %s for %s %s",
		h.Class, h.Endianness, h.Type, h.OSABI, h.Machine)
}
