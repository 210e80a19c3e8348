package models

import "fmt"

// ProgType is a program segment type (PT_* in the C headers). The value
// space is open; unknown numeric values are preserved.
type ProgType uint32

const (
	PT_NULL         ProgType = 0
	PT_LOAD         ProgType = 1
	PT_DYNAMIC      ProgType = 2
	PT_INTERP       ProgType = 3
	PT_NOTE         ProgType = 4
	PT_SHLIB        ProgType = 5
	PT_PHDR         ProgType = 6
	PT_TLS          ProgType = 7
	PT_GNU_EH_FRAME ProgType = 0x6474e550
	PT_GNU_STACK    ProgType = 0x6474e551
	PT_GNU_RELRO    ProgType = 0x6474e552
)

var progTypeNames = map[ProgType]string{
	PT_NULL:         "NULL",
	PT_LOAD:         "LOAD",
	PT_DYNAMIC:      "DYNAMIC",
	PT_INTERP:       "INTERP",
	PT_NOTE:         "NOTE",
	PT_SHLIB:        "SHLIB",
	PT_PHDR:         "PHDR",
	PT_TLS:          "TLS",
	PT_GNU_EH_FRAME: "GNU_EH_FRAME",
	PT_GNU_STACK:    "GNU_STACK",
	PT_GNU_RELRO:    "GNU_RELRO",
}

func (t ProgType) String() string {
	if name, ok := progTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%#x)", uint32(t))
}

// ProgFlag is the segment permission bitmask.
type ProgFlag uint32

const (
	PF_NONE ProgFlag = 0
	PF_X    ProgFlag = 1
	PF_W    ProgFlag = 2
	PF_R    ProgFlag = 4
)

// String renders the readelf-style RWE triple, with spaces for unset bits.
func (f ProgFlag) String() string {
	p := [3]byte{' ', ' ', ' '}
	if f&PF_R != 0 {
		p[0] = 'R'
	}
	if f&PF_W != 0 {
		p[1] = 'W'
	}
	if f&PF_X != 0 {
		p[2] = 'E'
	}
	return string(p[:])
}

// ProgramHeader describes one segment of the program header table.
// Entries keep their file-table order, which is the load order.
type ProgramHeader struct {
	Type   ProgType
	Offset uint64
	Vaddr  uint64
	Paddr  uint64
	Filesz uint64
	Memsz  uint64
	Flags  ProgFlag
	Align  uint64
}

func (p ProgramHeader) String() string {
	return fmt.Sprintf("Program Header: Type: %s Offset: %#010x VirtAddr: %#010x PhysAddr: %#010x FileSize: %#06x MemSize: %#06x Flags: %s Align: %#x",
		p.Type, p.Offset, p.Vaddr, p.Paddr, p.Filesz, p.Memsz, p.Flags, p.Align)
}
