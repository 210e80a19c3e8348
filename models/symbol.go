package models

import "fmt"

// SymType is the low nibble of a symbol record's info byte.
type SymType uint8

const (
	STT_NOTYPE    SymType = 0
	STT_OBJECT    SymType = 1
	STT_FUNC      SymType = 2
	STT_SECTION   SymType = 3
	STT_FILE      SymType = 4
	STT_COMMON    SymType = 5
	STT_TLS       SymType = 6
	STT_GNU_IFUNC SymType = 10
)

func (t SymType) String() string {
	switch t {
	case STT_NOTYPE:
		return "unspecified"
	case STT_OBJECT:
		return "data object"
	case STT_FUNC:
		return "code object"
	case STT_SECTION:
		return "section"
	case STT_FILE:
		return "file name"
	case STT_COMMON:
		return "common data object"
	case STT_TLS:
		return "thread-local data object"
	case STT_GNU_IFUNC:
		return "indirect code object"
	}
	return fmt.Sprintf("unknown (%#x)", uint8(t))
}

// SymBind is the high nibble of a symbol record's info byte.
type SymBind uint8

const (
	STB_LOCAL      SymBind = 0
	STB_GLOBAL     SymBind = 1
	STB_WEAK       SymBind = 2
	STB_GNU_UNIQUE SymBind = 10
)

func (b SymBind) String() string {
	switch b {
	case STB_LOCAL:
		return "local"
	case STB_GLOBAL:
		return "global"
	case STB_WEAK:
		return "weak"
	case STB_GNU_UNIQUE:
		return "unique"
	}
	return fmt.Sprintf("unknown (%#x)", uint8(b))
}

// SymVis is the low two bits of a symbol record's other byte.
type SymVis uint8

const (
	STV_DEFAULT   SymVis = 0
	STV_INTERNAL  SymVis = 1
	STV_HIDDEN    SymVis = 2
	STV_PROTECTED SymVis = 3
)

func (v SymVis) String() string {
	switch v {
	case STV_DEFAULT:
		return "default"
	case STV_INTERNAL:
		return "internal"
	case STV_HIDDEN:
		return "hidden"
	case STV_PROTECTED:
		return "protected"
	}
	return fmt.Sprintf("unknown (%#x)", uint8(v))
}

// Symbol is one decoded symbol table record, name already resolved
// through the table's linked string table.
type Symbol struct {
	Name       string
	Value      uint64
	Size       uint64
	Shndx      uint16
	Type       SymType
	Bind       SymBind
	Visibility SymVis
}

func (s Symbol) String() string {
	return fmt.Sprintf("Symbol: Value: %#010x Size: %#06x Type: %s Bind: %s Vis: %s Section: %d Name: %s",
		s.Value, s.Size, s.Type, s.Bind, s.Visibility, s.Shndx, s.Name)
}
