package models

import "fmt"

// SectionType is a section type (SHT_* in the C headers). Open set:
// OS- and processor-specific ranges are in active use, so unknown numeric
// values are preserved rather than rejected.
type SectionType uint32

const (
	SHT_NULL           SectionType = 0
	SHT_PROGBITS       SectionType = 1
	SHT_SYMTAB         SectionType = 2
	SHT_STRTAB         SectionType = 3
	SHT_RELA           SectionType = 4
	SHT_HASH           SectionType = 5
	SHT_DYNAMIC        SectionType = 6
	SHT_NOTE           SectionType = 7
	SHT_NOBITS         SectionType = 8
	SHT_REL            SectionType = 9
	SHT_SHLIB          SectionType = 10
	SHT_DYNSYM         SectionType = 11
	SHT_INIT_ARRAY     SectionType = 12
	SHT_FINI_ARRAY     SectionType = 13
	SHT_PREINIT_ARRAY  SectionType = 14
	SHT_GROUP          SectionType = 15
	SHT_SYMTAB_SHNDX   SectionType = 16
	SHT_GNU_ATTRIBUTES SectionType = 0x6ffffff5
	SHT_GNU_HASH       SectionType = 0x6ffffff6
	SHT_GNU_LIBLIST    SectionType = 0x6ffffff7
	SHT_GNU_VERDEF     SectionType = 0x6ffffffd
	SHT_GNU_VERNEED    SectionType = 0x6ffffffe
	SHT_GNU_VERSYM     SectionType = 0x6fffffff
	SHT_ARM_EXIDX      SectionType = 0x70000001
	SHT_ARM_ATTRIBUTES SectionType = 0x70000003
)

var sectionTypeNames = map[SectionType]string{
	SHT_NULL:           "NULL",
	SHT_PROGBITS:       "PROGBITS",
	SHT_SYMTAB:         "SYMTAB",
	SHT_STRTAB:         "STRTAB",
	SHT_RELA:           "RELA",
	SHT_HASH:           "HASH",
	SHT_DYNAMIC:        "DYNAMIC",
	SHT_NOTE:           "NOTE",
	SHT_NOBITS:         "NOBITS",
	SHT_REL:            "REL",
	SHT_SHLIB:          "SHLIB",
	SHT_DYNSYM:         "DYNSYM",
	SHT_INIT_ARRAY:     "INIT_ARRAY",
	SHT_FINI_ARRAY:     "FINI_ARRAY",
	SHT_PREINIT_ARRAY:  "PREINIT_ARRAY",
	SHT_GROUP:          "GROUP",
	SHT_SYMTAB_SHNDX:   "SYMTAB_SHNDX",
	SHT_GNU_ATTRIBUTES: "GNU_ATTRIBUTES",
	SHT_GNU_HASH:       "GNU_HASH",
	SHT_GNU_LIBLIST:    "GNU_LIBLIST",
	SHT_GNU_VERDEF:     "GNU_VERDEF",
	SHT_GNU_VERNEED:    "GNU_VERNEED",
	SHT_GNU_VERSYM:     "GNU_VERSYM",
	SHT_ARM_EXIDX:      "ARM_EXIDX",
	SHT_ARM_ATTRIBUTES: "ARM_ATTRIBUTES",
}

func (t SectionType) String() string {
	if name, ok := sectionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%#x)", uint32(t))
}

// SectionFlag is the section attribute bitmask (SHF_*). 32-bit files
// carry it as a 32-bit field; it is widened here.
type SectionFlag uint64

const (
	SHF_NONE             SectionFlag = 0
	SHF_WRITE            SectionFlag = 1
	SHF_ALLOC            SectionFlag = 2
	SHF_EXECINSTR        SectionFlag = 4
	SHF_MERGE            SectionFlag = 16
	SHF_STRINGS          SectionFlag = 32
	SHF_INFO_LINK        SectionFlag = 64
	SHF_LINK_ORDER       SectionFlag = 128
	SHF_OS_NONCONFORMING SectionFlag = 256
	SHF_GROUP            SectionFlag = 512
	SHF_TLS              SectionFlag = 1024
)

func (f SectionFlag) String() string {
	return fmt.Sprintf("%#x", uint64(f))
}

// SectionHeader describes one entry of the section header table. Name is
// empty until the string-table pass resolves it. The meaning of Link and
// Info depends on Type; for symbol tables Link names the companion string
// table section.
type SectionHeader struct {
	Name      string
	Type      SectionType
	Flags     SectionFlag
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	Addralign uint64
	Entsize   uint64
}

func (s SectionHeader) String() string {
	return fmt.Sprintf("Section Header: Name: %s Type: %s Flags: %s Addr: %#010x Offset: %#06x Size: %#06x Link: %d Info: %#x AddrAlign: %d EntSize: %d",
		s.Name, s.Type, s.Flags, s.Addr, s.Offset, s.Size, s.Link, s.Info, s.Addralign, s.Entsize)
}
