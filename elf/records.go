package elf

import "github.com/elfkit/elffile/models"

// On-disk record layouts per class. Field declaration order is the wire
// order; struc derives field widths from the types.

type prog32 struct {
	Type   uint32
	Off    uint32
	Vaddr  uint32
	Paddr  uint32
	Filesz uint32
	Memsz  uint32
	Flags  uint32
	Align  uint32
}

// The 64-bit program header moves Flags up next to Type. This matches the
// on-disk format and must not be "normalized".
type prog64 struct {
	Type   uint32
	Flags  uint32
	Off    uint64
	Vaddr  uint64
	Paddr  uint64
	Filesz uint64
	Memsz  uint64
	Align  uint64
}

func (r *prog32) header() models.ProgramHeader {
	return models.ProgramHeader{
		Type:   models.ProgType(r.Type),
		Offset: uint64(r.Off),
		Vaddr:  uint64(r.Vaddr),
		Paddr:  uint64(r.Paddr),
		Filesz: uint64(r.Filesz),
		Memsz:  uint64(r.Memsz),
		Flags:  models.ProgFlag(r.Flags),
		Align:  uint64(r.Align),
	}
}

func (r *prog64) header() models.ProgramHeader {
	return models.ProgramHeader{
		Type:   models.ProgType(r.Type),
		Offset: r.Off,
		Vaddr:  r.Vaddr,
		Paddr:  r.Paddr,
		Filesz: r.Filesz,
		Memsz:  r.Memsz,
		Flags:  models.ProgFlag(r.Flags),
		Align:  r.Align,
	}
}

type shdr32 struct {
	Name      uint32
	Type      uint32
	Flags     uint32
	Addr      uint32
	Off       uint32
	Size      uint32
	Link      uint32
	Info      uint32
	Addralign uint32
	Entsize   uint32
}

type shdr64 struct {
	Name      uint32
	Type      uint32
	Flags     uint64
	Addr      uint64
	Off       uint64
	Size      uint64
	Link      uint32
	Info      uint32
	Addralign uint64
	Entsize   uint64
}

// header returns the widened section header, name unresolved, plus the raw
// name offset for the string-table pass.
func (r *shdr32) header() (models.SectionHeader, uint32) {
	return models.SectionHeader{
		Type:      models.SectionType(r.Type),
		Flags:     models.SectionFlag(r.Flags),
		Addr:      uint64(r.Addr),
		Offset:    uint64(r.Off),
		Size:      uint64(r.Size),
		Link:      r.Link,
		Info:      r.Info,
		Addralign: uint64(r.Addralign),
		Entsize:   uint64(r.Entsize),
	}, r.Name
}

func (r *shdr64) header() (models.SectionHeader, uint32) {
	return models.SectionHeader{
		Type:      models.SectionType(r.Type),
		Flags:     models.SectionFlag(r.Flags),
		Addr:      r.Addr,
		Offset:    r.Off,
		Size:      r.Size,
		Link:      r.Link,
		Info:      r.Info,
		Addralign: r.Addralign,
		Entsize:   r.Entsize,
	}, r.Name
}

type sym32 struct {
	Name  uint32
	Value uint32
	Size  uint32
	Info  uint8
	Other uint8
	Shndx uint16
}

// The 64-bit symbol record hoists the info/other/shndx group ahead of the
// widened value and size.
type sym64 struct {
	Name  uint32
	Info  uint8
	Other uint8
	Shndx uint16
	Value uint64
	Size  uint64
}

// symbol splits the packed info and other bytes and returns the raw name
// offset alongside the record, name left for the caller to resolve.
func (r *sym32) symbol() (uint32, models.Symbol) {
	return r.Name, models.Symbol{
		Value:      uint64(r.Value),
		Size:       uint64(r.Size),
		Shndx:      r.Shndx,
		Type:       models.SymType(r.Info & 0xf),
		Bind:       models.SymBind(r.Info >> 4),
		Visibility: models.SymVis(r.Other & 0x3),
	}
}

func (r *sym64) symbol() (uint32, models.Symbol) {
	return r.Name, models.Symbol{
		Value:      r.Value,
		Size:       r.Size,
		Shndx:      r.Shndx,
		Type:       models.SymType(r.Info & 0xf),
		Bind:       models.SymBind(r.Info >> 4),
		Visibility: models.SymVis(r.Other & 0x3),
	}
}
