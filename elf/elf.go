// Package elf decodes Executable and Linkable Format files: the file
// header, both header tables, section contents, and symbol tables, for all
// four combinations of word width and byte order.
package elf

import (
	"bytes"
	"io"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"

	"github.com/elfkit/elffile/models"
)

var elfMagic = []byte{0x7f, 0x45, 0x4c, 0x46}

const identSize = 16

// Match reports whether r starts with the ELF magic.
func Match(r io.ReaderAt) bool {
	var p [4]byte
	_, err := r.ReadAt(p[:], 0)
	return err == nil && bytes.Equal(p[:], elfMagic)
}

// Section couples one section header with that section's contents. NOBITS
// sections carry a zero-filled buffer of the declared size; nothing is
// read from the file for them.
type Section struct {
	Header models.SectionHeader
	Data   []byte
}

func (s *Section) String() string {
	return s.Header.String()
}

// File is a fully decoded ELF file. It is populated once by New and
// read-only afterwards; only symbol tables are decoded later, on demand,
// through Symbols.
type File struct {
	Header   models.FileHeader
	Progs    []models.ProgramHeader
	Sections []*Section
}

// Open reads and decodes the ELF file at path.
func Open(path string) (*File, error) {
	p, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(bytes.NewReader(p))
}

// New decodes an ELF file from r.
//
// The decode is staged: ident, file header, program header table, section
// header table, then section contents for every section, and only then
// section names, since names live in a section whose data must already be
// loaded. An error at any stage aborts the whole decode.
func New(r io.ReaderAt) (*File, error) {
	var ident [identSize]byte
	if _, err := io.ReadFull(io.NewSectionReader(r, 0, identSize), ident[:]); err != nil {
		return nil, truncated(err, "ident")
	}
	if !bytes.Equal(ident[:4], elfMagic) {
		return nil, errors.WithStack(ErrInvalidMagic)
	}
	class := models.Class(ident[4])
	if class != models.ELFCLASS32 && class != models.ELFCLASS64 {
		return nil, invalidf("bad EI_CLASS %#x", ident[4])
	}
	endian := models.Endianness(ident[5])
	if endian != models.ELFDATA2LSB && endian != models.ELFDATA2MSB {
		return nil, invalidf("bad EI_DATA %#x", ident[5])
	}
	f := &File{Header: models.FileHeader{
		Class:      class,
		Endianness: endian,
		OSABI:      models.OSABI(ident[7]),
		ABIVersion: ident[8],
	}}
	if err := f.decode(r); err != nil {
		return nil, err
	}
	return f, nil
}

// window returns a reader over r from off to the end.
func window(r io.ReaderAt, off uint64) io.Reader {
	return io.NewSectionReader(r, int64(off), 1<<63-1-int64(off))
}

func (f *File) decode(r io.ReaderAt) error {
	order := f.Header.Endianness.ByteOrder()
	s := &stream{r: window(r, identSize), order: order}

	etype, err := s.u16()
	if err != nil {
		return truncated(err, "file header")
	}
	machine, err := s.u16()
	if err != nil {
		return truncated(err, "file header")
	}
	version, err := s.u32()
	if err != nil {
		return truncated(err, "file header")
	}
	// Field layout beyond this point is undefined for other versions.
	if version != 1 {
		return invalidf("unsupported ELF version %d", version)
	}
	f.Header.Type = models.FileType(etype)
	f.Header.Machine = models.Machine(machine)

	if f.Header.Entry, err = s.word(f.Header.Class); err != nil {
		return truncated(err, "file header")
	}
	phoff, err := s.word(f.Header.Class)
	if err != nil {
		return truncated(err, "file header")
	}
	shoff, err := s.word(f.Header.Class)
	if err != nil {
		return truncated(err, "file header")
	}

	// flags, ehsize, phentsize are decoded and discarded; only the table
	// counts and the name table index are kept.
	if _, err = s.u32(); err != nil {
		return truncated(err, "file header")
	}
	if _, err = s.u16(); err != nil {
		return truncated(err, "file header")
	}
	if _, err = s.u16(); err != nil {
		return truncated(err, "file header")
	}
	phnum, err := s.u16()
	if err != nil {
		return truncated(err, "file header")
	}
	if _, err = s.u16(); err != nil {
		return truncated(err, "file header")
	}
	shnum, err := s.u16()
	if err != nil {
		return truncated(err, "file header")
	}
	shstrndx, err := s.u16()
	if err != nil {
		return truncated(err, "file header")
	}

	if err := f.decodeProgs(r, phoff, phnum); err != nil {
		return err
	}
	nameIdx, err := f.decodeSections(r, shoff, shnum)
	if err != nil {
		return err
	}
	if err := f.loadSectionData(r); err != nil {
		return err
	}
	return f.resolveNames(nameIdx, shstrndx)
}

func (f *File) decodeProgs(r io.ReaderAt, phoff uint64, phnum uint16) error {
	s := &stream{r: window(r, phoff), order: f.Header.Endianness.ByteOrder()}
	f.Progs = make([]models.ProgramHeader, 0, phnum)
	for i := 0; i < int(phnum); i++ {
		var hdr models.ProgramHeader
		if f.Header.Class == models.ELFCLASS64 {
			var rec prog64
			if err := s.unpack(&rec); err != nil {
				return truncated(err, "program header")
			}
			hdr = rec.header()
		} else {
			var rec prog32
			if err := s.unpack(&rec); err != nil {
				return truncated(err, "program header")
			}
			hdr = rec.header()
		}
		f.Progs = append(f.Progs, hdr)
	}
	return nil
}

// decodeSections fills the section list with unresolved names and returns
// the side list of raw name offsets, parallel to f.Sections.
func (f *File) decodeSections(r io.ReaderAt, shoff uint64, shnum uint16) ([]uint32, error) {
	s := &stream{r: window(r, shoff), order: f.Header.Endianness.ByteOrder()}
	nameIdx := make([]uint32, 0, shnum)
	f.Sections = make([]*Section, 0, shnum)
	for i := 0; i < int(shnum); i++ {
		var hdr models.SectionHeader
		var name uint32
		if f.Header.Class == models.ELFCLASS64 {
			var rec shdr64
			if err := s.unpack(&rec); err != nil {
				return nil, truncated(err, "section header")
			}
			hdr, name = rec.header()
		} else {
			var rec shdr32
			if err := s.unpack(&rec); err != nil {
				return nil, truncated(err, "section header")
			}
			hdr, name = rec.header()
		}
		nameIdx = append(nameIdx, name)
		f.Sections = append(f.Sections, &Section{Header: hdr})
	}
	return nameIdx, nil
}

func (f *File) loadSectionData(r io.ReaderAt) error {
	for i, sec := range f.Sections {
		sec.Data = make([]byte, sec.Header.Size)
		if sec.Header.Type == models.SHT_NOBITS {
			continue
		}
		sr := io.NewSectionReader(r, int64(sec.Header.Offset), int64(sec.Header.Size))
		if _, err := io.ReadFull(sr, sec.Data); err != nil {
			return errors.Wrapf(err, "section %d data", i)
		}
	}
	return nil
}

func (f *File) resolveNames(nameIdx []uint32, shstrndx uint16) error {
	if len(f.Sections) == 0 {
		return nil
	}
	if int(shstrndx) >= len(f.Sections) {
		return invalidf("section name table index %d out of range", shstrndx)
	}
	names := f.Sections[shstrndx].Data
	for i, sec := range f.Sections {
		name, err := getString(names, int(nameIdx[i]))
		if err != nil {
			return errors.Wrapf(err, "section %d name", i)
		}
		sec.Header.Name = name
	}
	return nil
}

// Section returns the first section with the given name, or nil if the
// file has no such section.
func (f *File) Section(name string) *Section {
	for _, s := range f.Sections {
		if s.Header.Name == name {
			return s
		}
	}
	return nil
}

func (f *File) String() string {
	var b strings.Builder
	b.WriteString("{ " + f.Header.String() + " } { ")
	for _, p := range f.Progs {
		b.WriteString(p.String())
	}
	b.WriteString(" } { ")
	for _, s := range f.Sections {
		b.WriteString(s.String())
	}
	b.WriteString(" }")
	return b.String()
}
