package elf

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/elfkit/elffile/models"
)

// Symbols decodes the symbol records of s. Only sections typed SYMTAB or
// DYNSYM carry symbols; any other section yields an empty list. Each name
// is resolved through the string table section named by s.Header.Link.
//
// Symbol tables are not decoded during the main decode; call this per
// section as needed.
func (f *File) Symbols(s *Section) ([]models.Symbol, error) {
	syms := []models.Symbol{}
	if s.Header.Type != models.SHT_SYMTAB && s.Header.Type != models.SHT_DYNSYM {
		return syms, nil
	}
	if int(s.Header.Link) >= len(f.Sections) {
		return nil, invalidf("symbol table links to section %d of %d", s.Header.Link, len(f.Sections))
	}
	strtab := f.Sections[s.Header.Link].Data

	br := bytes.NewReader(s.Data)
	rs := &stream{r: br, order: f.Header.Endianness.ByteOrder()}
	for br.Len() > 0 {
		var nameOff uint32
		var sym models.Symbol
		if f.Header.Class == models.ELFCLASS64 {
			var rec sym64
			if err := rs.unpack(&rec); err != nil {
				return nil, truncated(err, "symbol record")
			}
			nameOff, sym = rec.symbol()
		} else {
			var rec sym32
			if err := rs.unpack(&rec); err != nil {
				return nil, truncated(err, "symbol record")
			}
			nameOff, sym = rec.symbol()
		}
		name, err := getString(strtab, int(nameOff))
		if err != nil {
			return nil, errors.Wrapf(err, "symbol %d name", len(syms))
		}
		sym.Name = name
		syms = append(syms, sym)
	}
	return syms, nil
}
