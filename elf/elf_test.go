package elf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/elfkit/elffile/models"
)

// image builds synthetic ELF byte images for tests.
type image struct {
	buf   bytes.Buffer
	order binary.ByteOrder
}

func (b *image) raw(p ...byte) { b.buf.Write(p) }

func (b *image) str(s string) { b.buf.WriteString(s) }

func (b *image) u16(v uint16) {
	var p [2]byte
	b.order.PutUint16(p[:], v)
	b.buf.Write(p[:])
}

func (b *image) u32(v uint32) {
	var p [4]byte
	b.order.PutUint32(p[:], v)
	b.buf.Write(p[:])
}

func (b *image) u64(v uint64) {
	var p [8]byte
	b.order.PutUint64(p[:], v)
	b.buf.Write(p[:])
}

func (b *image) reader() *bytes.Reader {
	return bytes.NewReader(b.buf.Bytes())
}

func (b *image) ident(class, data, osabi, abiver byte) {
	b.raw(0x7f, 'E', 'L', 'F', class, data, 1, osabi, abiver, 0, 0, 0, 0, 0, 0, 0)
}

type ehdr struct {
	etype, machine         uint16
	entry, phoff, shoff    uint64
	phnum, shnum, shstrndx uint16
}

func (b *image) header(class byte, h ehdr) {
	b.u16(h.etype)
	b.u16(h.machine)
	b.u32(1)
	if class == 1 {
		b.u32(uint32(h.entry))
		b.u32(uint32(h.phoff))
		b.u32(uint32(h.shoff))
		b.u32(0)  // flags
		b.u16(52) // ehsize
		b.u16(32) // phentsize
		b.u16(h.phnum)
		b.u16(40) // shentsize
	} else {
		b.u64(h.entry)
		b.u64(h.phoff)
		b.u64(h.shoff)
		b.u32(0)
		b.u16(64)
		b.u16(56)
		b.u16(h.phnum)
		b.u16(64)
	}
	b.u16(h.shnum)
	b.u16(h.shstrndx)
}

func (b *image) phdr32(typ, off, vaddr, paddr, filesz, memsz, flags, align uint32) {
	b.u32(typ)
	b.u32(off)
	b.u32(vaddr)
	b.u32(paddr)
	b.u32(filesz)
	b.u32(memsz)
	b.u32(flags)
	b.u32(align)
}

func (b *image) phdr64(typ, flags uint32, off, vaddr, paddr, filesz, memsz, align uint64) {
	b.u32(typ)
	b.u32(flags)
	b.u64(off)
	b.u64(vaddr)
	b.u64(paddr)
	b.u64(filesz)
	b.u64(memsz)
	b.u64(align)
}

func (b *image) shdr32(name, typ, flags, addr, off, size, link, info, align, entsize uint32) {
	b.u32(name)
	b.u32(typ)
	b.u32(flags)
	b.u32(addr)
	b.u32(off)
	b.u32(size)
	b.u32(link)
	b.u32(info)
	b.u32(align)
	b.u32(entsize)
}

func (b *image) shdr64(name, typ uint32, flags, addr, off, size uint64, link, info uint32, align, entsize uint64) {
	b.u32(name)
	b.u32(typ)
	b.u64(flags)
	b.u64(addr)
	b.u64(off)
	b.u64(size)
	b.u32(link)
	b.u32(info)
	b.u64(align)
	b.u64(entsize)
}

func TestHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		class  models.Class
		endian models.Endianness
	}{
		{"32le", models.ELFCLASS32, models.ELFDATA2LSB},
		{"32be", models.ELFCLASS32, models.ELFDATA2MSB},
		{"64le", models.ELFCLASS64, models.ELFDATA2LSB},
		{"64be", models.ELFCLASS64, models.ELFDATA2MSB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := uint64(0x11223344)
			if tt.class == models.ELFCLASS64 {
				entry = 0x1122334455667788
			}
			b := &image{order: tt.endian.ByteOrder()}
			b.ident(byte(tt.class), byte(tt.endian), 3, 7)
			b.header(byte(tt.class), ehdr{etype: 2, machine: 62, entry: entry})

			f, err := New(b.reader())
			if err != nil {
				t.Fatal(err)
			}
			want := models.FileHeader{
				Class:      tt.class,
				Endianness: tt.endian,
				OSABI:      models.ELFOSABI_LINUX,
				ABIVersion: 7,
				Type:       models.ET_EXEC,
				Machine:    models.EM_X86_64,
				Entry:      entry,
			}
			if diff := cmp.Diff(want, f.Header); diff != "" {
				t.Fatalf("header mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Minimal little-endian 32-bit file: no program headers, a 16-byte NOBITS
// .bss whose file offset points past the end of the image, and the name
// table. The .bss buffer must come back zero-filled without any read.
func bssImage() *image {
	b := &image{order: binary.LittleEndian}
	b.ident(1, 1, 0, 0)
	b.header(1, ehdr{etype: 1, machine: 3, shoff: 52, shnum: 2, shstrndx: 1})
	b.shdr32(1, 8, 3, 0x1000, 999, 16, 0, 0, 4, 0) // .bss, NOBITS
	b.shdr32(6, 3, 0, 0, 132, 16, 0, 0, 1, 0)      // .shstrtab
	b.str("\x00.bss\x00.shstrtab\x00")
	return b
}

func TestNobitsSection(t *testing.T) {
	f, err := New(bssImage().reader())
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Progs) != 0 {
		t.Errorf("got %d program headers, want 0", len(f.Progs))
	}
	bss := f.Section(".bss")
	if bss == nil {
		t.Fatal("no .bss section")
	}
	if bss.Header.Type != models.SHT_NOBITS {
		t.Errorf("type = %s, want NOBITS", bss.Header.Type)
	}
	if len(bss.Data) != 16 {
		t.Fatalf("len(data) = %d, want 16", len(bss.Data))
	}
	for i, c := range bss.Data {
		if c != 0 {
			t.Fatalf("data[%d] = %#x, want 0", i, c)
		}
	}
	if sec := f.Section(".text"); sec != nil {
		t.Errorf("Section(.text) = %v, want nil", sec)
	}
}

func TestMatch(t *testing.T) {
	if !Match(bssImage().reader()) {
		t.Error("Match rejected a valid image")
	}
	if Match(bytes.NewReader([]byte{0x7f, 'E', 'L', 'G'})) {
		t.Error("Match accepted a bad magic")
	}
	if Match(bytes.NewReader(nil)) {
		t.Error("Match accepted an empty reader")
	}
}

func TestDecodeErrors(t *testing.T) {
	badVersion := &image{order: binary.LittleEndian}
	badVersion.ident(1, 1, 0, 0)
	badVersion.u16(2)
	badVersion.u16(3)
	badVersion.u32(7)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"bad magic", []byte("\x7fELG\x01\x01\x01\x00\x00\x00\x00\x00\x00\x00\x00\x00"), ErrInvalidMagic},
		{"short ident", []byte("\x7fELF\x01\x01"), ErrInvalidFormat},
		{"bad class", []byte("\x7fELF\x03\x01\x01\x00\x00\x00\x00\x00\x00\x00\x00\x00"), ErrInvalidFormat},
		{"bad endianness", []byte("\x7fELF\x01\x00\x01\x00\x00\x00\x00\x00\x00\x00\x00\x00"), ErrInvalidFormat},
		{"bad version", badVersion.buf.Bytes(), ErrInvalidFormat},
		{"truncated header", []byte("\x7fELF\x01\x01\x01\x00\x00\x00\x00\x00\x00\x00\x00\x00\x02\x00"), ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(bytes.NewReader(tt.data))
			if errors.Cause(err) != tt.want {
				t.Fatalf("err = %v, want cause %v", err, tt.want)
			}
		})
	}
}

// Codes outside the recognized sets must decode, not fail.
func TestUnknownCodesDecode(t *testing.T) {
	b := &image{order: binary.BigEndian}
	b.ident(2, 2, 0xee, 0)
	b.header(2, ehdr{etype: 0x7777, machine: 0x1234})

	f, err := New(b.reader())
	if err != nil {
		t.Fatal(err)
	}
	if f.Header.Machine != models.Machine(0x1234) {
		t.Errorf("machine = %v, want 0x1234", uint16(f.Header.Machine))
	}
	if f.Header.Type != models.FileType(0x7777) {
		t.Errorf("type = %v, want 0x7777", uint16(f.Header.Type))
	}
	if f.Header.OSABI != models.OSABI(0xee) {
		t.Errorf("osabi = %v, want 0xee", uint8(f.Header.OSABI))
	}
}

func TestProgramHeader32(t *testing.T) {
	b := &image{order: binary.LittleEndian}
	b.ident(1, 1, 0, 0)
	b.header(1, ehdr{etype: 2, machine: 3, phoff: 52, phnum: 1})
	b.phdr32(1, 0x1000, 0x8048000, 0x8048000, 0x111, 0x222, 5, 0x1000)

	f, err := New(b.reader())
	if err != nil {
		t.Fatal(err)
	}
	want := []models.ProgramHeader{{
		Type:   models.PT_LOAD,
		Offset: 0x1000,
		Vaddr:  0x8048000,
		Paddr:  0x8048000,
		Filesz: 0x111,
		Memsz:  0x222,
		Flags:  models.PF_R | models.PF_X,
		Align:  0x1000,
	}}
	if diff := cmp.Diff(want, f.Progs); diff != "" {
		t.Fatalf("program headers mismatch (-want +got):\n%s", diff)
	}
}

// The 64-bit record carries flags directly after the type, before the
// offset. Distinguishable values prove the decode honors that order.
func TestProgramHeader64FlagPosition(t *testing.T) {
	b := &image{order: binary.LittleEndian}
	b.ident(2, 1, 0, 0)
	b.header(2, ehdr{etype: 2, machine: 62, phoff: 64, phnum: 1})
	b.phdr64(1, 6, 0xdead0000, 0x400000, 0x400000, 0x111, 0x222, 0x200000)

	f, err := New(b.reader())
	if err != nil {
		t.Fatal(err)
	}
	want := []models.ProgramHeader{{
		Type:   models.PT_LOAD,
		Flags:  models.PF_R | models.PF_W,
		Offset: 0xdead0000,
		Vaddr:  0x400000,
		Paddr:  0x400000,
		Filesz: 0x111,
		Memsz:  0x222,
		Align:  0x200000,
	}}
	if diff := cmp.Diff(want, f.Progs); diff != "" {
		t.Fatalf("program headers mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionDataShortRead(t *testing.T) {
	b := &image{order: binary.LittleEndian}
	b.ident(1, 1, 0, 0)
	b.header(1, ehdr{etype: 1, machine: 3, shoff: 52, shnum: 1, shstrndx: 0})
	// PROGBITS section claiming 64 bytes at an offset near the image end.
	b.shdr32(0, 1, 0, 0, 90, 64, 0, 0, 1, 0)

	_, err := New(b.reader())
	if err == nil {
		t.Fatal("expected an error for a section shorter than declared")
	}
}

func TestBadNameTableIndex(t *testing.T) {
	b := &image{order: binary.LittleEndian}
	b.ident(1, 1, 0, 0)
	b.header(1, ehdr{etype: 1, machine: 3, shoff: 52, shnum: 1, shstrndx: 9})
	b.shdr32(0, 8, 0, 0, 0, 0, 0, 0, 0, 0)

	_, err := New(b.reader())
	if errors.Cause(err) != ErrInvalidFormat {
		t.Fatalf("err = %v, want cause %v", err, ErrInvalidFormat)
	}
}
