package models

import (
	"encoding/binary"
	"strings"
	"testing"
)

func TestProgFlagString(t *testing.T) {
	tests := []struct {
		flags ProgFlag
		want  string
	}{
		{PF_NONE, "   "},
		{PF_R, "R  "},
		{PF_W, " W "},
		{PF_X, "  E"},
		{PF_R | PF_X, "R E"},
		{PF_R | PF_W | PF_X, "RWE"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("ProgFlag(%d).String() = %q, want %q", tt.flags, got, tt.want)
		}
	}
}

func TestEndiannessByteOrder(t *testing.T) {
	if ELFDATA2LSB.ByteOrder() != binary.LittleEndian {
		t.Error("LSB should map to little-endian")
	}
	if ELFDATA2MSB.ByteOrder() != binary.BigEndian {
		t.Error("MSB should map to big-endian")
	}
}

// Every code type renders unknown values instead of failing; a sample per
// type is enough.
func TestUnknownRenderings(t *testing.T) {
	tests := []struct {
		name string
		got  string
	}{
		{"class", Class(9).String()},
		{"endianness", Endianness(0).String()},
		{"osabi", OSABI(0x99).String()},
		{"file type", FileType(0xff00).String()},
		{"machine", Machine(0x2345).String()},
		{"prog type", ProgType(0x60000000).String()},
		{"section type", SectionType(0x60000000).String()},
		{"sym type", SymType(9).String()},
		{"sym bind", SymBind(9).String()},
		{"sym vis", SymVis(9).String()},
	}
	for _, tt := range tests {
		if !strings.Contains(tt.got, "unknown") {
			t.Errorf("%s: %q does not mark the value unknown", tt.name, tt.got)
		}
	}
}

func TestKnownRenderings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{EM_X86_64.String(), "AMD x86-64"},
		{ELFOSABI_FREEBSD.String(), "FreeBSD"},
		{ET_DYN.String(), "shared library"},
		{PT_GNU_STACK.String(), "GNU_STACK"},
		{SHT_NOBITS.String(), "NOBITS"},
		{STT_FUNC.String(), "code object"},
		{STB_GNU_UNIQUE.String(), "unique"},
		{STV_PROTECTED.String(), "protected"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestFileHeaderString(t *testing.T) {
	h := FileHeader{
		Class:      ELFCLASS64,
		Endianness: ELFDATA2LSB,
		OSABI:      ELFOSABI_SYSV,
		Type:       ET_EXEC,
		Machine:    EM_X86_64,
	}
	want := "File Header for ELF64 LSB ELF executable for UNIX System V AMD x86-64"
	if got := h.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
