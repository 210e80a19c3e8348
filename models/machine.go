package models

import "fmt"

// Machine is the target architecture (EM_* in the C headers). New values
// appear regularly, so this is an open set: decoding keeps whatever number
// the file carries and String falls back to a hex rendering.
type Machine uint16

const (
	EM_NONE        Machine = 0
	EM_M32         Machine = 1
	EM_SPARC       Machine = 2
	EM_386         Machine = 3
	EM_68K         Machine = 4
	EM_88K         Machine = 5
	EM_860         Machine = 7
	EM_MIPS        Machine = 8
	EM_S370        Machine = 9
	EM_MIPS_RS3_LE Machine = 10
	EM_PARISC      Machine = 15
	EM_VPP500      Machine = 17
	EM_SPARC32PLUS Machine = 18
	EM_960         Machine = 19
	EM_PPC         Machine = 20
	EM_PPC64       Machine = 21
	EM_S390        Machine = 22
	EM_V800        Machine = 36
	EM_FR20        Machine = 37
	EM_RH32        Machine = 38
	EM_RCE         Machine = 39
	EM_ARM         Machine = 40
	EM_FAKE_ALPHA  Machine = 41
	EM_SH          Machine = 42
	EM_SPARCV9     Machine = 43
	EM_TRICORE     Machine = 44
	EM_ARC         Machine = 45
	EM_H8_300      Machine = 46
	EM_H8_300H     Machine = 47
	EM_H8S         Machine = 48
	EM_H8_500      Machine = 49
	EM_IA_64       Machine = 50
	EM_MIPS_X      Machine = 51
	EM_COLDFIRE    Machine = 52
	EM_68HC12      Machine = 53
	EM_MMA         Machine = 54
	EM_PCP         Machine = 55
	EM_NCPU        Machine = 56
	EM_NDR1        Machine = 57
	EM_STARCORE    Machine = 58
	EM_ME16        Machine = 59
	EM_ST100       Machine = 60
	EM_TINYJ       Machine = 61
	EM_X86_64      Machine = 62
	EM_PDSP        Machine = 63
	EM_FX66        Machine = 66
	EM_ST9PLUS     Machine = 67
	EM_ST7         Machine = 68
	EM_68HC16      Machine = 69
	EM_68HC11      Machine = 70
	EM_68HC08      Machine = 71
	EM_68HC05      Machine = 72
	EM_SVX         Machine = 73
	EM_ST19        Machine = 74
	EM_VAX         Machine = 75
	EM_CRIS        Machine = 76
	EM_JAVELIN     Machine = 77
	EM_FIREPATH    Machine = 78
	EM_ZSP         Machine = 79
	EM_MMIX        Machine = 80
	EM_HUANY       Machine = 81
	EM_PRISM       Machine = 82
	EM_AVR         Machine = 83
	EM_FR30        Machine = 84
	EM_D10V        Machine = 85
	EM_D30V        Machine = 86
	EM_V850        Machine = 87
	EM_M32R        Machine = 88
	EM_MN10300     Machine = 89
	EM_MN10200     Machine = 90
	EM_PJ          Machine = 91
	EM_OPENRISC    Machine = 92
	EM_ARC_A5      Machine = 93
	EM_XTENSA      Machine = 94
	EM_AARCH64     Machine = 183
	EM_TILEPRO     Machine = 188
	EM_MICROBLAZE  Machine = 189
	EM_TILEGX      Machine = 191
)

var machineNames = map[Machine]string{
	EM_NONE:        "none",
	EM_M32:         "AT&T WE 32100",
	EM_SPARC:       "SPARC",
	EM_386:         "Intel 80386",
	EM_68K:         "Motorola 68000",
	EM_88K:         "Motorola 88000",
	EM_860:         "Intel 80860",
	EM_MIPS:        "MIPS R3000",
	EM_S370:        "IBM System/370",
	EM_MIPS_RS3_LE: "MIPS R3000 little-endian",
	EM_PARISC:      "HPPA",
	EM_VPP500:      "Fujitsu VPP500",
	EM_SPARC32PLUS: "SPARC v8+",
	EM_960:         "Intel 80960",
	EM_PPC:         "PowerPC",
	EM_PPC64:       "PowerPC 64-bit",
	EM_S390:        "IBM S390",
	EM_V800:        "NEC V800",
	EM_FR20:        "Fujitsu FR20",
	EM_RH32:        "TRW RH-32",
	EM_RCE:         "Motorola RCE",
	EM_ARM:         "ARM",
	EM_FAKE_ALPHA:  "Digital Alpha",
	EM_SH:          "Hitachi SH",
	EM_SPARCV9:     "SPARC v9 64-bit",
	EM_TRICORE:     "Siemens Tricore",
	EM_ARC:         "Argonaut RISC Core",
	EM_H8_300:      "Hitachi H8/300",
	EM_H8_300H:     "Hitachi H8/300H",
	EM_H8S:         "Hitachi H8S",
	EM_H8_500:      "Hitachi H8/500",
	EM_IA_64:       "Intel Itanium",
	EM_MIPS_X:      "Stanford MIPS-X",
	EM_COLDFIRE:    "Motorola Coldfire",
	EM_68HC12:      "Motorola M68HC12",
	EM_MMA:         "Fujitsu MMA",
	EM_PCP:         "Siemens PCP",
	EM_NCPU:        "Sony nCPU",
	EM_NDR1:        "Denso NDR1",
	EM_STARCORE:    "Motorola Star*Core",
	EM_ME16:        "Toyota ME16",
	EM_ST100:       "STMicroelectronics ST100",
	EM_TINYJ:       "Advanced Logic TinyJ",
	EM_X86_64:      "AMD x86-64",
	EM_PDSP:        "Sony DSP",
	EM_FX66:        "Siemens FX66",
	EM_ST9PLUS:     "STMicroelectronics ST9+",
	EM_ST7:         "STMicroelectronics ST7",
	EM_68HC16:      "Motorola MC68HC16",
	EM_68HC11:      "Motorola MC68HC11",
	EM_68HC08:      "Motorola MC68HC08",
	EM_68HC05:      "Motorola MC68HC05",
	EM_SVX:         "Silicon Graphics SVx",
	EM_ST19:        "STMicroelectronics ST19",
	EM_VAX:         "Digital VAX",
	EM_CRIS:        "Axis CRIS",
	EM_JAVELIN:     "Infineon Javelin",
	EM_FIREPATH:    "Element 14 FirePath",
	EM_ZSP:         "LSI Logic ZSP",
	EM_MMIX:        "Knuth MMIX",
	EM_HUANY:       "Harvard HUANY",
	EM_PRISM:       "SiTera Prism",
	EM_AVR:         "Atmel AVR",
	EM_FR30:        "Fujitsu FR30",
	EM_D10V:        "Mitsubishi D10V",
	EM_D30V:        "Mitsubishi D30V",
	EM_V850:        "NEC v850",
	EM_M32R:        "Mitsubishi M32R",
	EM_MN10300:     "Matsushita MN10300",
	EM_MN10200:     "Matsushita MN10200",
	EM_PJ:          "picoJava",
	EM_OPENRISC:    "OpenRISC",
	EM_ARC_A5:      "ARC Cores Tangent-A5",
	EM_XTENSA:      "Tensilica Xtensa",
	EM_AARCH64:     "AArch64",
	EM_TILEPRO:     "Tilera TILEPro",
	EM_MICROBLAZE:  "Xilinx MicroBlaze",
	EM_TILEGX:      "Tilera TILE-Gx",
}

func (m Machine) String() string {
	if name, ok := machineNames[m]; ok {
		return name
	}
	return fmt.Sprintf("unknown machine %#x", uint16(m))
}
