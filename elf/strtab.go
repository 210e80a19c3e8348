package elf

// getString pulls the NUL-terminated string starting at off out of a
// loaded string table. The bytes between off and the terminator become the
// string as-is, with no character-set validation; names that are not valid
// UTF-8 survive byte for byte.
func getString(data []byte, off int) (string, error) {
	if off < 0 || off >= len(data) {
		return "", invalidf("string offset %d outside table of %d bytes", off, len(data))
	}
	for end := off; end < len(data); end++ {
		if data[end] == 0 {
			return string(data[off:end]), nil
		}
	}
	return "", invalidf("unterminated string at offset %d", off)
}
