// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyph

// compactData holds ASCII 32..126, three columns each, five rows high.
var compactData = [95 * 3]byte{
	0x00, 0x00, 0x00, // ' '
	0x00, 0x17, 0x00, // '!'
	0x03, 0x00, 0x03, // '"'
	0x1F, 0x0A, 0x1F, // '#'
	0x16, 0x1F, 0x0D, // '$'
	0x19, 0x04, 0x13, // '%'
	0x0A, 0x15, 0x1E, // '&'
	0x00, 0x03, 0x00, // '\''
	0x00, 0x0E, 0x11, // '('
	0x11, 0x0E, 0x00, // ')'
	0x0A, 0x04, 0x0A, // '*'
	0x04, 0x0E, 0x04, // '+'
	0x10, 0x08, 0x00, // ','
	0x04, 0x04, 0x04, // '-'
	0x00, 0x10, 0x00, // '.'
	0x18, 0x04, 0x03, // '/'
	0x1F, 0x11, 0x1F, // '0'
	0x12, 0x1F, 0x10, // '1'
	0x1D, 0x15, 0x17, // '2'
	0x11, 0x15, 0x1F, // '3'
	0x07, 0x04, 0x1F, // '4'
	0x17, 0x15, 0x1D, // '5'
	0x1F, 0x15, 0x1D, // '6'
	0x01, 0x01, 0x1F, // '7'
	0x1F, 0x15, 0x1F, // '8'
	0x17, 0x15, 0x1F, // '9'
	0x00, 0x0A, 0x00, // ':'
	0x10, 0x0A, 0x00, // ';'
	0x04, 0x0A, 0x11, // '<'
	0x0A, 0x0A, 0x0A, // '='
	0x11, 0x0A, 0x04, // '>'
	0x01, 0x15, 0x03, // '?'
	0x0E, 0x15, 0x16, // '@'
	0x1E, 0x05, 0x1E, // 'A'
	0x1F, 0x15, 0x0A, // 'B'
	0x0E, 0x11, 0x11, // 'C'
	0x1F, 0x11, 0x0E, // 'D'
	0x1F, 0x15, 0x11, // 'E'
	0x1F, 0x05, 0x01, // 'F'
	0x0E, 0x11, 0x1D, // 'G'
	0x1F, 0x04, 0x1F, // 'H'
	0x11, 0x1F, 0x11, // 'I'
	0x08, 0x10, 0x0F, // 'J'
	0x1F, 0x04, 0x1B, // 'K'
	0x1F, 0x10, 0x10, // 'L'
	0x1F, 0x06, 0x1F, // 'M'
	0x1F, 0x01, 0x1E, // 'N'
	0x0E, 0x11, 0x0E, // 'O'
	0x1F, 0x05, 0x02, // 'P'
	0x0E, 0x19, 0x1E, // 'Q'
	0x1F, 0x05, 0x1A, // 'R'
	0x12, 0x15, 0x09, // 'S'
	0x01, 0x1F, 0x01, // 'T'
	0x0F, 0x10, 0x1F, // 'U'
	0x0F, 0x10, 0x0F, // 'V'
	0x1F, 0x0C, 0x1F, // 'W'
	0x1B, 0x04, 0x1B, // 'X'
	0x03, 0x1C, 0x03, // 'Y'
	0x19, 0x15, 0x13, // 'Z'
	0x1F, 0x11, 0x00, // '['
	0x03, 0x04, 0x18, // '\\'
	0x00, 0x11, 0x1F, // ']'
	0x02, 0x01, 0x02, // '^'
	0x10, 0x10, 0x10, // '_'
	0x01, 0x02, 0x00, // '`'
	0x18, 0x14, 0x1C, // 'a'
	0x1F, 0x14, 0x08, // 'b'
	0x08, 0x14, 0x14, // 'c'
	0x08, 0x14, 0x1F, // 'd'
	0x0C, 0x1A, 0x14, // 'e'
	0x04, 0x1E, 0x05, // 'f'
	0x12, 0x15, 0x0F, // 'g'
	0x1F, 0x04, 0x18, // 'h'
	0x00, 0x1D, 0x00, // 'i'
	0x10, 0x10, 0x0D, // 'j'
	0x1F, 0x08, 0x14, // 'k'
	0x11, 0x1F, 0x10, // 'l'
	0x1C, 0x0C, 0x1C, // 'm'
	0x1C, 0x04, 0x18, // 'n'
	0x08, 0x14, 0x08, // 'o'
	0x1E, 0x0A, 0x04, // 'p'
	0x04, 0x0A, 0x1E, // 'q'
	0x1C, 0x08, 0x04, // 'r'
	0x10, 0x1C, 0x04, // 's'
	0x04, 0x1E, 0x14, // 't'
	0x0C, 0x10, 0x1C, // 'u'
	0x0C, 0x10, 0x0C, // 'v'
	0x1C, 0x18, 0x1C, // 'w'
	0x14, 0x08, 0x14, // 'x'
	0x16, 0x10, 0x0E, // 'y'
	0x04, 0x1C, 0x10, // 'z'
	0x04, 0x1B, 0x11, // '{'
	0x00, 0x1F, 0x00, // '|'
	0x11, 0x1B, 0x04, // '}'
	0x02, 0x03, 0x01, // '~'
}
