package http2

// huffmanSym is one entry of the canonical static Huffman code defined in
// RFC 7541 Appendix B. code is left-aligned in the high bits of a uint32.
type huffmanSym struct {
	sym  uint16
	code uint32
	len  uint8
}

// staticHuffmanTable holds the 256 byte symbols plus the EOS symbol (256),
// ordered by symbol value, exactly as published in RFC 7541 Appendix B.
var staticHuffmanTable = [257]huffmanSym{
	{sym: 0, code: 0xffc00000, len: 13},
	{sym: 1, code: 0xffffb000, len: 23},
	{sym: 2, code: 0xfffffe20, len: 28},
	{sym: 3, code: 0xfffffe30, len: 28},
	{sym: 4, code: 0xfffffe40, len: 28},
	{sym: 5, code: 0xfffffe50, len: 28},
	{sym: 6, code: 0xfffffe60, len: 28},
	{sym: 7, code: 0xfffffe70, len: 28},
	{sym: 8, code: 0xfffffe80, len: 28},
	{sym: 9, code: 0xffffea00, len: 24},
	{sym: 10, code: 0xfffffff0, len: 30},
	{sym: 11, code: 0xfffffe90, len: 28},
	{sym: 12, code: 0xfffffea0, len: 28},
	{sym: 13, code: 0xfffffff4, len: 30},
	{sym: 14, code: 0xfffffeb0, len: 28},
	{sym: 15, code: 0xfffffec0, len: 28},
	{sym: 16, code: 0xfffffed0, len: 28},
	{sym: 17, code: 0xfffffee0, len: 28},
	{sym: 18, code: 0xfffffef0, len: 28},
	{sym: 19, code: 0xffffff00, len: 28},
	{sym: 20, code: 0xffffff10, len: 28},
	{sym: 21, code: 0xffffff20, len: 28},
	{sym: 22, code: 0xfffffff8, len: 30},
	{sym: 23, code: 0xffffff30, len: 28},
	{sym: 24, code: 0xffffff40, len: 28},
	{sym: 25, code: 0xffffff50, len: 28},
	{sym: 26, code: 0xffffff60, len: 28},
	{sym: 27, code: 0xffffff70, len: 28},
	{sym: 28, code: 0xffffff80, len: 28},
	{sym: 29, code: 0xffffff90, len: 28},
	{sym: 30, code: 0xffffffa0, len: 28},
	{sym: 31, code: 0xffffffb0, len: 28},
	{sym: 32, code: 0x50000000, len: 6},
	{sym: 33, code: 0xfe000000, len: 10},
	{sym: 34, code: 0xfe400000, len: 10},
	{sym: 35, code: 0xffa00000, len: 12},
	{sym: 36, code: 0xffc80000, len: 13},
	{sym: 37, code: 0x54000000, len: 6},
	{sym: 38, code: 0xf8000000, len: 8},
	{sym: 39, code: 0xff400000, len: 11},
	{sym: 40, code: 0xfe800000, len: 10},
	{sym: 41, code: 0xfec00000, len: 10},
	{sym: 42, code: 0xf9000000, len: 8},
	{sym: 43, code: 0xff600000, len: 11},
	{sym: 44, code: 0xfa000000, len: 8},
	{sym: 45, code: 0x58000000, len: 6},
	{sym: 46, code: 0x5c000000, len: 6},
	{sym: 47, code: 0x60000000, len: 6},
	{sym: 48, code: 0x00000000, len: 5},
	{sym: 49, code: 0x08000000, len: 5},
	{sym: 50, code: 0x10000000, len: 5},
	{sym: 51, code: 0x64000000, len: 6},
	{sym: 52, code: 0x68000000, len: 6},
	{sym: 53, code: 0x6c000000, len: 6},
	{sym: 54, code: 0x70000000, len: 6},
	{sym: 55, code: 0x74000000, len: 6},
	{sym: 56, code: 0x78000000, len: 6},
	{sym: 57, code: 0x7c000000, len: 6},
	{sym: 58, code: 0xb8000000, len: 7},
	{sym: 59, code: 0xfb000000, len: 8},
	{sym: 60, code: 0xfff80000, len: 15},
	{sym: 61, code: 0x80000000, len: 6},
	{sym: 62, code: 0xffb00000, len: 12},
	{sym: 63, code: 0xff000000, len: 10},
	{sym: 64, code: 0xffd00000, len: 13},
	{sym: 65, code: 0x84000000, len: 6},
	{sym: 66, code: 0xba000000, len: 7},
	{sym: 67, code: 0xbc000000, len: 7},
	{sym: 68, code: 0xbe000000, len: 7},
	{sym: 69, code: 0xc0000000, len: 7},
	{sym: 70, code: 0xc2000000, len: 7},
	{sym: 71, code: 0xc4000000, len: 7},
	{sym: 72, code: 0xc6000000, len: 7},
	{sym: 73, code: 0xc8000000, len: 7},
	{sym: 74, code: 0xca000000, len: 7},
	{sym: 75, code: 0xcc000000, len: 7},
	{sym: 76, code: 0xce000000, len: 7},
	{sym: 77, code: 0xd0000000, len: 7},
	{sym: 78, code: 0xd2000000, len: 7},
	{sym: 79, code: 0xd4000000, len: 7},
	{sym: 80, code: 0xd6000000, len: 7},
	{sym: 81, code: 0xd8000000, len: 7},
	{sym: 82, code: 0xda000000, len: 7},
	{sym: 83, code: 0xdc000000, len: 7},
	{sym: 84, code: 0xde000000, len: 7},
	{sym: 85, code: 0xe0000000, len: 7},
	{sym: 86, code: 0xe2000000, len: 7},
	{sym: 87, code: 0xe4000000, len: 7},
	{sym: 88, code: 0xfc000000, len: 8},
	{sym: 89, code: 0xe6000000, len: 7},
	{sym: 90, code: 0xfd000000, len: 8},
	{sym: 91, code: 0xffd80000, len: 13},
	{sym: 92, code: 0xfffe0000, len: 19},
	{sym: 93, code: 0xffe00000, len: 13},
	{sym: 94, code: 0xfff00000, len: 14},
	{sym: 95, code: 0x88000000, len: 6},
	{sym: 96, code: 0xfffa0000, len: 15},
	{sym: 97, code: 0x18000000, len: 5},
	{sym: 98, code: 0x8c000000, len: 6},
	{sym: 99, code: 0x20000000, len: 5},
	{sym: 100, code: 0x90000000, len: 6},
	{sym: 101, code: 0x28000000, len: 5},
	{sym: 102, code: 0x94000000, len: 6},
	{sym: 103, code: 0x98000000, len: 6},
	{sym: 104, code: 0x9c000000, len: 6},
	{sym: 105, code: 0x30000000, len: 5},
	{sym: 106, code: 0xe8000000, len: 7},
	{sym: 107, code: 0xea000000, len: 7},
	{sym: 108, code: 0xa0000000, len: 6},
	{sym: 109, code: 0xa4000000, len: 6},
	{sym: 110, code: 0xa8000000, len: 6},
	{sym: 111, code: 0x38000000, len: 5},
	{sym: 112, code: 0xac000000, len: 6},
	{sym: 113, code: 0xec000000, len: 7},
	{sym: 114, code: 0xb0000000, len: 6},
	{sym: 115, code: 0x40000000, len: 5},
	{sym: 116, code: 0x48000000, len: 5},
	{sym: 117, code: 0xb4000000, len: 6},
	{sym: 118, code: 0xee000000, len: 7},
	{sym: 119, code: 0xf0000000, len: 7},
	{sym: 120, code: 0xf2000000, len: 7},
	{sym: 121, code: 0xf4000000, len: 7},
	{sym: 122, code: 0xf6000000, len: 7},
	{sym: 123, code: 0xfffc0000, len: 15},
	{sym: 124, code: 0xff800000, len: 11},
	{sym: 125, code: 0xfff40000, len: 14},
	{sym: 126, code: 0xffe80000, len: 13},
	{sym: 127, code: 0xffffffc0, len: 28},
	{sym: 128, code: 0xfffe6000, len: 20},
	{sym: 129, code: 0xffff4800, len: 22},
	{sym: 130, code: 0xfffe7000, len: 20},
	{sym: 131, code: 0xfffe8000, len: 20},
	{sym: 132, code: 0xffff4c00, len: 22},
	{sym: 133, code: 0xffff5000, len: 22},
	{sym: 134, code: 0xffff5400, len: 22},
	{sym: 135, code: 0xffffb200, len: 23},
	{sym: 136, code: 0xffff5800, len: 22},
	{sym: 137, code: 0xffffb400, len: 23},
	{sym: 138, code: 0xffffb600, len: 23},
	{sym: 139, code: 0xffffb800, len: 23},
	{sym: 140, code: 0xffffba00, len: 23},
	{sym: 141, code: 0xffffbc00, len: 23},
	{sym: 142, code: 0xffffeb00, len: 24},
	{sym: 143, code: 0xffffbe00, len: 23},
	{sym: 144, code: 0xffffec00, len: 24},
	{sym: 145, code: 0xffffed00, len: 24},
	{sym: 146, code: 0xffff5c00, len: 22},
	{sym: 147, code: 0xffffc000, len: 23},
	{sym: 148, code: 0xffffee00, len: 24},
	{sym: 149, code: 0xffffc200, len: 23},
	{sym: 150, code: 0xffffc400, len: 23},
	{sym: 151, code: 0xffffc600, len: 23},
	{sym: 152, code: 0xffffc800, len: 23},
	{sym: 153, code: 0xfffee000, len: 21},
	{sym: 154, code: 0xffff6000, len: 22},
	{sym: 155, code: 0xffffca00, len: 23},
	{sym: 156, code: 0xffff6400, len: 22},
	{sym: 157, code: 0xffffcc00, len: 23},
	{sym: 158, code: 0xffffce00, len: 23},
	{sym: 159, code: 0xffffef00, len: 24},
	{sym: 160, code: 0xffff6800, len: 22},
	{sym: 161, code: 0xfffee800, len: 21},
	{sym: 162, code: 0xfffe9000, len: 20},
	{sym: 163, code: 0xffff6c00, len: 22},
	{sym: 164, code: 0xffff7000, len: 22},
	{sym: 165, code: 0xffffd000, len: 23},
	{sym: 166, code: 0xffffd200, len: 23},
	{sym: 167, code: 0xfffef000, len: 21},
	{sym: 168, code: 0xffffd400, len: 23},
	{sym: 169, code: 0xffff7400, len: 22},
	{sym: 170, code: 0xffff7800, len: 22},
	{sym: 171, code: 0xfffff000, len: 24},
	{sym: 172, code: 0xfffef800, len: 21},
	{sym: 173, code: 0xffff7c00, len: 22},
	{sym: 174, code: 0xffffd600, len: 23},
	{sym: 175, code: 0xffffd800, len: 23},
	{sym: 176, code: 0xffff0000, len: 21},
	{sym: 177, code: 0xffff0800, len: 21},
	{sym: 178, code: 0xffff8000, len: 22},
	{sym: 179, code: 0xffff1000, len: 21},
	{sym: 180, code: 0xffffda00, len: 23},
	{sym: 181, code: 0xffff8400, len: 22},
	{sym: 182, code: 0xffffdc00, len: 23},
	{sym: 183, code: 0xffffde00, len: 23},
	{sym: 184, code: 0xfffea000, len: 20},
	{sym: 185, code: 0xffff8800, len: 22},
	{sym: 186, code: 0xffff8c00, len: 22},
	{sym: 187, code: 0xffff9000, len: 22},
	{sym: 188, code: 0xffffe000, len: 23},
	{sym: 189, code: 0xffff9400, len: 22},
	{sym: 190, code: 0xffff9800, len: 22},
	{sym: 191, code: 0xffffe200, len: 23},
	{sym: 192, code: 0xfffff800, len: 26},
	{sym: 193, code: 0xfffff840, len: 26},
	{sym: 194, code: 0xfffeb000, len: 20},
	{sym: 195, code: 0xfffe2000, len: 19},
	{sym: 196, code: 0xffff9c00, len: 22},
	{sym: 197, code: 0xffffe400, len: 23},
	{sym: 198, code: 0xffffa000, len: 22},
	{sym: 199, code: 0xfffff600, len: 25},
	{sym: 200, code: 0xfffff880, len: 26},
	{sym: 201, code: 0xfffff8c0, len: 26},
	{sym: 202, code: 0xfffff900, len: 26},
	{sym: 203, code: 0xfffffbc0, len: 27},
	{sym: 204, code: 0xfffffbe0, len: 27},
	{sym: 205, code: 0xfffff940, len: 26},
	{sym: 206, code: 0xfffff100, len: 24},
	{sym: 207, code: 0xfffff680, len: 25},
	{sym: 208, code: 0xfffe4000, len: 19},
	{sym: 209, code: 0xffff1800, len: 21},
	{sym: 210, code: 0xfffff980, len: 26},
	{sym: 211, code: 0xfffffc00, len: 27},
	{sym: 212, code: 0xfffffc20, len: 27},
	{sym: 213, code: 0xfffff9c0, len: 26},
	{sym: 214, code: 0xfffffc40, len: 27},
	{sym: 215, code: 0xfffff200, len: 24},
	{sym: 216, code: 0xffff2000, len: 21},
	{sym: 217, code: 0xffff2800, len: 21},
	{sym: 218, code: 0xfffffa00, len: 26},
	{sym: 219, code: 0xfffffa40, len: 26},
	{sym: 220, code: 0xffffffd0, len: 28},
	{sym: 221, code: 0xfffffc60, len: 27},
	{sym: 222, code: 0xfffffc80, len: 27},
	{sym: 223, code: 0xfffffca0, len: 27},
	{sym: 224, code: 0xfffec000, len: 20},
	{sym: 225, code: 0xfffff300, len: 24},
	{sym: 226, code: 0xfffed000, len: 20},
	{sym: 227, code: 0xffff3000, len: 21},
	{sym: 228, code: 0xffffa400, len: 22},
	{sym: 229, code: 0xffff3800, len: 21},
	{sym: 230, code: 0xffff4000, len: 21},
	{sym: 231, code: 0xffffe600, len: 23},
	{sym: 232, code: 0xffffa800, len: 22},
	{sym: 233, code: 0xffffac00, len: 22},
	{sym: 234, code: 0xfffff700, len: 25},
	{sym: 235, code: 0xfffff780, len: 25},
	{sym: 236, code: 0xfffff400, len: 24},
	{sym: 237, code: 0xfffff500, len: 24},
	{sym: 238, code: 0xfffffa80, len: 26},
	{sym: 239, code: 0xffffe800, len: 23},
	{sym: 240, code: 0xfffffac0, len: 26},
	{sym: 241, code: 0xfffffcc0, len: 27},
	{sym: 242, code: 0xfffffb00, len: 26},
	{sym: 243, code: 0xfffffb40, len: 26},
	{sym: 244, code: 0xfffffce0, len: 27},
	{sym: 245, code: 0xfffffd00, len: 27},
	{sym: 246, code: 0xfffffd20, len: 27},
	{sym: 247, code: 0xfffffd40, len: 27},
	{sym: 248, code: 0xfffffd60, len: 27},
	{sym: 249, code: 0xffffffe0, len: 28},
	{sym: 250, code: 0xfffffd80, len: 27},
	{sym: 251, code: 0xfffffda0, len: 27},
	{sym: 252, code: 0xfffffdc0, len: 27},
	{sym: 253, code: 0xfffffde0, len: 27},
	{sym: 254, code: 0xfffffe00, len: 27},
	{sym: 255, code: 0xfffffb80, len: 26},
	{sym: 256, code: 0xfffffffc, len: 30},
}

const huffmanEOS = 256

