// Package hufftap implements a static Huffman compressor for in-memory byte
// buffers.  Encode builds a prefix-code tree from the input's own byte
// frequencies, replaces each byte with its variable-length code, and packs
// the resulting bitstream into bytes using a marker-bit padding scheme: one
// 1 bit is interleaved before every group of up to seven data bits, which
// makes the packed stream self-delimiting at a cost of about 1/8 overhead.
// Decode reverses the process exactly, given the packed bytes and the code
// table they were produced with.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Prefix_code>
//
package hufftap
