// Package compression implements the two lossless codecs this module is
// built around: a word-oriented run-length encoding and a Huffman coder with
// a self-describing stream format.
//
// Both codecs operate on slices of fixed-width unsigned integers, called
// symbols. The symbol width W is a property of the element type --
// compressing a []uint16 always means W=16 -- and is never stored in the
// stream. An encoder and a decoder therefore agree on W at compile time, by
// construction.
//
// # Run-length encoding
//
// The RLE transform stays in the symbol domain: []T in, []T out. It uses the
// most significant bit of an output word as an in-band flag:
//
//	1: the word is a repeat counter, and the next word is the value to
//	   repeat that many times
//	0: the word is a literal and is copied to the output verbatim
//
// A value that occurs once and has a clear MSB costs one word. Any longer
// run, and any single occurrence whose MSB is set, costs two words:
// (MSB | count) followed by the value. A counter holds at most 2^(W-1)-1
// repetitions; longer runs are split into several pairs. With 8-bit symbols:
//
//	input:   5 5 5 5 9
//	encoded: 0x84 0x05 0x09
//
// Run-length encoding only pays off when the data actually contains runs. In
// the worst case -- no runs and every value with its MSB set -- the output
// is twice the size of the input.
//
// # Huffman coding
//
// The Huffman coder maps a symbol slice to a bit sequence: the serialized
// coding tree followed by one codeword per input symbol, in input order.
//
// The tree is built by the classic greedy merge. Every distinct symbol
// starts as a leaf weighted by its occurrence count; the two lightest nodes
// are repeatedly merged under a fresh internal node until a single root
// remains. Codewords fall out of a depth-first walk: descending left appends
// a 0 bit, descending right a 1 bit. Since symbols only ever sit on leaves
// and every internal node has two children, no codeword can be a prefix of
// another.
//
// The tree is serialized in pre-order so a decoder can rebuild it from the
// head of the stream with no other metadata: a leaf is written as a 1 bit
// followed by the symbol's W bits (most significant bit first), an internal
// node as a 0 bit followed by its left subtree and then its right subtree.
// The encoding is self-delimiting -- the reader knows the tree is complete
// the moment the recursion does.
//
// The stream carries no symbol count and no end marker. Whoever stores a
// stream must record how many symbols went in and pass that count to
// [DecompressHuffman]; the cmd/codekit container does exactly that.
//
// Encoding is deterministic. Ties between equal-weight nodes resolve by
// creation order (leaves are created in ascending symbol order, merged nodes
// in merge order), so encoding the same input twice produces bit-identical
// output, within one process or across runs.
//
// Neither codec keeps state between calls; concurrent calls on separate
// slices need no synchronization.
package compression
