// Package huffman implements a text-level Huffman coder.  Codes are written
// as literal '0' and '1' characters rather than packed bits, and the code
// tree travels alongside the code stream as a pre-order "model" string, so an
// encoded artifact is self-describing.
//
// Artifact format:
//
//     <code stream> ' ' <serialized tree model>
//
// In the model, an internal node is written as "0" and a leaf as "1"
// followed by the leaf's literal character.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
