// Package lzw implements a text-level Lempel-Ziv-Welch coder over the
// Unicode code point alphabet.
//
// The dictionary is never transmitted.  Both directions start from the same
// seed (every code point below the dictionary size is its own code) and grow
// it by one entry per step in the same order, so a code always names the
// same string on both sides.  Encoded artifacts are the emitted codes written
// as decimal integers separated by single spaces.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Lempel%E2%80%93Ziv%E2%80%93Welch>
//
package lzw
