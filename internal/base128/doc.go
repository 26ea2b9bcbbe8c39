// Package base128 implements the big-endian base-128 arc encoding used by
// BER/DER object identifiers.
//
// Each arc is split into 7-bit groups written most significant group first.
// Every byte except the last carries the continuation bit 0x80:
//
//	Value 0-127:        0xxxxxxx                             (1 byte)
//	Value 128-16383:    1xxxxxxx 0xxxxxxx                    (2 bytes)
//	Value 16384+:       1xxxxxxx 1xxxxxxx 0xxxxxxx           (3+ bytes)
//	Value 0xffffffff:   10001111 11111111 11111111 11111111 01111111
//
// Arcs are 32 bits wide, so an arc never takes more than MaxLen bytes.
// Encoded arcs are always minimal: the first byte of an arc is never 0x80.
//
// Validate performs the full admission check. Next and Arcs assume validated
// input and never fail.
package base128
