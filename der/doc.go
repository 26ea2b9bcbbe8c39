// Package der frames object identifiers as DER tag-length-value elements.
//
// The ber package works on the content octets of an identifier only. This
// package adds the surrounding identifier octet and definite length, so the
// views can be read from and written to certificates, SNMP PDUs and other
// ASN.1 structures.
//
// # Element Layout
//
//	+------+----------------+------------------+
//	| tag  | length (1..5)  | content octets   |
//	+------+----------------+------------------+
//
// The tag is TagObjectIdentifier (0x06) for whole identifiers and
// TagRelativeOID (0x0D) for fragments. Lengths follow the DER rules: short form
// below 128, otherwise the minimal long form with at most four length octets.
// Indefinite lengths are rejected.
//
// # Usage
//
//	abs, _ := ber.ParseAbsolute("1.2.840.113549.1.1.11")
//	elem := der.AppendAbsolute(nil, abs) // 06 09 2a 86 48 86 f7 0d 01 01 0b
//
//	got, rest, err := der.ParseAbsolute(elem)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(got, len(rest)) // 1.2.840.113549.1.1.11 0
//
// Parsed views share storage with the input; no content bytes are copied.
package der
