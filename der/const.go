package der

const (
	// Universal class, primitive identifier octets.
	TagObjectIdentifier = 0x06 // OBJECT IDENTIFIER
	TagRelativeOID      = 0x0D // RELATIVE-OID

	// Length octet layout
	longFormFlag    = 0x80 // set for the long form; low 7 bits count the length octets
	shortFormMax    = 0x7F // largest length encodable in a single octet
	maxLengthOctets = 4    // longest long form accepted by Parse
)
