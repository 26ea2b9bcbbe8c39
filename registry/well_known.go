package registry

// wellKnown lists the identifiers loaded by WithWellKnown, in registration order.
var wellKnown = []struct {
	name string
	text string
}{
	// Internet MIB tree
	{"org", "1.3"},
	{"dod", "1.3.6"},
	{"internet", "1.3.6.1"},
	{"mgmt", "1.3.6.1.2"},
	{"mib-2", "1.3.6.1.2.1"},
	{"system", "1.3.6.1.2.1.1"},
	{"private", "1.3.6.1.4"},
	{"enterprises", "1.3.6.1.4.1"},

	// PKCS and ANSI X9.62
	{"rsadsi", "1.2.840.113549"},
	{"pkcs-1", "1.2.840.113549.1.1"},
	{"rsaEncryption", "1.2.840.113549.1.1.1"},
	{"sha256WithRSAEncryption", "1.2.840.113549.1.1.11"},
	{"id-ecPublicKey", "1.2.840.10045.2.1"},
	{"prime256v1", "1.2.840.10045.3.1.7"},

	// X.500 attribute types
	{"id-at", "2.5.4"},
	{"id-at-commonName", "2.5.4.3"},
	{"id-at-countryName", "2.5.4.6"},
	{"id-at-organizationName", "2.5.4.10"},

	// NIST algorithms
	{"aes256-CBC", "2.16.840.1.101.3.4.1.42"},
	{"id-sha256", "2.16.840.1.101.3.4.2.1"},
}
