// Package cms implements the CMS/PKCS#7 ContentInfo and SignedData message
// structures of RFC 5652 on top of the DER codec in
// [github.com/dercodec/der]. It covers the structures needed to build and
// parse a detached-signature or certs-only SignedData envelope; it does not
// implement signature verification, certificate chain validation, or X.509
// parsing (Name, Extension, and Certificate are carried as opaque [der.Any]
// values).
package cms

import "github.com/dercodec/der"

// Well-known content-type object identifiers used by this package.
const (
	IDData       = "1.2.840.113549.1.7.1"
	IDSignedData = "1.2.840.113549.1.7.2"
)

// mustOID parses dotted, panicking if it is malformed. It is only used for
// the package's own well-known OID constants, which are fixed at compile
// time and known valid.
func mustOID(dotted string) der.ObjectIdentifier {
	oid, err := der.NewObjectIdentifier(dotted)
	if err != nil {
		panic("cms: invalid built-in OID " + dotted + ": " + err.Error())
	}
	return oid
}

var (
	oidData       = mustOID(IDData)
	oidSignedData = mustOID(IDSignedData)
)
