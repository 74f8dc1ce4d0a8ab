package telnet

// encodeKey appends a VAR-prefixed key to dst.
func encodeKey(dst []byte, key string) []byte {
	dst = append(dst, msdpVar)
	dst = append(dst, key...)
	return dst
}

// encodeValue appends a VAL-prefixed value to dst, recursing into
// arrays and tables.
func (v MSDPValue) encodeValue(dst []byte) []byte {
	dst = append(dst, msdpVal)
	switch v.Kind {
	case MSDPString:
		dst = append(dst, v.String...)
	case MSDPArray:
		dst = append(dst, msdpArrayOpen)
		for _, elem := range v.Array {
			dst = elem.encodeValue(dst)
		}
		dst = append(dst, msdpArrayClose)
	case MSDPTable:
		dst = append(dst, msdpTableOpen)
		for key, elem := range v.Table {
			dst = encodeKey(dst, key)
			dst = elem.encodeValue(dst)
		}
		dst = append(dst, msdpTableClose)
	}
	return dst
}

// Encode is the Argument interface method for a nested value; it is
// only meaningful for values embedded in a document or another value,
// never called directly at the top level (MSDPDocument.Encode is used
// there instead).
func (v MSDPValue) Encode(dst []byte) []byte {
	return v.encodeValue(dst)
}

// EncodeMSDP renders a document to its wire form, pre-reserving exactly
// the capacity EncodedLen reports.
func EncodeMSDP(doc MSDPDocument) []byte {
	dst := make([]byte, 0, doc.EncodedLen())
	return doc.Encode(dst)
}
