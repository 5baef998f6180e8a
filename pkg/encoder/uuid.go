package encoder

import (
	"encoding/hex"
	"strings"
)

// Active Directory stores schema GUIDs (object type qualifiers in object
// ACEs, schemaIDGUID, ...) with the first three groups little-endian.
// These helpers convert between that wire form and the usual string form.

func swapGUID(b []byte) []byte {
	return []byte{
		b[3], b[2], b[1], b[0],
		b[5], b[4],
		b[7], b[6],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15],
	}
}

// UUIDFromString parses "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" into the
// 16 byte wire representation. Returns nil on malformed input.
func UUIDFromString(s string) []byte {
	b, err := hex.DecodeString(strings.ReplaceAll(s, "-", ""))
	if err != nil || len(b) != 16 {
		return nil
	}
	return swapGUID(b)
}

// StringFromUUID renders the 16 byte wire representation as the usual
// dashed string form. Non-GUID input is hex dumped as a fallback.
func StringFromUUID(b []byte) string {
	if len(b) != 16 {
		return hex.Dump(b)
	}
	s := hex.EncodeToString(swapGUID(b))
	return s[0:8] + "-" + s[8:12] + "-" + s[12:16] + "-" + s[16:20] + "-" + s[20:]
}
