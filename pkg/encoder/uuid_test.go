package encoder_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/ouaudit/ouaudit/pkg/encoder"
)

// bf967aba-0de6-11d0-a285-00aa003049e2 is the schemaIDGUID of the user
// class, a value commonly found as object type in CreateChild ACEs.
var (
	userClassStr   = "bf967aba-0de6-11d0-a285-00aa003049e2"
	userClassBytes = []byte{
		0xba, 0x7a, 0x96, 0xbf, 0xe6, 0x0d, 0xd0, 0x11,
		0xa2, 0x85, 0x00, 0xaa, 0x00, 0x30, 0x49, 0xe2,
	}
)

func TestUUIDFromString(t *testing.T) {
	b := encoder.UUIDFromString(userClassStr)
	if slices.Compare(b, userClassBytes) != 0 {
		t.Fail()
	}
}

func TestUUIDFromStringMalformed(t *testing.T) {
	if encoder.UUIDFromString("not-a-guid") != nil {
		t.Fail()
	}
	if encoder.UUIDFromString("bf967aba-0de6-11d0-a285") != nil {
		t.Fail()
	}
}

func TestStringFromUUID(t *testing.T) {
	s := encoder.StringFromUUID(userClassBytes)
	if strings.Compare(s, userClassStr) != 0 {
		t.Fail()
	}
}

func TestStringFromUUIDRoundTrip(t *testing.T) {
	if encoder.StringFromUUID(encoder.UUIDFromString(userClassStr)) != userClassStr {
		t.Fail()
	}
}
