package ldap

import (
	"fmt"

	ber "github.com/go-asn1-ber/asn1-ber"
)

// LDAP_SERVER_SD_FLAGS_OID scopes which parts of the security
// descriptor the server returns. Requesting owner+group+dacl only (no
// SACL) lets a non administrative bind read the descriptor at all.
// https://learn.microsoft.com/en-us/openspecs/windows_protocols/ms-adts/3c5e87db-4728-4f29-b164-01dd7d7391ea
const ControlTypeSDFlags = "1.2.840.113556.1.4.801"

const (
	OwnerSecurityInformation uint32 = 0x1
	GroupSecurityInformation uint32 = 0x2
	DACLSecurityInformation  uint32 = 0x4
)

type ControlSDFlags struct {
	Flags uint32
}

// NewControlSDFlags requests the descriptor parts selected by flags.
func NewControlSDFlags(flags uint32) *ControlSDFlags {
	return &ControlSDFlags{Flags: flags}
}

func (c *ControlSDFlags) GetControlType() string {
	return ControlTypeSDFlags
}

func (c *ControlSDFlags) Encode() *ber.Packet {
	packet := ber.Encode(ber.ClassUniversal, ber.TypeConstructed, ber.TagSequence, nil, "Control")
	packet.AppendChild(ber.NewString(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, ControlTypeSDFlags, "Control Type (SD Flags)"))
	packet.AppendChild(ber.NewBoolean(ber.ClassUniversal, ber.TypePrimitive, ber.TagBoolean, true, "Criticality"))

	value := ber.Encode(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, nil, "Control Value (SD Flags)")
	seq := ber.Encode(ber.ClassUniversal, ber.TypeConstructed, ber.TagSequence, nil, "SDFlagsRequestValue")
	seq.AppendChild(ber.NewInteger(ber.ClassUniversal, ber.TypePrimitive, ber.TagInteger, int64(c.Flags), "Flags"))
	value.AppendChild(seq)
	packet.AppendChild(value)
	return packet
}

func (c *ControlSDFlags) String() string {
	return fmt.Sprintf("Control Type: SD Flags (%q) Criticality: true Flags: %d", ControlTypeSDFlags, c.Flags)
}
