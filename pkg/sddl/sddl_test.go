package sddl_test

import (
	"encoding/binary"
	"testing"

	"github.com/ouaudit/ouaudit/pkg/encoder"
	"github.com/ouaudit/ouaudit/pkg/sddl"
)

func buildSID(subs ...uint32) []byte {
	b := []byte{1, byte(len(subs)), 0, 0, 0, 0, 0, 5}
	for _, s := range subs {
		b = binary.LittleEndian.AppendUint32(b, s)
	}
	return b
}

func buildACE(aceType, aceFlags byte, mask uint32, objType []byte, sid []byte) []byte {
	body := binary.LittleEndian.AppendUint32(nil, mask)
	if aceType == 0x05 || aceType == 0x06 {
		if objType != nil {
			body = binary.LittleEndian.AppendUint32(body, 0x01)
			body = append(body, objType...)
		} else {
			body = binary.LittleEndian.AppendUint32(body, 0x00)
		}
	}
	body = append(body, sid...)

	ace := []byte{aceType, aceFlags}
	ace = binary.LittleEndian.AppendUint16(ace, uint16(4+len(body)))
	return append(ace, body...)
}

func buildSD(owner []byte, aces ...[]byte) []byte {
	var acl []byte
	for _, a := range aces {
		acl = append(acl, a...)
	}
	aclHdr := []byte{2, 0}
	aclHdr = binary.LittleEndian.AppendUint16(aclHdr, uint16(8+len(acl)))
	aclHdr = binary.LittleEndian.AppendUint16(aclHdr, uint16(len(aces)))
	aclHdr = append(aclHdr, 0, 0)

	// Header: owner right after the 20 byte header, dacl after the owner.
	sd := []byte{1, 0, 0x04, 0x80}
	sd = binary.LittleEndian.AppendUint32(sd, 20)
	sd = binary.LittleEndian.AppendUint32(sd, 0)
	sd = binary.LittleEndian.AppendUint32(sd, 0)
	sd = binary.LittleEndian.AppendUint32(sd, uint32(20+len(owner)))
	sd = append(sd, owner...)
	sd = append(sd, aclHdr...)
	return append(sd, acl...)
}

func TestParse(t *testing.T) {
	owner := buildSID(21, 100, 200, 512)
	helpdesk := buildSID(21, 100, 200, 1104)
	guests := buildSID(21, 100, 200, 514)
	userClass := encoder.UUIDFromString("bf967aba-0de6-11d0-a285-00aa003049e2")

	sd, err := sddl.Parse(buildSD(owner,
		buildACE(0x00, 0x00, uint32(sddl.CreateChild|sddl.DeleteChild), nil, helpdesk),
		buildACE(0x01, 0x10, uint32(sddl.GenericAll), nil, guests),
		buildACE(0x05, 0x10, uint32(sddl.CreateChild), userClass, helpdesk),
	))
	if err != nil {
		t.Fatal(err)
	}

	if sd.OwnerSID != "S-1-5-21-100-200-512" {
		t.Fatalf("unexpected owner %q", sd.OwnerSID)
	}
	if len(sd.DACL) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(sd.DACL))
	}

	e0 := sd.DACL[0]
	if e0.AccessType != sddl.Allow || e0.Inherited() || e0.ObjectType != "" {
		t.Fatalf("unexpected first entry %+v", e0)
	}
	if !e0.Mask.Has(sddl.CreateChild) || !e0.Mask.Has(sddl.DeleteChild) {
		t.Fatalf("unexpected mask %s", e0.Mask)
	}
	if e0.SID != "S-1-5-21-100-200-1104" {
		t.Fatalf("unexpected sid %q", e0.SID)
	}

	e1 := sd.DACL[1]
	if e1.AccessType != sddl.Deny || !e1.Inherited() || !e1.Mask.Has(sddl.GenericAll) {
		t.Fatalf("unexpected second entry %+v", e1)
	}

	e2 := sd.DACL[2]
	if e2.AccessType != sddl.Allow || !e2.Inherited() {
		t.Fatalf("unexpected third entry %+v", e2)
	}
	if e2.ObjectType != "bf967aba-0de6-11d0-a285-00aa003049e2" {
		t.Fatalf("unexpected object type %q", e2.ObjectType)
	}
}

func TestParseSkipsUnknownAceTypes(t *testing.T) {
	owner := buildSID(21, 1, 2, 512)
	sid := buildSID(21, 1, 2, 1000)

	sd, err := sddl.Parse(buildSD(owner,
		buildACE(0x11, 0x00, 0x1, nil, sid), // SYSTEM_MANDATORY_LABEL
		buildACE(0x00, 0x00, uint32(sddl.GenericAll), nil, sid),
	))
	if err != nil {
		t.Fatal(err)
	}
	if len(sd.DACL) != 1 || sd.DACL[0].AccessType != sddl.Allow {
		t.Fatalf("unexpected dacl %+v", sd.DACL)
	}
}

func TestParseNoDacl(t *testing.T) {
	owner := buildSID(21, 1, 2, 512)
	sd := []byte{1, 0, 0x00, 0x80}
	sd = binary.LittleEndian.AppendUint32(sd, 20)
	sd = binary.LittleEndian.AppendUint32(sd, 0)
	sd = binary.LittleEndian.AppendUint32(sd, 0)
	sd = binary.LittleEndian.AppendUint32(sd, 0)
	sd = append(sd, owner...)

	parsed, err := sddl.Parse(sd)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.DACL != nil {
		t.Fatalf("expected empty dacl, got %+v", parsed.DACL)
	}
}

func TestParseMalformed(t *testing.T) {
	cases := [][]byte{
		nil,
		{1, 0, 0x04, 0x80},
		buildSD(buildSID(21, 1, 2, 512))[:25],
	}
	for i, c := range cases {
		if _, err := sddl.Parse(c); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}

	// ACE size pointing past the buffer.
	owner := buildSID(21, 1, 2, 512)
	ace := buildACE(0x00, 0x00, 0x1, nil, buildSID(21, 1, 2, 1000))
	sd := buildSD(owner, ace)
	sd[20+len(owner)+8+2] = 0xff // ace size low byte
	sd[20+len(owner)+8+3] = 0x00
	if _, err := sddl.Parse(sd); err == nil {
		t.Fatal("expected error for oversized ace")
	}
}

func TestAccessMaskString(t *testing.T) {
	cases := []struct {
		mask sddl.AccessMask
		want string
	}{
		{0, "None"},
		{sddl.CreateChild, "CreateChild"},
		{sddl.CreateChild | sddl.DeleteChild, "CreateChild, DeleteChild"},
		{sddl.GenericAll, "GenericAll"},
		{sddl.ReadProperty | sddl.AccessMask(0x200), "ReadProperty, 0x00000200"},
	}
	for _, c := range cases {
		if got := c.mask.String(); got != c.want {
			t.Fatalf("mask %x: got %q want %q", uint32(c.mask), got, c.want)
		}
	}
}
