// Package sddl reads self-relative NT security descriptors as returned
// in the ntSecurityDescriptor LDAP attribute.
// https://learn.microsoft.com/en-us/openspecs/windows_protocols/ms-dtyp/7d4dac05-9cef-4563-a058-f108abecce1d
package sddl

import (
	"encoding/binary"
	"fmt"

	"github.com/ouaudit/ouaudit/pkg/encoder"
)

const (
	aceTypeAllowed       = 0x00
	aceTypeDenied        = 0x01
	aceTypeAllowedObject = 0x05
	aceTypeDeniedObject  = 0x06

	// AceFlags bit marking entries propagated from a parent container.
	inheritedACE = 0x10

	// Object ACE flags selecting which trailing GUIDs are present.
	objectTypePresent          = 0x01
	inheritedObjectTypePresent = 0x02
)

// ACE is one access control entry of a DACL.
type ACE struct {
	AccessType AccessType
	Mask       AccessMask
	Flags      uint8
	SID        string
	// ObjectType restricts the grant to one child class or property set
	// (dashed GUID). Empty for unqualified entries.
	ObjectType          string
	InheritedObjectType string
}

// Inherited reports whether the entry was propagated from a parent.
func (a ACE) Inherited() bool {
	return a.Flags&inheritedACE != 0
}

// SecurityDescriptor is the parsed view an audit needs: owner plus the
// discretionary ACL in wire order. SACL and group are not materialized.
type SecurityDescriptor struct {
	Revision uint8
	Control  uint16
	OwnerSID string
	DACL     []ACE
}

// Parse reads a self-relative security descriptor. Truncated or
// malformed input yields an error, never a panic.
func Parse(data []byte) (*SecurityDescriptor, error) {
	if len(data) < 20 {
		return nil, fmt.Errorf("security descriptor too short: %d bytes", len(data))
	}

	sd := &SecurityDescriptor{
		Revision: data[0],
		Control:  binary.LittleEndian.Uint16(data[2:4]),
	}

	offOwner := binary.LittleEndian.Uint32(data[4:8])
	offDacl := binary.LittleEndian.Uint32(data[16:20])

	if offOwner != 0 {
		sid, _, err := decodeSID(data, int(offOwner))
		if err != nil {
			return nil, fmt.Errorf("owner: %v", err)
		}
		sd.OwnerSID = sid
	}

	if offDacl != 0 {
		acl, err := decodeACL(data, int(offDacl))
		if err != nil {
			return nil, fmt.Errorf("dacl: %v", err)
		}
		sd.DACL = acl
	}
	return sd, nil
}

func decodeACL(data []byte, off int) ([]ACE, error) {
	if off < 0 || off+8 > len(data) {
		return nil, fmt.Errorf("header out of bounds at offset %d", off)
	}
	count := int(binary.LittleEndian.Uint16(data[off+4 : off+6]))

	var aces []ACE
	pos := off + 8
	for i := 0; i < count; i++ {
		if pos+4 > len(data) {
			return nil, fmt.Errorf("truncated at entry %d", i)
		}
		aceType := data[pos]
		aceFlags := data[pos+1]
		aceSize := int(binary.LittleEndian.Uint16(data[pos+2 : pos+4]))
		if aceSize < 4 || pos+aceSize > len(data) {
			return nil, fmt.Errorf("bad entry size %d at entry %d", aceSize, i)
		}

		ace, ok, err := decodeACE(data[pos:pos+aceSize], aceType, aceFlags)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %v", i, err)
		}
		// SACL-only and vendor specific entry types are skipped, an
		// audit reader has no use for them.
		if ok {
			aces = append(aces, ace)
		}
		pos += aceSize
	}
	return aces, nil
}

func decodeACE(buf []byte, aceType, aceFlags uint8) (ACE, bool, error) {
	ace := ACE{Flags: aceFlags}

	switch aceType {
	case aceTypeAllowed, aceTypeAllowedObject:
		ace.AccessType = Allow
	case aceTypeDenied, aceTypeDeniedObject:
		ace.AccessType = Deny
	default:
		return ACE{}, false, nil
	}

	if len(buf) < 8 {
		return ACE{}, false, fmt.Errorf("too short for access mask")
	}
	ace.Mask = AccessMask(binary.LittleEndian.Uint32(buf[4:8]))

	pos := 8
	if aceType == aceTypeAllowedObject || aceType == aceTypeDeniedObject {
		if len(buf) < pos+4 {
			return ACE{}, false, fmt.Errorf("too short for object flags")
		}
		objFlags := binary.LittleEndian.Uint32(buf[pos : pos+4])
		pos += 4
		if objFlags&objectTypePresent != 0 {
			if len(buf) < pos+16 {
				return ACE{}, false, fmt.Errorf("too short for object type")
			}
			ace.ObjectType = encoder.StringFromUUID(buf[pos : pos+16])
			pos += 16
		}
		if objFlags&inheritedObjectTypePresent != 0 {
			if len(buf) < pos+16 {
				return ACE{}, false, fmt.Errorf("too short for inherited object type")
			}
			ace.InheritedObjectType = encoder.StringFromUUID(buf[pos : pos+16])
			pos += 16
		}
	}

	sid, _, err := decodeSID(buf, pos)
	if err != nil {
		return ACE{}, false, err
	}
	ace.SID = sid
	return ace, true, nil
}

// decodeSID reads a binary SID at the given offset and returns its
// string form plus the number of bytes consumed.
func decodeSID(data []byte, off int) (string, int, error) {
	if off < 0 || off+8 > len(data) {
		return "", 0, fmt.Errorf("sid out of bounds at offset %d", off)
	}
	revision := data[off]
	subCount := int(data[off+1])
	size := 8 + 4*subCount
	if subCount > 15 || off+size > len(data) {
		return "", 0, fmt.Errorf("truncated sid at offset %d", off)
	}

	// 48 bit identifier authority, big endian.
	var authority uint64
	for i := 0; i < 6; i++ {
		authority = authority<<8 | uint64(data[off+2+i])
	}

	sid := fmt.Sprintf("S-%d-%d", revision, authority)
	for i := 0; i < subCount; i++ {
		sub := binary.LittleEndian.Uint32(data[off+8+4*i : off+12+4*i])
		sid += fmt.Sprintf("-%d", sub)
	}
	return sid, size, nil
}
