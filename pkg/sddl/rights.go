package sddl

import (
	"fmt"
	"strings"
)

// AccessMask is the 32 bit rights word of an ACE, directory service
// specific bits included.
// https://learn.microsoft.com/en-us/windows/win32/api/iads/ne-iads-ads_rights_enum
type AccessMask uint32

const (
	CreateChild   AccessMask = 0x00000001
	DeleteChild   AccessMask = 0x00000002
	ListChildren  AccessMask = 0x00000004
	Self          AccessMask = 0x00000008
	ReadProperty  AccessMask = 0x00000010
	WriteProperty AccessMask = 0x00000020
	DeleteTree    AccessMask = 0x00000040
	ListObject    AccessMask = 0x00000080
	ControlAccess AccessMask = 0x00000100

	Delete       AccessMask = 0x00010000
	ReadControl  AccessMask = 0x00020000
	WriteDACL    AccessMask = 0x00040000
	WriteOwner   AccessMask = 0x00080000
	Synchronize  AccessMask = 0x00100000
	AccessSystem AccessMask = 0x01000000

	GenericAll     AccessMask = 0x10000000
	GenericExecute AccessMask = 0x20000000
	GenericWrite   AccessMask = 0x40000000
	GenericRead    AccessMask = 0x80000000
)

var maskNames = []struct {
	bit  AccessMask
	name string
}{
	{CreateChild, "CreateChild"},
	{DeleteChild, "DeleteChild"},
	{ListChildren, "ListChildren"},
	{Self, "Self"},
	{ReadProperty, "ReadProperty"},
	{WriteProperty, "WriteProperty"},
	{DeleteTree, "DeleteTree"},
	{ListObject, "ListObject"},
	{ControlAccess, "ControlAccess"},
	{Delete, "Delete"},
	{ReadControl, "ReadControl"},
	{WriteDACL, "WriteDacl"},
	{WriteOwner, "WriteOwner"},
	{Synchronize, "Synchronize"},
	{AccessSystem, "AccessSystemSecurity"},
	{GenericAll, "GenericAll"},
	{GenericExecute, "GenericExecute"},
	{GenericWrite, "GenericWrite"},
	{GenericRead, "GenericRead"},
}

// Has reports whether any of the given bits is set.
func (m AccessMask) Has(rights AccessMask) bool {
	return m&rights != 0
}

// String renders the mask as a comma separated list of right names in a
// stable order. Bits without a name are kept as a hex residue so that no
// information is lost when the value is exported and parsed back.
func (m AccessMask) String() string {
	if m == 0 {
		return "None"
	}
	var parts []string
	rest := m
	for _, mn := range maskNames {
		if rest&mn.bit != 0 {
			parts = append(parts, mn.name)
			rest &^= mn.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%08x", uint32(rest)))
	}
	return strings.Join(parts, ", ")
}

// AccessType discriminates grants from denials.
type AccessType uint8

const (
	Allow AccessType = iota
	Deny
)

func (t AccessType) String() string {
	if t == Deny {
		return "Deny"
	}
	return "Allow"
}
