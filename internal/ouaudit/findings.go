package ouaudit

import "github.com/ouaudit/ouaudit/pkg/sddl"

// AccessEntry is one permission grant or denial on an organizational
// unit, with the principal already resolved to a readable name.
type AccessEntry struct {
	Identity    string
	Rights      sddl.AccessMask
	AccessType  sddl.AccessType
	IsInherited bool
	// ObjectType narrows a CreateChild grant to one child class GUID.
	// Empty means the grant covers any child type.
	ObjectType string
}

// OrganizationalUnit is a directory container with its descriptor
// materialized: owner plus access entries in directory order.
type OrganizationalUnit struct {
	DistinguishedName string
	Owner             string
	Entries           []AccessEntry
}

// AuditFinding is one reportable grant, flattened from an (OU, entry)
// pair for console and CSV output.
type AuditFinding struct {
	Identity          string
	Rights            sddl.AccessMask
	IsInherited       bool
	ObjectType        string
	Owner             string
	DistinguishedName string
}
