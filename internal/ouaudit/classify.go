package ouaudit

import "github.com/ouaudit/ouaudit/pkg/sddl"

// DangerousRights are the rights that let a principal take over an OU
// or plant objects inside it. CreateChild on an OU enables computer or
// user object injection, GenericAll is full control.
const DangerousRights = sddl.CreateChild | sddl.GenericAll

// Classify projects the reportable access entries of one OU into
// findings. An entry is reportable when it is an Allow carrying at
// least one dangerous right; composite masks qualify through the bits
// they contain. Deny entries never produce findings, they reduce risk.
// Entries pass through in order, without dedup, so a principal granted
// both directly and by inheritance shows up twice.
//
// TODO: qualify CreateChild findings by ObjectType so grants scoped to
// a single harmless class can be ranked below unscoped ones.
func Classify(ou OrganizationalUnit) []AuditFinding {
	var findings []AuditFinding
	for _, e := range ou.Entries {
		if e.AccessType != sddl.Allow {
			continue
		}
		if !e.Rights.Has(DangerousRights) {
			continue
		}
		findings = append(findings, AuditFinding{
			Identity:          e.Identity,
			Rights:            e.Rights,
			IsInherited:       e.IsInherited,
			ObjectType:        e.ObjectType,
			Owner:             ou.Owner,
			DistinguishedName: ou.DistinguishedName,
		})
	}
	return findings
}
