package ldap

import (
	"fmt"
	"strings"
)

const (
	FilterIsOU       = "(objectCategory=organizationalUnit)"
	FilterIsUser     = "(objectCategory=person)"
	FilterIsGroup    = "(objectCategory=group)"
	FilterIsComputer = "(objectCategory=computer)"
)

const (
	Name                 = "name"
	SAMAccountName       = "sAMAccountName"
	ObjectSid            = "objectSid"
	DistinguishedName    = "distinguishedName"
	NTSecurityDescriptor = "nTSecurityDescriptor"
)

func JoinFilters(filters ...string) string {
	var builder strings.Builder
	builder.WriteString("(&")
	for _, s := range filters {
		builder.WriteString(s)
	}
	builder.WriteString(")")
	return builder.String()
}

func NegativeFilter(filter string) string {
	return fmt.Sprintf("(!%s)", filter)
}

func NewFilter(attribute string, equalsTo string) string {
	return fmt.Sprintf("(%s=%s)", attribute, equalsTo)
}

// DecodeSID converts the binary objectSid attribute value to its
// S-1-... string form.
func DecodeSID(s string) string {
	b := []byte(s)
	if len(b) < 8 {
		return ""
	}
	revisionLvl := int(b[0])
	subAuthorityCount := int(b[1]) & 0xFF
	if len(b) < 8+4*subAuthorityCount {
		return ""
	}

	var authority int
	for i := 2; i <= 7; i++ {
		authority = authority | int(b[i])<<(8*(5-(i-2)))
	}

	var size = 4
	var offset = 8
	var subAuthorities []int
	for i := 0; i < subAuthorityCount; i++ {
		var subAuthority int
		for k := 0; k < size; k++ {
			subAuthority = subAuthority | (int(b[offset+k])&0xFF)<<(8*k)
		}
		subAuthorities = append(subAuthorities, subAuthority)
		offset += size
	}

	var builder strings.Builder
	builder.WriteString("S-")
	builder.WriteString(fmt.Sprintf("%d-", revisionLvl))
	builder.WriteString(fmt.Sprintf("%d", authority))
	for _, v := range subAuthorities {
		builder.WriteString(fmt.Sprintf("-%d", v))
	}
	return builder.String()
}
