package ldap

import (
	"fmt"

	"github.com/go-ldap/ldap/v3"
)

// OUEntry is one organizational unit as returned by the directory: its
// DN plus the raw self-relative security descriptor.
type OUEntry struct {
	DistinguishedName  string
	SecurityDescriptor []byte
}

// FindOUsWithCallback enumerates organizational units whose name
// matches pattern (* wildcards allowed) and feeds them to the callback
// in server order. The search is paged, large forests come back whole.
func (lc *LdapClient) FindOUsWithCallback(pattern string, callback func(OUEntry) error) error {
	filter := JoinFilters(FilterIsOU, NewFilter(Name, pattern))
	controls := []ldap.Control{
		NewControlSDFlags(OwnerSecurityInformation | GroupSecurityInformation | DACLSecurityInformation),
	}

	res, err := lc.SearchWithControls(filter, controls, DistinguishedName, NTSecurityDescriptor)
	if err != nil {
		return err
	}
	if len(res.Entries) == 0 {
		return fmt.Errorf("no organizational unit matches %q", pattern)
	}

	for _, e := range res.Entries {
		ou := OUEntry{
			DistinguishedName:  e.DN,
			SecurityDescriptor: e.GetRawAttributeValue(NTSecurityDescriptor),
		}
		if err := callback(ou); err != nil {
			return err
		}
	}
	return nil
}

// ResolveSID looks up the sAMAccountName behind a SID. The caller is
// expected to memoize, directory round trips per ACE add up.
func (lc *LdapClient) ResolveSID(sid string) (string, error) {
	res, err := lc.Search(NewFilter(ObjectSid, sid), SAMAccountName)
	if err != nil {
		return "", err
	}
	if len(res.Entries) == 0 {
		return "", fmt.Errorf("no object with sid %s", sid)
	}
	return res.Entries[0].GetAttributeValue(SAMAccountName), nil
}
