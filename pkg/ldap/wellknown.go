package ldap

import "strings"

// Well known and builtin SIDs never resolve through a directory search,
// their names are fixed by the platform.
// https://learn.microsoft.com/en-us/windows/win32/secauthz/well-known-sids
var wellKnownSIDs = map[string]string{
	"S-1-0-0":      "NULL AUTHORITY\\Nobody",
	"S-1-1-0":      "Everyone",
	"S-1-3-0":      "CREATOR OWNER",
	"S-1-5-7":      "NT AUTHORITY\\ANONYMOUS LOGON",
	"S-1-5-9":      "NT AUTHORITY\\ENTERPRISE DOMAIN CONTROLLERS",
	"S-1-5-10":     "NT AUTHORITY\\SELF",
	"S-1-5-11":     "NT AUTHORITY\\Authenticated Users",
	"S-1-5-18":     "NT AUTHORITY\\SYSTEM",
	"S-1-5-19":     "NT AUTHORITY\\LOCAL SERVICE",
	"S-1-5-20":     "NT AUTHORITY\\NETWORK SERVICE",
	"S-1-5-32-544": "BUILTIN\\Administrators",
	"S-1-5-32-545": "BUILTIN\\Users",
	"S-1-5-32-546": "BUILTIN\\Guests",
	"S-1-5-32-548": "BUILTIN\\Account Operators",
	"S-1-5-32-550": "BUILTIN\\Print Operators",
	"S-1-5-32-551": "BUILTIN\\Backup Operators",
	"S-1-5-32-554": "BUILTIN\\Pre-Windows 2000 Compatible Access",
}

// WellKnownSID returns the fixed account name for well known SIDs.
func WellKnownSID(sid string) (string, bool) {
	name, ok := wellKnownSIDs[strings.ToUpper(sid)]
	return name, ok
}
