package ldap

import (
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/ouaudit/ouaudit/pkg/proxyconn"
)

// pagingSize keeps result sets under the server side limits. Domains
// easily hold more OUs and principals than the default 1000 entry cap,
// the server pages transparently at this size.
const pagingSize = 500

type LdapClient struct {
	BaseDN  string
	Realm   string
	Host    string
	Conn    *ldap.Conn
	Port    int
	UseSSL  bool
	SkipTLS bool
}

func NewLdapClient(host string, port int, realm string, ssl bool, skiptls bool) *LdapClient {
	return &LdapClient{
		Host:    host,
		Port:    port,
		Realm:   realm,
		BaseDN:  fmt.Sprintf("dc=%s", strings.Join(strings.Split(realm, "."), ",dc=")),
		SkipTLS: skiptls,
		UseSSL:  ssl,
	}
}

// Close closes the ldap backend connection.
func (lc *LdapClient) Close() {
	if lc.Conn == nil {
		return
	}
	lc.Conn.Close()
	lc.Conn = nil
}

func (lc *LdapClient) Connect() error {
	if lc.Conn != nil {
		return nil
	}

	conn, err := proxyconn.GetConnection(lc.Host, lc.Port)
	if err != nil {
		return err
	}

	if lc.UseSSL {
		conn = tls.Client(conn, &tls.Config{
			InsecureSkipVerify: true,
			ServerName:         lc.Host,
		})
	}
	lc.Conn = ldap.NewConn(conn, lc.UseSSL)
	lc.Conn.Start()

	if !lc.UseSSL && !lc.SkipTLS {
		return lc.Conn.StartTLS(&tls.Config{
			InsecureSkipVerify: true,
			ServerName:         lc.Host,
		})
	}
	return nil
}

// Authenticate binds to the directory. NTLM is attempted first, then a
// simple bind, an empty password falls back to an unauthenticated bind
// (current context style enumeration on forests that allow it).
func (lc *LdapClient) Authenticate(username, password string) error {
	if err := lc.Connect(); err != nil {
		return err
	}

	if err := lc.Conn.NTLMBind(lc.Realm, username, password); err == nil {
		return nil
	}

	if password == "" {
		return lc.Conn.UnauthenticatedBind(username)
	}
	return lc.Conn.Bind(username, password)
}

// AuthenticateNTLM binds with an NT hash instead of a password.
func (lc *LdapClient) AuthenticateNTLM(username, hash string) error {
	if err := lc.Connect(); err != nil {
		return err
	}
	return lc.Conn.NTLMBindWithHash(lc.Realm, username, hash)
}

// Search runs a paged subtree search from the base DN.
func (lc *LdapClient) Search(filter string, attributes ...string) (*ldap.SearchResult, error) {
	return lc.SearchWithControls(filter, nil, attributes...)
}

// SearchWithControls is Search with additional server controls attached
// to the request.
func (lc *LdapClient) SearchWithControls(filter string, controls []ldap.Control, attributes ...string) (*ldap.SearchResult, error) {
	if lc.Conn == nil {
		return nil, fmt.Errorf("not connected")
	}
	return lc.Conn.SearchWithPaging(ldap.NewSearchRequest(
		lc.BaseDN, ldap.ScopeWholeSubtree, ldap.NeverDerefAliases,
		0, 0, false, filter, attributes, controls,
	), pagingSize)
}

// IsReachable probes the host on the given TCP port within timeout. It
// answers the pre-flight question "is there a controller there at all"
// before any bind is attempted.
func IsReachable(host string, port int, timeout time.Duration) error {
	ch := make(chan error, 1)
	go func() {
		conn, err := proxyconn.GetConnectionTimeout(host, port, timeout)
		if err != nil {
			ch <- err
			return
		}
		conn.Close()
		ch <- nil
	}()

	select {
	case err := <-ch:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("timeout reached when contacting %s:%d", host, port)
	}
}
