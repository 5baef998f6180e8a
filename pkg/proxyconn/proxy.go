package proxyconn

import (
	"fmt"
	"net"
	"time"

	"golang.org/x/net/proxy"
)

// DefaultTimeout bounds direct TCP dials towards the directory service.
var DefaultTimeout = 2 * time.Second

// GetConnection dials the directory host honoring SOCKS proxy settings
// from the environment (ALL_PROXY and friends), so audits can run
// through a pivot host.
func GetConnection(host string, port int) (net.Conn, error) {
	return GetConnectionTimeout(host, port, DefaultTimeout)
}

// GetConnectionTimeout is GetConnection with a caller-chosen timeout.
// Proxied dials are bounded by the proxy dialer itself.
func GetConnectionTimeout(host string, port int, timeout time.Duration) (net.Conn, error) {
	addr := fmt.Sprintf("%s:%d", host, port)
	if pd := proxy.FromEnvironment(); pd != nil {
		return pd.Dial("tcp", addr)
	}
	return net.DialTimeout("tcp", addr, timeout)
}
