package ouaudit

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/ouaudit/ouaudit/internal/printer"
	"github.com/ouaudit/ouaudit/internal/utils"
	"github.com/ouaudit/ouaudit/pkg/ldap"
	"github.com/ouaudit/ouaudit/pkg/sddl"
)

const (
	// Secure directory service port probed before a remote bind.
	preflightPort    = 636
	preflightTimeout = time.Second
)

// Config is the full parameter set of one audit run.
type Config struct {
	OUPattern string
	// Domain set means remote bind; empty means the domain of the
	// current environment.
	Domain string
	DCIP   string
	Export bool

	Username string
	Password string
	NTLMHash string

	Port   int
	SSL    bool
	UseTLS bool
}

// Validate rejects bad parameter combinations before any network
// contact.
func (c *Config) Validate() error {
	if c.OUPattern == "" {
		return &ConfigurationError{Reason: "an OU name pattern is required"}
	}
	if c.Domain != "" && c.DCIP == "" {
		return &ConfigurationError{Reason: "a remote domain requires the controller address (--dc-ip)"}
	}
	if c.DCIP != "" && net.ParseIP(c.DCIP) == nil {
		return &ConfigurationError{Reason: fmt.Sprintf("%q is not a valid controller IP", c.DCIP)}
	}
	return nil
}

// Engine runs the audit: enumerate OUs, materialize descriptors,
// classify, report. Strictly sequential, one OU at a time; the first
// fatal error aborts the run and discards findings collected so far.
type Engine struct {
	cfg      *Config
	prt      *printer.Printer
	sidCache map[string]string
}

func NewEngine(cfg *Config, prt *printer.Printer) *Engine {
	return &Engine{
		cfg:      cfg,
		prt:      prt,
		sidCache: make(map[string]string),
	}
}

func (e *Engine) Run() error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	domain := e.cfg.Domain
	remote := domain != ""
	if !remote {
		domain = os.Getenv("USERDNSDOMAIN")
		if domain == "" {
			return &ConfigurationError{Reason: "no domain in the current environment, use --domain"}
		}
	}

	host := e.cfg.DCIP
	if host == "" {
		host = domain
	}

	if remote {
		if err := ldap.IsReachable(host, preflightPort, preflightTimeout); err != nil {
			return &ConnectivityError{Host: host, Port: preflightPort, Err: err}
		}
	}

	creds := utils.Credential{
		Username: e.cfg.Username,
		Password: e.cfg.Password,
		Hash:     e.cfg.NTLMHash,
	}
	if remote && creds.Username == "" {
		var err error
		if creds, err = utils.PromptCredentials(domain); err != nil {
			return err
		}
	}

	client := ldap.NewLdapClient(host, e.cfg.Port, domain, e.cfg.SSL, !e.cfg.UseTLS)
	defer client.Close()

	var err error
	if creds.Hash != "" {
		err = client.AuthenticateNTLM(creds.Username, creds.Hash)
	} else {
		err = client.Authenticate(creds.Username, creds.Password)
	}
	if err != nil {
		return &AuthenticationError{Principal: creds.StringWithDomain(domain), Err: err}
	}
	e.prt.PrintInfo("authenticated as " + creds.StringWithDomain(domain))

	findings, err := e.collect(client, domain)
	if err != nil {
		return err
	}

	e.render(findings)

	if e.cfg.Export {
		path, err := ExportCSV(findings, ".", time.Now())
		if err != nil {
			return err
		}
		e.prt.PrintInfo("findings exported to " + path)
	}

	e.prt.PrintSuccess(fmt.Sprintf("%d dangerous grant(s) on OUs matching %q", len(findings), e.cfg.OUPattern))
	return nil
}

func (e *Engine) collect(client *ldap.LdapClient, domain string) ([]AuditFinding, error) {
	var findings []AuditFinding
	err := client.FindOUsWithCallback(e.cfg.OUPattern, func(entry ldap.OUEntry) error {
		ou, err := e.materialize(client, domain, entry)
		if err != nil {
			return fmt.Errorf("%s: %w", entry.DistinguishedName, err)
		}
		findings = append(findings, Classify(ou)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findings, nil
}

func (e *Engine) materialize(client *ldap.LdapClient, domain string, entry ldap.OUEntry) (OrganizationalUnit, error) {
	sd, err := sddl.Parse(entry.SecurityDescriptor)
	if err != nil {
		return OrganizationalUnit{}, err
	}

	ou := OrganizationalUnit{
		DistinguishedName: entry.DistinguishedName,
		Owner:             e.resolveSID(client, domain, sd.OwnerSID),
	}
	for _, ace := range sd.DACL {
		ou.Entries = append(ou.Entries, AccessEntry{
			Identity:    e.resolveSID(client, domain, ace.SID),
			Rights:      ace.Mask,
			AccessType:  ace.AccessType,
			IsInherited: ace.Inherited(),
			ObjectType:  ace.ObjectType,
		})
	}
	return ou, nil
}

// resolveSID turns a SID into DOMAIN\name when the directory knows the
// principal, falling back to the SID literal. Lookups are memoized per
// run.
func (e *Engine) resolveSID(client *ldap.LdapClient, domain, sid string) string {
	if sid == "" {
		return ""
	}
	if name, ok := ldap.WellKnownSID(sid); ok {
		return name
	}
	if name, ok := e.sidCache[sid]; ok {
		return name
	}

	name := sid
	if account, err := client.ResolveSID(sid); err == nil && account != "" {
		name = fmt.Sprintf("%s\\%s", strings.ToUpper(strings.Split(domain, ".")[0]), account)
	}
	e.sidCache[sid] = name
	return name
}

func (e *Engine) render(findings []AuditFinding) {
	if len(findings) == 0 {
		e.prt.PrintInfo("no dangerous grants found")
		return
	}

	tbl := table.New("Identity", "Rights", "Inherited", "ObjectType", "Owner", "OrganizationalUnit")
	tbl.WithHeaderFormatter(color.New(color.FgGreen, color.Underline).SprintfFunc()).
		WithFirstColumnFormatter(color.New(color.FgYellow).SprintfFunc())

	for _, f := range findings {
		tbl.AddRow(
			f.Identity,
			f.Rights.String(),
			f.IsInherited,
			f.ObjectType,
			f.Owner,
			f.DistinguishedName,
		)
	}
	fmt.Println()
	tbl.Print()
	fmt.Println()
}
