package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/ouaudit/ouaudit/internal/ouaudit"
	"github.com/ouaudit/ouaudit/internal/printer"
)

type Options struct {
	OUPattern string `short:"o" long:"ou" required:"true" description:"OU name pattern to audit (* wildcards allowed)"`
	Domain    string `short:"d" long:"domain" description:"Audit a remote domain, requires --dc-ip and prompts for credentials"`
	DCIP      string `long:"dc-ip" description:"IP of the remote domain controller"`
	Export    bool   `short:"e" long:"export" description:"Also write findings to a timestamped CSV file"`
	Username  string `short:"u" description:"Provide a username"`
	Password  string `short:"p" description:"Provide a password"`
	NTLM      string `short:"H" long:"hashes" description:"Authenticate with NTLM hash"`
	Port      int    `long:"port" default:"389" description:"Ldap port to contact"`
	SSL       bool   `short:"s" long:"ssl" description:"Use ssl to interact with ldap"`
	UseTLS    bool   `long:"tls" description:"Upgrade the ldap connection"`
}

func main() {
	p := flags.NewNamedParser("ouaudit", flags.Default)

	var opts Options
	p.AddGroup("Application Options", "", &opts)

	if _, err := p.Parse(); err != nil {
		os.Exit(1)
	}

	target := opts.DCIP
	if target == "" {
		target = opts.Domain
	}
	prt := printer.NewPrinter("OUAUDIT", target, opts.Port)

	cfg := &ouaudit.Config{
		OUPattern: opts.OUPattern,
		Domain:    opts.Domain,
		DCIP:      opts.DCIP,
		Export:    opts.Export,
		Username:  opts.Username,
		Password:  opts.Password,
		NTLMHash:  opts.NTLM,
		Port:      opts.Port,
		SSL:       opts.SSL,
		UseTLS:    opts.UseTLS,
	}

	if err := ouaudit.NewEngine(cfg, prt).Run(); err != nil {
		prt.PrintFailure(err.Error())
		os.Exit(1)
	}
}
