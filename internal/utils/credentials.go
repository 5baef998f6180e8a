package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Credential is held in memory for the duration of the bind only, it is
// never written anywhere.
type Credential struct {
	Username string
	Password string
	Hash     string
}

func (c *Credential) String() string {
	if c.Hash != "" {
		return fmt.Sprintf("%s:%s", c.Username, c.Hash)
	}
	return fmt.Sprintf("%s:%s", c.Username, c.Password)
}

func (c *Credential) StringWithDomain(domain string) string {
	if c.Hash != "" {
		return fmt.Sprintf("%s\\%s:%s", domain, c.Username, c.Hash)
	}
	return fmt.Sprintf("%s\\%s", domain, c.Username)
}

// PromptCredentials asks for username and password on the terminal.
// The password is read without echo.
func PromptCredentials(domain string) (Credential, error) {
	fmt.Fprintf(os.Stderr, "Username for %s: ", domain)
	reader := bufio.NewReader(os.Stdin)
	user, err := reader.ReadString('\n')
	if err != nil {
		return Credential{}, err
	}

	fmt.Fprintf(os.Stderr, "Password: ")
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return Credential{}, err
	}

	return Credential{
		Username: strings.TrimSpace(user),
		Password: string(pass),
	}, nil
}
