package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ONSdigital/dp-tm1-tools/config"
	"golang.org/x/term"
)

// prompter asks for the connection values that are not set in the environment
type prompter struct {
	in           *bufio.Reader
	out          io.Writer
	lookupEnv    func(string) (string, bool)
	readPassword func() (string, error)
}

func newPrompter(in *os.File, out io.Writer) *prompter {
	p := &prompter{
		in:        bufio.NewReader(in),
		out:       out,
		lookupEnv: os.LookupEnv,
	}
	p.readPassword = func() (string, error) {
		fd := int(in.Fd())
		if !term.IsTerminal(fd) {
			return p.readLine()
		}
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		return string(b), err
	}
	return p
}

// complete fills cfg with answers for every connection variable missing from
// the environment. An empty answer keeps the default.
func (p *prompter) complete(cfg *config.Config) error {
	if err := p.ask("TM1_USER", fmt.Sprintf("TM1 User (default %s): ", cfg.TM1User), &cfg.TM1User); err != nil {
		return err
	}
	if _, ok := p.lookupEnv("TM1_PASSWORD"); !ok {
		fmt.Fprint(p.out, "Password: ")
		password, err := p.readPassword()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		cfg.TM1Password = password
	}
	if err := p.ask("TM1_NAMESPACE", "CAM Namespace (leave empty if no CAM Security): ", &cfg.TM1Namespace); err != nil {
		return err
	}

	if _, ok := p.lookupEnv("TM1_BASE_URL"); ok {
		return nil
	}
	if err := p.ask("TM1_ADDRESS", fmt.Sprintf("Address (default %s): ", cfg.TM1Address), &cfg.TM1Address); err != nil {
		return err
	}
	if err := p.ask("TM1_PORT", fmt.Sprintf("HTTP Port (default %s): ", cfg.TM1Port), &cfg.TM1Port); err != nil {
		return err
	}

	ssl := ""
	if err := p.ask("TM1_SSL", fmt.Sprintf("SSL (default %s, T or F): ", formatBool(cfg.TM1SSL)), &ssl); err != nil {
		return err
	}
	if ssl != "" {
		v, err := parseBool(ssl)
		if err != nil {
			return err
		}
		cfg.TM1SSL = v
	}
	return nil
}

// ask prompts for env unless it is set, and stores a non-empty answer in target
func (p *prompter) ask(env, question string, target *string) error {
	if _, ok := p.lookupEnv(env); ok {
		return nil
	}
	fmt.Fprint(p.out, question)
	answer, err := p.readLine()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", env, err)
	}
	if answer != "" {
		*target = answer
	}
	return nil
}

func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	// end of input answers with the default
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// parseBool accepts the usual yes/no spellings
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid truth value %q", s)
}

func formatBool(b bool) string {
	if b {
		return "T"
	}
	return "F"
}
