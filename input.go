package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// prompter reads answers line by line, printing the question first.
type prompter struct {
	r   *bufio.Reader
	out io.Writer
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readKey returns the configured key or asks for it.
func readKey(conf *Config, p *prompter) (string, error) {
	if conf.Key != "" {
		return conf.Key, nil
	}
	return p.ask("Enter the 256-bit key: ")
}

// readText returns the plaintext from -text, -file or the prompt, in that order.
func readText(conf *Config, p *prompter) ([]byte, error) {
	if conf.Text != "" {
		return []byte(conf.Text), nil
	}
	if conf.File != "" {
		return os.ReadFile(conf.File)
	}
	s, err := p.ask("Enter the text to be encrypted: ")
	return []byte(s), err
}
