package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nadoo/gost/pkg/block"
	"github.com/nadoo/gost/pkg/log"
	"github.com/nadoo/gost/pkg/pool"
)

var version = "0.1.0"

func main() {
	conf := parseConfig()

	br := pool.GetBufReader(os.Stdin)
	defer pool.PutBufReader(br)

	if err := run(conf, &prompter{r: br, out: os.Stdout}, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(-1)
	}
}

func run(conf *Config, p *prompter, w io.Writer) error {
	s, err := readKey(conf, p)
	if err != nil {
		return fmt.Errorf("read key: %w", err)
	}

	key, err := parseKey(s)
	if err != nil {
		return err
	}

	text, err := readText(conf, p)
	if err != nil {
		return fmt.Errorf("read text: %w", err)
	}

	b, err := pickCipher(conf.Cipher, key)
	if err != nil {
		return fmt.Errorf("%s: %w", conf.Cipher, err)
	}
	log.F("[gost] cipher %s, key components %016x", conf.Cipher, key.Components())

	rs, err := block.Run(b, text)
	if err != nil {
		return err
	}

	report(w, rs)
	return nil
}
