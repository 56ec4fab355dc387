package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nadoo/conflag"

	"github.com/nadoo/gost/pkg/log"
)

var flag = conflag.New()

// Config is global config struct.
type Config struct {
	Verbose  bool
	LogFlags int

	Key    string
	Text   string
	File   string
	Cipher string
}

func parseConfig() *Config {
	conf := &Config{}

	flag.SetOutput(os.Stdout)

	example := flag.Bool("example", false, "show usage examples")

	flag.BoolVar(&conf.Verbose, "verbose", false, "verbose mode")
	flag.IntVar(&conf.LogFlags, "logflags", 19, "do not change it if you do not know what it is, ref: https://pkg.go.dev/log#pkg-constants")
	flag.StringVar(&conf.Key, "key", "", "256-bit key, 4 hex numbers (most significant first) or 64 hex digits, asked on stdin if empty")
	flag.StringVar(&conf.Text, "text", "", "text to be encrypted, asked on stdin if empty")
	flag.StringVar(&conf.File, "file", "", "read the text to be encrypted from file")
	flag.StringVar(&conf.Cipher, "cipher", "gost", "64-bit block cipher: "+listCiphers())

	flag.Usage = usage
	if err := flag.Parse(); err != nil {
		// no args and no gost.conf beside the binary: ask on stdin.
		if !(len(os.Args) == 1 && errors.Is(err, fs.ErrNotExist)) {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			os.Exit(-1)
		}
	}

	if *example {
		fmt.Fprint(flag.Output(), examples)
		os.Exit(0)
	}

	// setup logger
	log.Set(conf.Verbose, conf.LogFlags)

	conf.Cipher = strings.ToLower(conf.Cipher)
	if _, ok := blockCiphers[conf.Cipher]; !ok {
		fmt.Fprintf(os.Stderr, "ERROR: %s: %s\n", ErrCipherNotSupported, conf.Cipher)
		os.Exit(-1)
	}

	return conf
}

func usage() {
	fmt.Fprint(flag.Output(), usage1)
	flag.PrintDefaults()
	fmt.Fprintf(flag.Output(), usage2, version)
}

var usage1 = `
Usage: gost [-key KEY] [-text TEXT | -file FILE] [OPTION]...

  e.g. gost -config /etc/gost/gost.conf
       gost -key "1f1e1d1c1b1a1918 1716151413121110 0f0e0d0c0b0a0908 0706050403020100" -text "Hello, World"

OPTION:
`

var usage2 = `
KEY:
   four 64-bit hex numbers, most significant first, or one 64-digit hex string.
   the text is split into 8-byte little-endian blocks, the last one zero padded.

--
Help:
   gost -help
   gost -example

--
gost %s
`

var examples = `
Examples:
  gost
    -ask for the key and the text on stdin.

  gost -config gost.conf
    -run gost with specified config file (lines of flag=value).

  gost -key "0 0 0 0" -text "Hello, World" -verbose
    -encrypt with the all zero key, in verbose mode.

  gost -key 000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f -file msg.txt
    -encrypt the content of msg.txt.

  gost -cipher idea -key "0 0 0 0" -text "Hello, World"
    -run the same blocks through IDEA, keyed with the first 16 key bytes.
`
