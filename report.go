package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nadoo/gost/pkg/block"
	"github.com/nadoo/gost/pkg/pool"
)

// report prints the per block values and the string forms of the results.
func report(w io.Writer, rs []block.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "to be encrypted", "encrypted", "decrypted"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	for _, r := range rs {
		t.AppendRow(table.Row{
			r.Index,
			fmt.Sprintf("%016x", r.Plain),
			fmt.Sprintf("%016x", r.Encrypted),
			fmt.Sprintf("%016x", r.Decrypted),
		})
	}
	t.Render()

	buf := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(buf)

	fmt.Fprintf(buf, "\nEncryption result string representation: %q\n", block.Join(rs, block.Encrypted))
	fmt.Fprintf(buf, "Decryption result string representation: %q\n", trimZeros(block.Join(rs, block.Decrypted)))
	w.Write(buf.Bytes())
}

// trimZeros drops the zero padding of the last block.
func trimZeros(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return b
}
