package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"
)

func writeHelp(w io.Writer) {
	table := uitable.New()
	table.Separator = " - "
	for _, c := range commandTable {
		table.AddRow("  "+strings.TrimSpace(c.Name+" "+c.Args), c.Desc)
	}

	fmt.Fprintln(w, "Available commands:")
	fmt.Fprintln(w, table.String())
}
