package main

import (
	"fmt"
	"os"

	"fsexplorer/internal/cli"
	"fsexplorer/internal/systemcodes"
)

func main() {
	err := cli.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(systemcodes.ErrorCodeGeneric)
	}
}
