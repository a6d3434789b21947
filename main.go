package main

import "github.com/dev-shimada/csv-relativize-tool/cmd"

func main() {
	cmd.Execute()
}
