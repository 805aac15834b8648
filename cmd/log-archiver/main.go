package main

import "github.com/logtools/log-archiver/internal/cli"

func main() {
	cli.Execute()
}
