package main

import "github.com/mcoot/triviaquiz/internal/cli"

func main() {
	cli.Execute()
}
