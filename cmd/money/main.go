package main

import "github.com/moneta-go/money/internal/cli"

func main() {
	cli.Execute()
}
