package main

import "hwidstore/internal/cli"

func main() {
	cli.Execute()
}
