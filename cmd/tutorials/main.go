package main

import "github.com/deppfellow/echo-lessons/internal/cli"

func main() {
	cli.Execute()
}
