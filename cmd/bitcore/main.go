/*
Copyright © 2026 The bitcore authors
*/
package main

import "github.com/bitcore-go/bitcore/internal/cli"

func main() {
	cli.Execute()
}
