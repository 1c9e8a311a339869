package main

import "github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/cli"

func main() {
	cli.Execute()
}
