package main

import (
	"os"

	"github.com/lu-zhengda/portkill/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
