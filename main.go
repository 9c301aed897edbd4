package main

import (
	"github.com/MdSufiyan005/INHACK/cli/internal/cmd"
)

func main() {
	cmd.Execute()
}
