package main

import (
	"github.com/adaptune/temper/cmd"
)

func main() {
	cmd.Execute()
}
