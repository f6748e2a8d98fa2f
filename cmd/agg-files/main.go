package main

import (
	"github.com/SethHorsley/agg-files/internal/cli"
)

func main() {
	cli.Execute()
}
