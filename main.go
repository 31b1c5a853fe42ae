package main

import (
	"github.com/samber/lo"
	"github.com/tubegrab/tubegrab/cmd"
	"github.com/tubegrab/tubegrab/config"
	"github.com/tubegrab/tubegrab/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
