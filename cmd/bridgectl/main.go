package main

import (
	"github.com/oookbaaa/Bridge-front-sub000/internal/cli"
)

func main() {
	cli.Execute()
}
