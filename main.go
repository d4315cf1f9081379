package main

import (
	"log"
	"os"

	"github.com/codalotl/diffview/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}
