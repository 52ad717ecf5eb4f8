package main

import (
	"os"

	"github.com/kranthi46/Library-management/app"
)

func main() {
	os.Exit(app.CLI(os.Args[1:]))
}
