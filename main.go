package main

import (
	"vincit.fi/exif-renamer/ui/cli"
)

func main() {
	cli.Execute()
}
