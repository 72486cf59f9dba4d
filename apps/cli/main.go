package main

import "github.com/abdul-hamid-achik/tarpgo/apps/cli/cmd"

// Set at build time: go build -ldflags "-X main.version=1.2.3"
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cmd.Execute(version, buildTime)
}
