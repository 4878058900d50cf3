// Command dephub-semver parses, orders and checks semantic versions.
package main

import "github.com/dephub/dephub-semver/internal/cli"

func main() {
	cli.Execute()
}
