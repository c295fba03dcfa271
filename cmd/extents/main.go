// Command extents inspects and maintains a persisted social-media object
// graph.
package main

import (
	"os"

	"github.com/mesh-intelligence/extents/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
