// Command voxorient is a CLI for exploring the voxel orientation algebra.
package main

import (
	"github.com/ErisianArchitect/voxel-orientations/internal/cli"
)

func main() {
	cli.Execute()
}
