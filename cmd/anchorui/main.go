// Command anchorui computes layout for element tree files.
package main

import "github.com/grindlemire/go-anchorui/cmd"

func main() {
	cmd.Execute()
}
