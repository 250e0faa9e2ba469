package main

import "github.com/lai323/jdict/cmd"

func main() {
	cmd.Execute()
}
