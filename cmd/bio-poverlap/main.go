package main

import "github.com/grailbio/poverlap/cmd/bio-poverlap/cmd"

func main() {
	cmd.Run()
}
