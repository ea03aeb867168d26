package main

import "github.com/masmgr/commitheat/cmd"

func main() {
	cmd.Run()
}
