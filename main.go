package main

import "github.com/josephlewis42/hostreport/cmd"

func main() {
	cmd.Execute()
}
