package main

import "github.com/leofalp/calcgo/cmd"

func main() {
	cmd.Execute()
}
