package main

import "github.com/shouni/go-radio-playlist/cmd"

func main() {
	cmd.Execute()
}
