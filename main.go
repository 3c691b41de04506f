package main

import "github.com/jsphweid/scaledegree/cmd"

func main() {
	cmd.Execute()
}
