package main

import "github.com/mvqn/ucrm-plugin-xero/cmd"

func main() {
	cmd.Execute()
}
