// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/sahl/cmd/sahl/cmd"
)

func main() {
	cmd.Execute()
}
