package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tlview/tlview/cmd"
)

var (
	version   string
	commit    string
	date      string
	buildType string = "unclassified"
)

var osExit = os.Exit

func main() {
	osExit(runMain(os.Args, func(args []string) error {
		return cmd.Execute(args, cmd.BuildArgs{
			Version:   version,
			Commit:    commit,
			Date:      date,
			BuildType: buildType,
		})
	}))
}

func runMain(args []string, execute func([]string) error) int {
	err := execute(args)
	if err == nil {
		return 0
	}
	if !errors.Is(err, cmd.ErrReported) {
		fmt.Printf("tlview: %s\n", err.Error())
	}
	return 1
}
