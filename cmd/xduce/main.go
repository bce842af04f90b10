// Command xduce runs a configured line pipeline over files or stdin and
// writes the result to stdout or a Redis list.
//
//	xduce -config pipeline.yml access.log error.log
//	cat access.log | xduce -config pipeline.yml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kbukum/xduce/version"
)

func main() {
	configFile := flag.String("config", "", "Path to the YAML config file")
	envFile := flag.String("env", "", "Path to a .env file")
	showVersion := flag.Bool("version", false, "Print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("xduce", version.Get())
		return
	}

	err := run(context.Background(), cli{
		configFile: *configFile,
		envFile:    *envFile,
		inputs:     flag.Args(),
		stdin:      os.Stdin,
		stdout:     os.Stdout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "xduce:", err)
		os.Exit(1)
	}
}
