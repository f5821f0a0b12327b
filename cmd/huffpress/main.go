package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffpress"
)

var log = logging.MustGetLogger("huffpress/cli")

const progName = "huffpress"

func startLogging(debug bool) {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-12s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}

func main() {
	debug := flag.Bool("debug", false, "log pipeline details")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-debug] FILE...\n", progName)
		flag.PrintDefaults()
	}
	flag.Parse()

	startLogging(*debug)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		if _, err := huffpress.Compress(path); err != nil {
			log.Errorf("%v", err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}
