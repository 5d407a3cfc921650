// Command strtolcheck 加载 strtol 用例套件并执行，结果输出到控制台。
//
// 不指定 -cases 时执行内置套件。任一用例失败时退出码为 1。
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"os"

	"github.com/icloudza/gcstrtol/suite"
	log "github.com/sirupsen/logrus"
)

//go:embed cases.yaml
var builtinCases []byte

func main() {
	var (
		casesPath string
		jsonOut   bool
		verbose   bool
		logJSON   bool
	)
	flag.StringVar(&casesPath, "cases", "", "path to a YAML case file (default: built-in suite)")
	flag.BoolVar(&jsonOut, "json", false, "print the report as JSON")
	flag.BoolVar(&verbose, "v", false, "log every case")
	flag.BoolVar(&logJSON, "log-json", false, "emit logs as JSON")
	flag.Parse()

	setupLogging(verbose, logJSON)

	s, err := loadSuite(casesPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load suite")
	}

	rep := s.Run()
	if jsonOut {
		b, err := rep.JSON()
		if err != nil {
			log.WithError(err).Fatal("failed to encode report")
		}
		fmt.Println(string(b))
	} else {
		printReport(rep)
	}
	if !rep.OK() {
		os.Exit(1)
	}
}

func setupLogging(verbose, asJSON bool) {
	log.SetOutput(os.Stderr)
	if asJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func loadSuite(path string) (*suite.Suite, error) {
	if path == "" {
		return suite.Load(bytes.NewReader(builtinCases))
	}
	return suite.LoadFile(path)
}

func printReport(rep *suite.Report) {
	fmt.Printf("Suite: %s\n", rep.Suite)
	for _, o := range rep.Outcomes {
		status := "passed"
		if !o.Passed {
			status = "FAILED"
		}
		fmt.Printf("  Test: %s ...%s\n", o.Case, status)
	}
	fmt.Printf("\nRun Summary:  run %d  passed %d  failed %d\n", rep.Run, rep.Passed, rep.Failed)
}
