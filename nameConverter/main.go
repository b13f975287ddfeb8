package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"go.uber.org/zap"

	"github.com/liserjrqlxue/MappingTools/mapping"
)

var (
	dir = flag.String(
		"dir",
		".",
		"dir contains antiSMASH output folders",
	)
	prefix = flag.String(
		"prefix",
		"ERR",
		"prefix of output folders",
	)
	output = flag.String(
		"out",
		"mapping.txt",
		"output mapping file",
	)
	verbose = flag.Bool(
		"v",
		false,
		"debug log to stderr",
	)
)

func main() {
	flag.Usage = usage
	flag.Parse()

	logger, err := mapping.NewLogger(*verbose)
	simpleUtil.CheckErr(err)
	defer func() { _ = logger.Sync() }()

	simpleUtil.CheckErr(run(*dir, *prefix, *output, logger))
	fmt.Printf("Mapping file '%s' created.\n", *output)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options]\n", os.Args[0])
	fmt.Fprint(flag.CommandLine.Output(), "All options are optional; with none, scans . and writes mapping.txt.\n")
	fmt.Fprintln(flag.CommandLine.Output(), "Unknown options exit with status 2.")
	flag.PrintDefaults()
}

func run(dir, prefix, output string, logger *zap.Logger) error {
	nodes, err := mapping.ScanNodes(dir, prefix)
	if err != nil {
		return err
	}
	logger.Debug("scan done",
		zap.String("dir", dir),
		zap.String("prefix", prefix),
		zap.Int("nodes", len(nodes)),
	)
	mapping.WriteMapping(output, mapping.NodeHeader, mapping.NodeRows(nodes))
	logger.Debug("write done", zap.String("output", output))
	return nil
}
