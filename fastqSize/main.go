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
		"dir contains <sample>_L<lane>_R<1|2>_001.fastq.gz",
	)
	output = flag.String(
		"out",
		"mapping_file.tsv",
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

	simpleUtil.CheckErr(run(*dir, *output, logger))
	fmt.Printf("Mapping file '%s' has been created.\n", *output)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options]\n", os.Args[0])
	fmt.Fprint(flag.CommandLine.Output(), "All options are optional; with none, scans . and writes mapping_file.tsv.\n")
	fmt.Fprintln(flag.CommandLine.Output(), "Unknown options exit with status 2.")
	flag.PrintDefaults()
}

func run(dir, output string, logger *zap.Logger) error {
	table, err := mapping.ScanReads(dir)
	if err != nil {
		return err
	}
	for _, sampleID := range table.Samples {
		var sample = table.SampleMap[sampleID]
		switch {
		case sample.R1 == nil:
			logger.Debug("unpaired sample", zap.String("sample", sampleID), zap.Stringer("missing", mapping.R1))
		case sample.R2 == nil:
			logger.Debug("unpaired sample", zap.String("sample", sampleID), zap.Stringer("missing", mapping.R2))
		}
	}
	logger.Debug("scan done",
		zap.String("dir", dir),
		zap.Int("samples", table.Len()),
	)
	mapping.WriteMapping(output, mapping.SampleHeader, table.Rows())
	logger.Debug("write done", zap.String("output", output))
	return nil
}
