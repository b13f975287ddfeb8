package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func writeFq(t *testing.T, dir, name string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0644))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFq(t, dir, "SampleA_L001_R1_001.fastq.gz", 100)
	writeFq(t, dir, "SampleA_L001_R2_001.fastq.gz", 120)
	writeFq(t, dir, "SampleB_L001_R1_001.fastq.gz", 50)
	out := filepath.Join(t.TempDir(), "mapping_file.tsv")

	require.NoError(t, run(dir, out, zaptest.NewLogger(t)))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "sample_name\tR1_size\tR2_size\nSampleA\t100\t120\nSampleB\t50\tNA\n", string(data))
}

func TestRunNoReads(t *testing.T) {
	dir := t.TempDir()
	writeFq(t, dir, "sample.bam", 10)
	out := filepath.Join(t.TempDir(), "mapping_file.tsv")

	require.NoError(t, run(dir, out, zaptest.NewLogger(t)))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "sample_name\tR1_size\tR2_size\n", string(data))
}

func TestRunLogsUnpaired(t *testing.T) {
	dir := t.TempDir()
	writeFq(t, dir, "SampleA_L001_R1_001.fastq.gz", 1)
	writeFq(t, dir, "SampleA_L001_R2_001.fastq.gz", 1)
	writeFq(t, dir, "SampleB_L001_R2_001.fastq.gz", 1)
	out := filepath.Join(t.TempDir(), "mapping_file.tsv")
	core, logs := observer.New(zapcore.DebugLevel)

	require.NoError(t, run(dir, out, zap.New(core)))

	unpaired := logs.FilterMessage("unpaired sample").All()
	require.Len(t, unpaired, 1)
	assert.Equal(t, "SampleB", unpaired[0].ContextMap()["sample"])
	assert.Equal(t, "R1", unpaired[0].ContextMap()["missing"])
	scans := logs.FilterMessage("scan done").All()
	require.Len(t, scans, 1)
	assert.EqualValues(t, 2, scans[0].ContextMap()["samples"])
}

func TestRunMissingDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "mapping_file.tsv")

	err := run(filepath.Join(t.TempDir(), "missing"), out, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	flag.CommandLine.SetOutput(&buf)
	defer flag.CommandLine.SetOutput(nil)

	usage()

	assert.Contains(t, buf.String(), "writes mapping_file.tsv")
	assert.Contains(t, buf.String(), "Unknown options exit with status 2.")
	assert.Contains(t, buf.String(), "-out")
}
