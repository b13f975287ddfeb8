package mapping

import (
	"regexp"
	"strings"
)

// regexp
var (
	// node token excludes unicode whitespace, not only ascii \s
	regionGbk = regexp.MustCompile(`^([^\s\v\x1c-\x1f\x85\p{Z}]+)\.region001\.gbk$`)
	pairedFq  = regexp.MustCompile(`^(.*?)_L(\d+)_R([12])_001\.fastq\.gz$`)
)

// ExtractNode returns the node token of <node>.region001.gbk
func ExtractNode(name string) (string, bool) {
	var m = regionGbk.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractRead parses <sample>_L<lane>_R<1|2>_001.fastq.gz
func ExtractRead(name string) (Read, bool) {
	var m = pairedFq.FindStringSubmatch(name)
	if m == nil {
		return Read{}, false
	}
	var read = Read{
		Sample: m[1],
		Lane:   m[2],
		Side:   R1,
	}
	if m[3] == "2" {
		read.Side = R2
	}
	return read, true
}

func isFqGz(name string) bool {
	return strings.HasSuffix(name, ".fastq.gz")
}
