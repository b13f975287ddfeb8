package mapping

import (
	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// WriteMapping writes header and rows to path as tsv, replacing any previous file.
// Write errors are fatal.
func WriteMapping(path string, header []string, rows [][]string) {
	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)

	fmtUtil.FprintStringArray(out, header, "\t")
	for _, row := range rows {
		fmtUtil.FprintStringArray(out, row, "\t")
	}
}
