package mapping

import (
	"fmt"
	"os"
	"path/filepath"
)

// ScanReads stats every <sample>_L<lane>_R<1|2>_001.fastq.gz file in dir
func ScanReads(dir string) (*SizeTable, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var table = NewSizeTable()
	for _, entry := range entries {
		var name = entry.Name()
		if entry.IsDir() || !isFqGz(name) {
			continue
		}
		read, ok := ExtractRead(name)
		if !ok {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
		table.Add(read.Sample, read.Side, info.Size())
	}
	return table, nil
}
