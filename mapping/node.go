package mapping

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScanNodes lists the subdirectories of dir whose names start with prefix and
// collects one NodeRow per <node>.region001.gbk found directly inside them.
// Duplicate nodes are kept.
func ScanNodes(dir, prefix string) (nodes []NodeRow, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	for _, entry := range entries {
		var folder = entry.Name()
		if !strings.HasPrefix(folder, prefix) || !isDir(dir, entry) {
			continue
		}
		files, err := os.ReadDir(filepath.Join(dir, folder))
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", folder, err)
		}
		for _, file := range files {
			node, ok := ExtractNode(file.Name())
			if !ok {
				continue
			}
			nodes = append(nodes, NodeRow{Node: node, Folder: folder})
		}
	}
	return
}

// isDir follows symlinks; a dangling link is not a dir
func isDir(dir string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}
