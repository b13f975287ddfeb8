package mapping

import "strconv"

// NA is written for a read side that was never observed
const NA = "NA"

var (
	NodeHeader   = []string{"node", "file"}
	SampleHeader = []string{"sample_name", "R1_size", "R2_size"}
)

type NodeRow struct {
	Node   string
	Folder string
}

func (row NodeRow) Fields() []string {
	return []string{row.Node, row.Folder}
}

type ReadSide int

const (
	R1 ReadSide = iota + 1
	R2
)

func (side ReadSide) String() string {
	switch side {
	case R1:
		return "R1"
	case R2:
		return "R2"
	default:
		return "R?"
	}
}

type Read struct {
	Sample string
	Lane   string
	Side   ReadSide
}

type SampleSize struct {
	SampleID string
	R1, R2   *int64
}

func (sample *SampleSize) set(side ReadSide, size int64) {
	switch side {
	case R1:
		sample.R1 = &size
	case R2:
		sample.R2 = &size
	}
}

func (sample *SampleSize) Fields() []string {
	return []string{sample.SampleID, formatSize(sample.R1), formatSize(sample.R2)}
}

func formatSize(size *int64) string {
	if size == nil {
		return NA
	}
	return strconv.FormatInt(*size, 10)
}

// SizeTable keeps samples in first-seen order
type SizeTable struct {
	SampleMap map[string]*SampleSize
	Samples   []string
}

func NewSizeTable() *SizeTable {
	return &SizeTable{
		SampleMap: make(map[string]*SampleSize),
		Samples:   []string{},
	}
}

func (table *SizeTable) Len() int {
	return len(table.Samples)
}

// Add records size for sample/side, creating the sample on first sighting.
// A later size for the same sample and side replaces the earlier one.
func (table *SizeTable) Add(sampleID string, side ReadSide, size int64) {
	sample, ok := table.SampleMap[sampleID]
	if !ok {
		sample = &SampleSize{SampleID: sampleID}
		table.SampleMap[sampleID] = sample
		table.Samples = append(table.Samples, sampleID)
	}
	sample.set(side, size)
}

func (table *SizeTable) Rows() (rows [][]string) {
	for _, sampleID := range table.Samples {
		rows = append(rows, table.SampleMap[sampleID].Fields())
	}
	return
}

func NodeRows(nodes []NodeRow) (rows [][]string) {
	for _, node := range nodes {
		rows = append(rows, node.Fields())
	}
	return
}
