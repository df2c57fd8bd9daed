package changelog

// Sources holds the raw content of every pipeline input.
// PullRequests has its column header already removed.
type Sources struct {
	Baseline     string
	PullRequests []string
	Dates        []string
	Builds       []string
}

// Row is one correlated triple of raw export lines.
// Index is the ordinal into all three sequences; Line is the 1-based line number
// in the metadata file, counting the header.
type Row struct {
	Index    int
	Line     int
	Metadata string
	Date     string
	Build    string
}

// Record represents a single merged change request ready for rendering.
// Date is already formatted as MM/DD/YY and Note has its continuation lines
// re-indented. BuildTag is empty when the build export had no tag for this row.
type Record struct {
	Key        string   `yaml:"key" json:"key"`
	Components []string `yaml:"components" json:"components"`
	Date       string   `yaml:"date" json:"date"`
	BuildTag   string   `yaml:"build_tag,omitempty" json:"build_tag,omitempty"`
	Note       string   `yaml:"note,omitempty" json:"note,omitempty"`
	HasNote    bool     `yaml:"-" json:"-"`
	Line       int      `yaml:"line" json:"line"`
}

// HasBuildTag returns true if the record carries a build tag.
func (r Record) HasBuildTag() bool {
	return r.BuildTag != ""
}

// Document is the assembled change log: a baseline header plus the records
// in input order.
type Document struct {
	Baseline string
	Records  []Record
}
