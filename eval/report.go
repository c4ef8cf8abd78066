package eval

// Report summarizes the evaluation of one tape of a batch.
type Report struct {
	Index    int    `json:"index" yaml:"index" expr:"index"`
	Input    string `json:"input" yaml:"input" expr:"input"`
	Len      int    `json:"len" yaml:"len" expr:"length"`
	Accepted bool   `json:"accepted" yaml:"accepted" expr:"accepted"`
	Steps    int    `json:"steps" yaml:"steps" expr:"steps"`
	Depth    int    `json:"depth" yaml:"depth" expr:"depth"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty" expr:"error"`
}
