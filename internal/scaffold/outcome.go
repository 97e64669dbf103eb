package scaffold

import "github.com/opmodel/jproj/internal/output"

// Status is the result of one filesystem operation.
type Status string

const (
	// StatusCreated means the directory did not exist and was created.
	StatusCreated Status = output.StatusCreated

	// StatusExists means the directory was already present.
	StatusExists Status = output.StatusExists

	// StatusWritten means the entry file was written.
	StatusWritten Status = output.StatusWritten

	// StatusFailed means the operation failed. Err holds the cause.
	StatusFailed Status = output.StatusFailed
)

// Outcome is the result of materializing one directory.
type Outcome struct {
	// Path is the absolute directory path.
	Path string `json:"path" yaml:"path"`

	// Rel is Path relative to the project root.
	Rel string `json:"rel" yaml:"rel"`

	Status Status `json:"status" yaml:"status"`

	// Err is set when Status is StatusFailed.
	Err error `json:"-" yaml:"-"`

	// Message is the text of Err, for encoded reports.
	Message string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the operation failed.
func (o Outcome) Failed() bool {
	return o.Status == StatusFailed
}

// FileOutcome is the result of writing one entry file.
type FileOutcome struct {
	Path      string `json:"path" yaml:"path"`
	Rel       string `json:"rel" yaml:"rel"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Status    Status `json:"status" yaml:"status"`
	Err       error  `json:"-" yaml:"-"`
	Message   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the write failed.
func (o FileOutcome) Failed() bool {
	return o.Status == StatusFailed
}

func failedOutcome(path, rel string, err error) Outcome {
	return Outcome{Path: path, Rel: rel, Status: StatusFailed, Err: err, Message: err.Error()}
}
