package merge

// LineStore is the file capability the pipeline needs.
type LineStore interface {
	LoadLines(path string) ([]string, error)
	WriteLines(path string, lines []string) error
}

// Document is a loaded file. Lines keep their terminators and must not be
// modified after loading.
type Document struct {
	Path  string
	Lines []string
}

// Len returns the number of lines.
func (d Document) Len() int { return len(d.Lines) }

// SplitDeclarations is a declarations document cut in two. Body followed by
// Tail is the original document.
type SplitDeclarations struct {
	Body []string
	Tail []string
}

// ScannedImplementation holds the implementation lines from the first
// marker line to the end. Body is empty when no line carries the marker.
type ScannedImplementation struct {
	Body []string
	// Skipped is the number of preamble lines dropped before the marker.
	Skipped int
}

// Stage is a pipeline state.
type Stage int

const (
	StageStart Stage = iota
	StageLoaded
	StageSplit
	StageScanned
	StageComposed
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageLoaded:
		return "loaded"
	case StageSplit:
		return "split"
	case StageScanned:
		return "scanned"
	case StageComposed:
		return "composed"
	default:
		return "unknown"
	}
}
