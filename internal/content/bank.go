package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/plantquiz/internal/quiz"
)

// SupportedMajor is the bank format major version this build understands.
const SupportedMajor = "v1"

//go:embed questions.json
var defaultBank []byte

// ValidationError reports a question bank that cannot be used.
type ValidationError struct {
	Source string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question bank %s: %v", e.Source, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Bank is a decoded question bank file.
type Bank struct {
	Version   string         `json:"version"`
	Questions []bankQuestion `json:"questions"`
}

type bankQuestion struct {
	Prompt  string       `json:"prompt"`
	Options []bankOption `json:"options"`
}

type bankOption struct {
	Label    string        `json:"label"`
	Category quiz.Category `json:"category"`
}

// Quiz converts the bank into an immutable quiz.
func (b *Bank) Quiz() (*quiz.Quiz, error) {
	qs := make([]quiz.Question, 0, len(b.Questions))
	for _, bq := range b.Questions {
		opts := make([]quiz.Option, 0, len(bq.Options))
		for _, bo := range bq.Options {
			opts = append(opts, quiz.Option{Label: bo.Label, Category: bo.Category})
		}
		qs = append(qs, quiz.Question{Prompt: bq.Prompt, Options: opts})
	}
	return quiz.New(qs)
}

// Parse validates raw JSON against the bank schema and decodes it.
func Parse(source string, raw []byte) (*Bank, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, &ValidationError{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := bankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, &ValidationError{Source: source, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var b Bank
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, &ValidationError{Source: source, Err: err}
	}

	if !semver.IsValid(b.Version) {
		return nil, &ValidationError{Source: source, Err: fmt.Errorf("version %q is not a semantic version", b.Version)}
	}
	if major := semver.Major(b.Version); major != SupportedMajor {
		return nil, &ValidationError{Source: source, Err: fmt.Errorf("version %s: major %s not supported (want %s)", b.Version, major, SupportedMajor)}
	}

	return &b, nil
}

// Load reads and validates a bank from r.
func Load(source string, r io.Reader) (*Bank, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return Parse(source, raw)
}

// LoadFile reads and validates the bank at path.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	defer f.Close()
	return Load(path, f)
}

// Default returns the embedded question bank.
func Default() *Bank {
	b, err := Parse("embedded", defaultBank)
	if err != nil {
		// The embedded bank is covered by tests; failing here is a build defect.
		panic(err)
	}
	return b
}

// Resolve returns the bank at path, or the embedded bank when path is empty.
func Resolve(path string) (*Bank, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
