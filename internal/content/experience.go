package content

import (
	"fmt"
	"io"
	"io/fs"

	json "github.com/goccy/go-json"
)

// Experience is one job as published in experience.json. The file is an
// external data source and is not validated beyond decoding.
type Experience struct {
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	Duration         string   `json:"duration"`
	Location         string   `json:"location"`
	Responsibilities []string `json:"responsibilities"`
	Type             string   `json:"type"`
	Technologies     []string `json:"technologies"`
	Img              string   `json:"img"`
}

type Experiences []Experience

// DecodeExperiences reads a JSON array of experiences.
func DecodeExperiences(r io.Reader) (Experiences, error) {
	var out Experiences
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("content: decode experiences: %w", err)
	}
	return out, nil
}

// LoadExperiences opens name in fsys and decodes it.
func LoadExperiences(fsys fs.FS, name string) (Experiences, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("content: open %s: %w", name, err)
	}
	defer f.Close()
	return DecodeExperiences(f)
}

// Find returns the first experience of the given type.
func (e Experiences) Find(typ string) (Experience, bool) {
	for _, x := range e {
		if x.Type == typ {
			return x, true
		}
	}
	return Experience{}, false
}
