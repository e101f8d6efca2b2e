package model

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// ReadmeFile is generated in a staged directory unless the source provides one
	ReadmeFile = "README.md"

	// MetadataFile is the dataset descriptor, always rewritten when staging
	MetadataFile = "dataset-metadata.json"

	// DefaultLicense applies to every staged dataset
	DefaultLicense = "CC0-1.0"

	// DefaultVersion is used when no version is specified
	DefaultVersion = "1.0.0"

	datasetsURL = "https://www.kaggle.com/datasets/"
)

// License of a dataset
type License struct {
	Name string `json:"name" yaml:"name"`
}

// Metadata is the dataset descriptor expected by the publishing tool.
//
// Field order is the serialization order.
type Metadata struct {
	Title    string    `json:"title" yaml:"title"`
	ID       string    `json:"id" yaml:"id"`
	Licenses []License `json:"licenses" yaml:"licenses"`
}

// NewMetadata builds the descriptor for a dataset
func NewMetadata(owner, slug, title string) Metadata {
	return Metadata{
		Title:    title,
		ID:       DatasetID(owner, slug),
		Licenses: []License{{Name: DefaultLicense}},
	}
}

// DatasetID yields the composite identifier of a dataset
func DatasetID(owner, slug string) string {
	return fmt.Sprint(owner, "/", slug)
}

// DatasetURL yields the web page of a published dataset
func DatasetURL(owner, slug string) string {
	return fmt.Sprint(datasetsURL, owner, "/", slug)
}

// TitleFromSlug derives a human readable title from a dataset slug.
//
// Separators become spaces, then every run of letters is title-cased:
// "my-cool_dataset" yields "My Cool Dataset", "data-v2x" yields "Data V2X".
func TitleFromSlug(slug string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(slug)

	var b strings.Builder
	b.Grow(len(s))
	previousIsLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) && !previousIsLetter:
			b.WriteRune(unicode.ToTitle(r))
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		previousIsLetter = unicode.IsLetter(r)
	}
	return b.String()
}

// StageDescriptor describes the dataset a directory is staged for
type StageDescriptor struct {
	Owner       string `json:"owner" yaml:"owner"`
	Slug        string `json:"slug" yaml:"slug"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
}

// ID of the dataset
func (d StageDescriptor) ID() string {
	return DatasetID(d.Owner, d.Slug)
}

// Summary describes a staged directory
type Summary struct {
	Path      string
	Files     int
	TotalSize int64
	ID        string
	Title     string
	Version   string
}
