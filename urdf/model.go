// Package urdf writes computed link inertias as Universal Robot Description Format (URDF) XML.
package urdf

import (
	"encoding/xml"
	"os"

	"github.com/pkg/errors"

	"go.viam.com/inertia/config"
)

// Extension is the file extension associated with URDF files.
const Extension string = "urdf"

// ModelConfig represents the URDF fields written for a model's inertias.
type ModelConfig struct {
	XMLName xml.Name `xml:"robot"`
	Name    string   `xml:"name,attr"`
	Links   []link   `xml:"link"`
}

// link is a struct which details the XML used in a URDF link element.
type link struct {
	XMLName  xml.Name  `xml:"link"`
	Name     string    `xml:"name,attr"`
	Inertial *Inertial `xml:"inertial,omitempty"`
}

// NewModel creates a ModelConfig with one link per computed inertia. Links whose geometry has no inertia
// are written without an inertial element.
func NewModel(name string, inertias config.Inertias) *ModelConfig {
	links := make([]link, 0, len(inertias))
	for _, li := range inertias {
		l := link{Name: li.Name}
		if li.OK {
			l.Inertial = NewInertial(li.Mass, li.Inertia)
		}
		links = append(links, l)
	}
	return &ModelConfig{Name: name, Links: links}
}

// MarshalModelXML renders the model as an indented URDF document.
func MarshalModelXML(m *ModelConfig) ([]byte, error) {
	data, err := xml.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal URDF model")
	}
	return append([]byte(xml.Header), data...), nil
}

// UnmarshalInertials reads the inertial element of every link in URDF XML data, keyed by link name. Links
// without an inertial element are omitted.
func UnmarshalInertials(xmlData []byte) (map[string]*Inertial, error) {
	model := &ModelConfig{}
	if err := xml.Unmarshal(xmlData, model); err != nil {
		return nil, errors.Wrap(err, "failed to parse URDF data")
	}
	inertials := make(map[string]*Inertial, len(model.Links))
	for _, l := range model.Links {
		if l.Inertial == nil {
			continue
		}
		if l.Inertial.Origin != nil {
			if err := l.Inertial.Origin.validate(); err != nil {
				return nil, errors.Wrapf(err, "link %q", l.Name)
			}
		}
		inertials[l.Name] = l.Inertial
	}
	return inertials, nil
}

// ParseInertialsFile will read a given file and return the inertial elements of its links.
func ParseInertialsFile(filename string) (map[string]*Inertial, error) {
	//nolint:gosec
	xmlData, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read URDF file")
	}
	return UnmarshalInertials(xmlData)
}
