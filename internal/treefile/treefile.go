// Package treefile loads element-tree documents for the anchorui CLI.
//
// The layout engine itself parses nothing; it consumes an already-built
// element tree. This package is the collaborator that owns the file
// format: a YAML document describing elements, their anchors, layout
// modes, and styles.
package treefile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	anchorui "github.com/grindlemire/go-anchorui"
)

// Document is the top-level tree file.
type Document struct {
	Root elementSpec `yaml:"root"`
}

type elementSpec struct {
	Type       string       `yaml:"type"`
	Name       string       `yaml:"name"`
	Visible    *bool        `yaml:"visible"`
	LayoutMode string       `yaml:"layoutMode"`
	Spacing    *float64     `yaml:"spacing"`
	FlexWeight *float64     `yaml:"flexWeight"`
	MinWidth   *float64     `yaml:"minWidth"`
	MaxWidth   *float64     `yaml:"maxWidth"`
	Padding    *paddingSpec `yaml:"padding"`
	Anchor     *anchorSpec  `yaml:"anchor"`
	Style      *styleSpec   `yaml:"style"`
	Children   []elementSpec `yaml:"children"`
}

type paddingSpec struct {
	Full       *float64 `yaml:"full"`
	Horizontal *float64 `yaml:"horizontal"`
	Vertical   *float64 `yaml:"vertical"`
	Left       *float64 `yaml:"left"`
	Right      *float64 `yaml:"right"`
	Top        *float64 `yaml:"top"`
	Bottom     *float64 `yaml:"bottom"`
}

type anchorSpec struct {
	Left   *dimSpec `yaml:"left"`
	Top    *dimSpec `yaml:"top"`
	Right  *dimSpec `yaml:"right"`
	Bottom *dimSpec `yaml:"bottom"`
	Width  *dimSpec `yaml:"width"`
	Height *dimSpec `yaml:"height"`
}

type styleSpec struct {
	LayoutMode string       `yaml:"layoutMode"`
	Spacing    *float64     `yaml:"spacing"`
	FlexWeight *float64     `yaml:"flexWeight"`
	MinWidth   *float64     `yaml:"minWidth"`
	MaxWidth   *float64     `yaml:"maxWidth"`
	Padding    *paddingSpec `yaml:"padding"`
}

// dimSpec is one anchor dimension. A bare number is absolute pixels; a
// string ending in "%" is a percentage of the parent (stored as a 0-1
// ratio); a string ending in "px" is explicit pixels.
type dimSpec struct {
	dim anchorui.Dimension
}

func (d *dimSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: dimension must be a scalar", node.Line)
	}

	s := strings.TrimSpace(node.Value)
	switch {
	case strings.HasSuffix(s, "%"):
		ratio, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid percentage %q: %w", node.Line, s, err)
		}
		d.dim = anchorui.Relative(ratio / 100)
	case strings.HasSuffix(s, "px"):
		px, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid pixel value %q: %w", node.Line, s, err)
		}
		d.dim = anchorui.Absolute(px)
	default:
		px, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid dimension %q: %w", node.Line, s, err)
		}
		d.dim = anchorui.Absolute(px)
	}
	return nil
}

// Load reads and parses a tree file from disk.
func Load(path string) (*anchorui.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tree file: %w", err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return root, nil
}

// Parse builds an element tree from a YAML document.
func Parse(data []byte) (*anchorui.Element, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshalling document: %w", err)
	}
	return buildElement(doc.Root), nil
}

func buildElement(spec elementSpec) *anchorui.Element {
	e := anchorui.New(anchorui.WithType(spec.Type))

	if spec.Name != "" {
		e.SetProperty("Name", anchorui.Text(spec.Name))
	}
	if spec.Visible != nil {
		e.SetVisible(*spec.Visible)
	}
	if spec.LayoutMode != "" {
		e.SetProperty(anchorui.PropLayoutMode, anchorui.Text(spec.LayoutMode))
	}
	if spec.Spacing != nil {
		e.SetProperty(anchorui.PropSpacing, anchorui.Number(*spec.Spacing))
	}
	if spec.FlexWeight != nil {
		e.SetProperty(anchorui.PropFlexWeight, anchorui.Number(*spec.FlexWeight))
	}
	if spec.MinWidth != nil {
		e.SetProperty(anchorui.PropMinWidth, anchorui.Number(*spec.MinWidth))
	}
	if spec.MaxWidth != nil {
		e.SetProperty(anchorui.PropMaxWidth, anchorui.Number(*spec.MaxWidth))
	}
	if spec.Padding != nil {
		e.SetProperty(anchorui.PropPadding, spec.Padding.tuple())
	}
	if spec.Anchor != nil {
		e.SetProperty(anchorui.PropAnchor, anchorui.Anchor(spec.Anchor.value()))
	}
	if spec.Style != nil {
		e.SetStyleTuple(spec.Style.tuple())
	}

	for _, child := range spec.Children {
		e.AddChild(buildElement(child))
	}
	return e
}

func (p *paddingSpec) tuple() anchorui.Tuple {
	t := anchorui.Tuple{}
	set := func(key string, v *float64) {
		if v != nil {
			t[key] = anchorui.Number(*v)
		}
	}
	set("Full", p.Full)
	set("Horizontal", p.Horizontal)
	set("Vertical", p.Vertical)
	set("Left", p.Left)
	set("Right", p.Right)
	set("Top", p.Top)
	set("Bottom", p.Bottom)
	return t
}

func (a *anchorSpec) value() anchorui.AnchorValue {
	value := anchorui.AnchorValue{}
	assign := func(dst **anchorui.Dimension, src *dimSpec) {
		if src != nil {
			d := src.dim
			*dst = &d
		}
	}
	assign(&value.Left, a.Left)
	assign(&value.Top, a.Top)
	assign(&value.Right, a.Right)
	assign(&value.Bottom, a.Bottom)
	assign(&value.Width, a.Width)
	assign(&value.Height, a.Height)
	return value
}

func (s *styleSpec) tuple() anchorui.Tuple {
	t := anchorui.Tuple{}
	if s.LayoutMode != "" {
		t[anchorui.PropLayoutMode] = anchorui.Text(s.LayoutMode)
	}
	if s.Spacing != nil {
		t[anchorui.PropSpacing] = anchorui.Number(*s.Spacing)
	}
	if s.FlexWeight != nil {
		t[anchorui.PropFlexWeight] = anchorui.Number(*s.FlexWeight)
	}
	if s.MinWidth != nil {
		t[anchorui.PropMinWidth] = anchorui.Number(*s.MinWidth)
	}
	if s.MaxWidth != nil {
		t[anchorui.PropMaxWidth] = anchorui.Number(*s.MaxWidth)
	}
	if s.Padding != nil {
		t[anchorui.PropPadding] = s.Padding.tuple()
	}
	return t
}
