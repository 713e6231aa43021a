package parameter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/regnet/network"
)

// validate is a singleton validator instance
var validate = validator.New()

// Document is the YAML form of a parameter point.
type Document struct {
	Network   string   `yaml:"network" validate:"required"`
	Model     string   `yaml:"model,omitempty" validate:"omitempty,oneof=original ecology"`
	Labelling []uint64 `yaml:"labelling,flow" validate:"required,min=1"`
	Orders    [][]int  `yaml:"orders,omitempty,flow" validate:"omitempty,dive,min=1,dive,gte=0"`
}

// Decode reads one YAML document from r. The network field holds inline
// specification text or a path; opts apply to its parsing, with the
// document's model taking precedence.
func Decode(r io.Reader, opts ...network.Option) (*Fixed, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc.Build(opts...)
}

// Load decodes the document stored at path.
func Load(path string, opts ...network.Option) (*Fixed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parameter: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f, opts...)
}

// Build validates the document and constructs the parameter it describes.
func (doc *Document) Build(opts ...network.Option) (*Fixed, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, formatValidationError(err))
	}
	if doc.Model != "" {
		m, err := network.ParseModel(doc.Model)
		if err != nil {
			return nil, err
		}
		opts = append(opts, network.WithModel(m))
	}
	net, err := network.New(doc.Network, opts...)
	if err != nil {
		return nil, err
	}

	var orders []Order
	if len(doc.Orders) > 0 {
		orders = make([]Order, len(doc.Orders))
		for d, o := range doc.Orders {
			orders[d] = Order(o)
		}
	}

	return New(net, doc.Labelling, orders)
}

// Document returns the YAML form of p with the network in canonical text.
func (p *Fixed) Document() Document {
	doc := Document{
		Network:   p.net.Canonical(),
		Labelling: p.Labelling(),
		Orders:    make([][]int, len(p.orders)),
	}
	if p.net.Model() != network.ModelOriginal {
		doc.Model = p.net.Model().String()
	}
	for d := range p.orders {
		doc.Orders[d] = p.Order(d)
	}

	return doc
}

// Encode writes p as a YAML document.
func (p *Fixed) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p.Document()); err != nil {
		return err
	}
	return enc.Close()
}

// formatValidationError reports the first failing field.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	for _, e := range validationErrs {
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", e.Namespace())
		case "min":
			return fmt.Errorf("%s: must hold at least %s entries", e.Namespace(), e.Param())
		case "oneof":
			return fmt.Errorf("%s: must be one of %s", e.Namespace(), e.Param())
		default:
			return fmt.Errorf("%s: validation failed (%s)", e.Namespace(), e.Tag())
		}
	}

	return err
}
