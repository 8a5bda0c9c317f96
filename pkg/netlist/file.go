package netlist

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/edp1096/rcnet/pkg/analysis"
	"github.com/edp1096/rcnet/pkg/circuit"
	"github.com/edp1096/rcnet/pkg/units"
)

// File is a decoded network file.
type File struct {
	Networks []Network
	Dividers []Divider
}

// Network is a one-port described by an expression over named values, with
// one name (Input) swept across the Drive values.
type Network struct {
	Title  string
	Input  string
	Drive  []Value
	Cap    units.Farad
	Params Env
	Expr   *Expr
}

// Divider asks for a resistor divider that scales a bipolar Vin down to
// Vout with some headroom.
type Divider struct {
	Title  string
	Vin    units.Volt
	Vout   units.Volt
	Margin float64
	RInput units.Ohm
}

type yamlFile struct {
	Networks []yamlNetwork `yaml:"networks"`
	Dividers []yamlDivider `yaml:"dividers,omitempty"`
}

type yamlNetwork struct {
	Title  string            `yaml:"title"`
	Input  string            `yaml:"input,omitempty"`
	Drive  []string          `yaml:"drive"`
	Cap    string            `yaml:"cap"`
	Params map[string]string `yaml:"params,omitempty"`
	Cct    string            `yaml:"cct"`
}

type yamlDivider struct {
	Title  string  `yaml:"title"`
	Vin    string  `yaml:"vin"`
	Vout   string  `yaml:"vout"`
	Margin float64 `yaml:"margin"`
	RInput string  `yaml:"rinput"`
}

// LoadFile reads and decodes the network file at path.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode reads a network file. Literals are parsed here; expressions are
// parsed but not evaluated until Compile.
func Decode(r io.Reader) (*File, error) {
	var yf yamlFile
	if err := yaml.NewDecoder(r).Decode(&yf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	file := &File{}
	for _, yn := range yf.Networks {
		n, err := yn.network()
		if err != nil {
			return nil, fmt.Errorf("network %q: %w", yn.Title, err)
		}
		file.Networks = append(file.Networks, n)
	}
	for _, yd := range yf.Dividers {
		d, err := yd.divider()
		if err != nil {
			return nil, fmt.Errorf("divider %q: %w", yd.Title, err)
		}
		file.Dividers = append(file.Dividers, d)
	}
	return file, nil
}

func (yn yamlNetwork) network() (Network, error) {
	n := Network{
		Title:  yn.Title,
		Input:  yn.Input,
		Params: make(Env, len(yn.Params)),
	}
	if n.Input == "" {
		n.Input = "x"
	}

	for _, s := range yn.Drive {
		v, err := ParseValue(s)
		if err != nil {
			return Network{}, fmt.Errorf("drive: %w", err)
		}
		n.Drive = append(n.Drive, v)
	}

	if yn.Cap != "" {
		c, err := ParseAs[units.Farad](yn.Cap)
		if err != nil {
			return Network{}, fmt.Errorf("cap: %w", err)
		}
		n.Cap = c
	}

	for k, s := range yn.Params {
		v, err := ParseValue(s)
		if err != nil {
			return Network{}, fmt.Errorf("param %s: %w", k, err)
		}
		n.Params[k] = v
	}

	expr, err := Parse(yn.Cct)
	if err != nil {
		return Network{}, fmt.Errorf("cct: %w", err)
	}
	n.Expr = expr
	return n, nil
}

func (yd yamlDivider) divider() (Divider, error) {
	d := Divider{Title: yd.Title, Margin: yd.Margin}

	var err error
	if d.Vin, err = ParseAs[units.Volt](yd.Vin); err != nil {
		return Divider{}, fmt.Errorf("vin: %w", err)
	}
	if d.Vout, err = ParseAs[units.Volt](yd.Vout); err != nil {
		return Divider{}, fmt.Errorf("vout: %w", err)
	}
	if d.RInput, err = ParseAs[units.Ohm](yd.RInput); err != nil {
		return Divider{}, fmt.Errorf("rinput: %w", err)
	}
	return d, nil
}

// Design returns the divider resistors for d.
func (d Divider) Design() (r1, r2 units.Ohm) {
	return analysis.DesignDivider(d.Vin, d.Vout, d.Margin, d.RInput)
}

// ParamNames returns the parameter names of n in sorted order.
func (n Network) ParamNames() []string {
	names := make([]string, 0, len(n.Params))
	for k := range n.Params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (n Network) eval(x Value) (circuit.Cct, error) {
	env := make(Env, len(n.Params)+1)
	for k, v := range n.Params {
		env[k] = v
	}
	env[n.Input] = x

	v, err := n.Expr.Eval(env)
	if err != nil {
		return nil, err
	}
	c, ok := v.Cct()
	if !ok {
		return nil, fmt.Errorf("%w: %s = %v (%s)", ErrNotCircuit, n.Input, x, v.Kind())
	}
	return c, nil
}

// Compile checks that n evaluates to a circuit at every drive value and at
// zero drive, and returns it as an analysis.Net. The returned Cct function
// panics for a drive value that does not evaluate to a circuit, such as one
// of another kind appended to Drive after Compile.
func (n Network) Compile() (analysis.Net[Value], error) {
	if len(n.Drive) == 0 {
		return analysis.Net[Value]{}, fmt.Errorf("%s: %w: no drive values", n.Title, ErrBadValue)
	}
	if n.Expr == nil {
		return analysis.Net[Value]{}, fmt.Errorf("%s: %w: no expression", n.Title, ErrSyntax)
	}

	kind := n.Drive[0].Kind()
	for _, x := range n.Drive[1:] {
		if x.Kind() != kind {
			return analysis.Net[Value]{}, fmt.Errorf("%s: %w: drive mixes %s and %s", n.Title, ErrBadValue, kind, x.Kind())
		}
	}

	rest := n.Drive[0].Zero()
	for _, x := range append([]Value{rest}, n.Drive...) {
		if _, err := n.eval(x); err != nil {
			return analysis.Net[Value]{}, fmt.Errorf("%s: %w", n.Title, err)
		}
	}

	return analysis.Net[Value]{
		Title: n.Title,
		Drive: n.Drive,
		Rest:  rest,
		Cap:   n.Cap,
		Cct: func(x Value) circuit.Cct {
			c, err := n.eval(x)
			if err != nil {
				panic(fmt.Errorf("%s: %w", n.Title, err))
			}
			return c
		},
	}, nil
}
