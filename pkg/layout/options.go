package layout

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gridshelf/pkg/unit"
)

// ErrUnknownOption is returned when an option name is not recognized.
var ErrUnknownOption = errors.New("unknown option")

// ValidationError reports a rejected option value. The stored option keeps
// its previous value when Set fails.
type ValidationError struct {
	Option string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for option %q: %s", e.Value, e.Option, e.Reason)
}

// Options holds the validated configuration of one container.
type Options struct {
	Orientation Orientation
	Start       Corner
	Autoscroll  bool
	Center      bool
	// MinPad is the symmetric inner padding, in pixels.
	MinPad int
	// Spacing is the gap between adjacent parcels, in pixels.
	Spacing int
	// MinSize floors the stretch-axis size; 0 means unset.
	MinSize int
	// Sticky is the subset of "news" sides a child clings to inside its
	// parcel, stored as given.
	Sticky string
}

// DefaultOptions returns the configuration a new container starts with.
func DefaultOptions() Options {
	return Options{
		Orientation: Vertical,
		Start:       NW,
		Autoscroll:  true,
		Center:      false,
		MinPad:      0,
		Spacing:     0,
		MinSize:     0,
		Sticky:      "news",
	}
}

// Descriptor describes one recognized option for the zero-argument
// configure form.
type Descriptor struct {
	Name    string
	Default string
	Value   string
}

// optionNames enumerates the recognized options in a stable order.
var optionNames = []string{
	"autoscroll", "center", "minpad", "minsize",
	"orientation", "spacing", "start", "sticky",
}

// Set validates value, normalizes it, and stores it under name. Lengths
// are resolved to pixels through r (DefaultMetric when r is nil). On error
// the previous value is left intact.
func (o *Options) Set(name, value string, r unit.Resolver) error {
	switch strings.ToLower(name) {
	case "orientation":
		switch strings.ToLower(value) {
		case "v", "vertical":
			o.Orientation = Vertical
		case "h", "horizontal":
			o.Orientation = Horizontal
		default:
			return &ValidationError{name, value, "want vertical or horizontal"}
		}
	case "start":
		switch strings.ToLower(value) {
		case "nw":
			o.Start = NW
		case "ne":
			o.Start = NE
		case "sw":
			o.Start = SW
		case "se":
			o.Start = SE
		default:
			return &ValidationError{name, value, "want nw, ne, sw or se"}
		}
	case "autoscroll":
		b, err := parseFlag(value)
		if err != nil {
			return &ValidationError{name, value, err.Error()}
		}
		o.Autoscroll = b
	case "center":
		b, err := parseFlag(value)
		if err != nil {
			return &ValidationError{name, value, err.Error()}
		}
		o.Center = b
	case "sticky":
		for _, side := range strings.ToLower(value) {
			if !strings.ContainsRune("news", side) {
				return &ValidationError{name, value, "want a combination of n, e, w, s"}
			}
		}
		o.Sticky = strings.ToLower(value)
	case "minpad":
		px, err := parseLength(name, value, r, 0)
		if err != nil {
			return err
		}
		o.MinPad = px
	case "spacing":
		px, err := parseLength(name, value, r, 0)
		if err != nil {
			return err
		}
		o.Spacing = px
	case "minsize":
		px, err := parseLength(name, value, r, 0)
		if err != nil {
			return err
		}
		o.MinSize = px
	default:
		return fmt.Errorf("%q: %w", name, ErrUnknownOption)
	}
	return nil
}

// Get returns the normalized string form of the named option.
func (o *Options) Get(name string) (string, error) {
	switch strings.ToLower(name) {
	case "orientation":
		return o.Orientation.String(), nil
	case "start":
		return o.Start.String(), nil
	case "autoscroll":
		return flagString(o.Autoscroll), nil
	case "center":
		return flagString(o.Center), nil
	case "sticky":
		return o.Sticky, nil
	case "minpad":
		return strconv.Itoa(o.MinPad), nil
	case "spacing":
		return strconv.Itoa(o.Spacing), nil
	case "minsize":
		return strconv.Itoa(o.MinSize), nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownOption)
}

// Describe returns the descriptor for one option.
func (o *Options) Describe(name string) (Descriptor, error) {
	cur, err := o.Get(name)
	if err != nil {
		return Descriptor{}, err
	}
	defaults := DefaultOptions()
	def, _ := defaults.Get(name)
	return Descriptor{Name: strings.ToLower(name), Default: def, Value: cur}, nil
}

// Descriptors returns descriptors for every recognized option, sorted by
// name.
func (o *Options) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(optionNames))
	for _, name := range optionNames {
		d, err := o.Describe(name)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func parseFlag(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, errors.New("want 0, 1, true or false")
}

func flagString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseLength(name, value string, r unit.Resolver, floor int) (int, error) {
	px, err := unit.ParsePixels(value, r)
	if err != nil {
		return 0, &ValidationError{name, value, "not a length expression"}
	}
	if px < floor {
		return 0, &ValidationError{name, value, "must be non-negative"}
	}
	return px, nil
}
