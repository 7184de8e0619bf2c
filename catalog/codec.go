package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/gogpu/shapedraw"
)

type document struct {
	Shapes []shapeEntry `json:"shapes"`
}

type shapeEntry struct {
	Name     string                   `json:"name"`
	Segments []shapedraw.ShapeSegment `json:"segments"`
}

// Load decodes a catalog. Unknown keys are logged as warnings through
// shapedraw.Logger. Every entry must have a unique name and close.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	warnUnknownKeys(data)

	if len(doc.Shapes) == 0 {
		return nil, shapedraw.ErrNoShapes
	}

	c := &Catalog{}
	for i, e := range doc.Shapes {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrUnnamed, i)
		}
		if c.index(e.Name) >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, e.Name)
		}
		s, err := shapedraw.NewShape(e.Name, e.Segments...)
		if err != nil {
			return nil, err
		}
		if err := c.Add(s); err != nil {
			return nil, err
		}
	}

	shapedraw.Logger().Debug("catalog: loaded", slog.Int("shapes", len(c.shapes)))
	return c, nil
}

// LoadFile reads a catalog from the named file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Save encodes c as indented JSON.
func Save(w io.Writer, c *Catalog) error {
	doc := document{Shapes: make([]shapeEntry, len(c.shapes))}
	for i, s := range c.shapes {
		doc.Shapes[i] = shapeEntry{Name: s.Name(), Segments: s.Segments()}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("catalog: encode: %w", err)
	}
	return nil
}

// SaveFile writes c to the named file, creating or truncating it.
func SaveFile(path string, c *Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func warnUnknownKeys(data []byte) {
	var top map[string]json.RawMessage
	if json.Unmarshal(data, &top) != nil {
		return
	}
	warnKeys(top, knownKeys(document{}), "")

	var entries []map[string]json.RawMessage
	if json.Unmarshal(top["shapes"], &entries) != nil {
		return
	}
	for i, e := range entries {
		at := fmt.Sprintf("shapes[%d]", i)
		warnKeys(e, knownKeys(shapeEntry{}), at)

		var segs []map[string]json.RawMessage
		if json.Unmarshal(e["segments"], &segs) != nil {
			continue
		}
		for j, seg := range segs {
			warnKeys(seg, knownKeys(shapedraw.ShapeSegment{}), fmt.Sprintf("%s.segments[%d]", at, j))
		}
	}
}

func warnKeys(raw map[string]json.RawMessage, known map[string]bool, at string) {
	for key := range raw {
		if !known[key] {
			shapedraw.Logger().Warn("catalog: unrecognised key",
				slog.String("key", key), slog.String("at", at))
		}
	}
}

// knownKeys collects the JSON names of a struct's fields.
func knownKeys(v any) map[string]bool {
	t := reflect.TypeOf(v)
	keys := make(map[string]bool, t.NumField())
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			keys[name] = true
		}
	}
	return keys
}
