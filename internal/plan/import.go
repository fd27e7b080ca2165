package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/colmenar/agenda/internal/util"
)

// ImportFile reads plans from a JSON or YAML file, chosen by extension.
// For JSON, path is an optional gjson path selecting the plan array inside a
// wrapper document (e.g. "data.plans").
func ImportFile(file, path string) ([]Plan, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return ImportYAML(data)
	default:
		return ImportJSON(data, path)
	}
}

// ImportJSON decodes plans from data. Without a path the document must be an
// array of plans or an object with a "plans" array. Records that fail to
// decode or have no scheduled date are skipped with a warning.
func ImportJSON(data []byte, path string) ([]Plan, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON document")
	}

	var list gjson.Result
	switch {
	case path != "":
		list = gjson.GetBytes(data, path)
	case gjson.ParseBytes(data).IsArray():
		list = gjson.ParseBytes(data)
	default:
		list = gjson.GetBytes(data, "plans")
	}
	if !list.IsArray() {
		if path == "" {
			path = "plans"
		}
		return nil, fmt.Errorf("no plan array found at %q", path)
	}

	var plans []Plan
	for i, rec := range list.Array() {
		var p Plan
		if err := json.Unmarshal([]byte(rec.Raw), &p); err != nil {
			util.Log.WithField("index", i).WithError(err).Warn("skipping plan record")
			continue
		}
		if !keepImported(i, p) {
			continue
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// ImportYAML decodes plans from a YAML sequence or a document with a "plans"
// key.
func ImportYAML(data []byte) ([]Plan, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	seq := root.Content[0]
	if seq.Kind == yaml.MappingNode {
		seq = mappingValue(seq, "plans")
	}
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("no plan list found in YAML document")
	}

	var plans []Plan
	for i, node := range seq.Content {
		var p Plan
		if err := node.Decode(&p); err != nil {
			util.Log.WithField("index", i).WithError(err).Warn("skipping plan record")
			continue
		}
		if !keepImported(i, p) {
			continue
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// keepImported reports whether p is usable, logging why when it is not.
func keepImported(i int, p Plan) bool {
	if p.ScheduledDate.IsZero() {
		util.Log.WithField("index", i).WithField("title", p.Title).Warn("skipping plan without scheduled date")
		return false
	}
	return true
}
