package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/snorwin/jsonpatch"
)

var (
	ErrPathNotFound  = errors.New("patch path not found")
	ErrUnsupportedOp = errors.New("unsupported patch operation")
)

// Patch is a JSON patch over the JSON form of a Document. Paths look like
// /shapes/box1/point/x or /order/2, and operations apply in order.
type Patch []jsonpatch.JSONPatch

// IsEmpty reports whether the patch has no operations.
func (p Patch) IsEmpty() bool {
	return len(p) == 0
}

// Diff returns the patch that transforms from into to.
func Diff(from, to Document) (Patch, error) {
	current, err := toTree(from)
	if err != nil {
		return nil, err
	}
	modified, err := toTree(to)
	if err != nil {
		return nil, err
	}
	list, err := jsonpatch.CreateJSONPatch(modified, current)
	if err != nil {
		return nil, fmt.Errorf("failed to create JSON patch: %w", err)
	}
	return Patch(list.List()), nil
}

// Apply returns a copy of doc with the patch applied. doc itself is not modified.
func Apply(doc Document, p Patch) (Document, error) {
	if p.IsEmpty() {
		return doc.Clone(), nil
	}
	tree, err := toTree(doc)
	if err != nil {
		return doc, err
	}

	var root any = tree
	for i, op := range p {
		if root, err = applyOp(root, op); err != nil {
			return doc, fmt.Errorf("op %d (%s %s): %w", i, op.Operation, op.Path, err)
		}
	}

	data, err := json.Marshal(root)
	if err != nil {
		return doc, fmt.Errorf("encode patched document: %w", err)
	}
	var out Document
	if err := json.Unmarshal(data, &out); err != nil {
		return doc, fmt.Errorf("decode patched document: %w", err)
	}
	if out.Order == nil {
		out.Order = []string{}
	}
	if out.Shapes == nil {
		out.Shapes = make(map[string]Shape)
	}
	return out, nil
}

// toTree converts doc to the generic JSON form patches address.
func toTree(doc Document) (map[string]any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return tree, nil
}

var unescape = strings.NewReplacer("~1", "/", "~0", "~")

func applyOp(root any, op jsonpatch.JSONPatch) (any, error) {
	operation := string(op.Operation)
	var value any
	switch operation {
	case "add", "replace":
		// Values are copied so later ops in the same patch never write
		// through into the stored patch.
		data, err := json.Marshal(op.Value)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, err
		}
	case "remove":
	default:
		// move, copy and test are never generated by Diff
		return nil, ErrUnsupportedOp
	}

	if op.Path == "" {
		if operation == "remove" {
			return nil, fmt.Errorf("%w: remove of the root", ErrUnsupportedOp)
		}
		return value, nil
	}
	if !strings.HasPrefix(op.Path, "/") {
		return nil, fmt.Errorf("invalid path %q, must start with '/'", op.Path)
	}
	parts := strings.Split(op.Path[1:], "/")
	for i, part := range parts {
		parts[i] = unescape.Replace(part)
	}
	return applyAt(root, parts, operation, value)
}

// applyAt applies the operation at parts below node and returns the updated
// node. Arrays may be reallocated, so callers store the result back.
func applyAt(node any, parts []string, operation string, value any) (any, error) {
	key := parts[0]
	last := len(parts) == 1

	switch n := node.(type) {
	case map[string]any:
		child, ok := n[key]
		if !last {
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, key)
			}
			next, err := applyAt(child, parts[1:], operation, value)
			if err != nil {
				return nil, err
			}
			n[key] = next
			return n, nil
		}
		switch operation {
		case "add":
			n[key] = value
		case "replace":
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, key)
			}
			n[key] = value
		case "remove":
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, key)
			}
			delete(n, key)
		}
		return n, nil

	case []any:
		if last && operation == "add" {
			if key == "-" {
				return append(n, value), nil
			}
			i, err := index(key, len(n)+1)
			if err != nil {
				return nil, err
			}
			return slices.Insert(n, i, value), nil
		}
		i, err := index(key, len(n))
		if err != nil {
			return nil, err
		}
		if !last {
			next, err := applyAt(n[i], parts[1:], operation, value)
			if err != nil {
				return nil, err
			}
			n[i] = next
			return n, nil
		}
		if operation == "remove" {
			return slices.Delete(n, i, i+1), nil
		}
		n[i] = value
		return n, nil

	default:
		return nil, fmt.Errorf("%w: %s has no children", ErrPathNotFound, key)
	}
}

// index parses an array index that must be below limit.
func index(key string, limit int) (int, error) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= limit {
		return 0, fmt.Errorf("%w: index %s", ErrPathNotFound, key)
	}
	return i, nil
}
