/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package session runs scripted sequences of registry operations, reporting
// each failure and carrying on with the next step.
package session

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/itemstore/storagemodels"
)

//go:embed demo.yaml
var demoScript []byte

// Op names a step's operation.
type Op string

const (
	OpAdd    Op = "add"
	OpFind   Op = "find"
	OpRemove Op = "remove"
	OpList   Op = "list"
)

// Script is an ordered list of steps.
type Script struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one operation.
type Step struct {
	Add    *ItemSpec `yaml:"add,omitempty"`
	Find   *string   `yaml:"find,omitempty"`
	Remove *string   `yaml:"remove,omitempty"`
	List   bool      `yaml:"list,omitempty"`
}

// ItemSpec is the YAML form of an item.
type ItemSpec struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Location    string `yaml:"location"`
}

// Item converts the spec to a storagemodels.Item.
func (s ItemSpec) Item() storagemodels.Item {
	return storagemodels.NewItem(s.ID, s.Description, s.Location)
}

// Op reports which operation the step holds, or an error unless exactly one is set.
func (s Step) Op() (Op, error) {
	var ops []Op
	if s.Add != nil {
		ops = append(ops, OpAdd)
	}
	if s.Find != nil {
		ops = append(ops, OpFind)
	}
	if s.Remove != nil {
		ops = append(ops, OpRemove)
	}
	if s.List {
		ops = append(ops, OpList)
	}
	switch len(ops) {
	case 1:
		return ops[0], nil
	case 0:
		return "", errors.New("step has no operation")
	default:
		return "", fmt.Errorf("step has %d operations %v, want exactly one", len(ops), ops)
	}
}

// Parse decodes a single-document YAML script. Unknown keys, malformed steps
// and trailing documents are errors.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty script")
		}
		return nil, fmt.Errorf("decoding script: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("script must be a single YAML document")
	}
	for i, step := range s.Steps {
		if _, err := step.Op(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// LoadFile parses the script at path.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Demo returns the built-in demonstration script.
func Demo() *Script {
	s, err := Parse(bytes.NewReader(demoScript))
	if err != nil {
		panic(fmt.Sprintf("session: invalid demo script: %v", err))
	}
	return s
}
