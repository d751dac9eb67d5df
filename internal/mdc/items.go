package mdc

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/nuxtdoc/internal/errors"
)

// Item is one documented name/type/description triple inside an arguments or
// variables component.
type Item struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type,omitempty"`
	Description string `yaml:"description"`
}

// Item component kinds accepted by ItemComponent.
const (
	ItemKindArguments = "arguments"
	ItemKindVariables = "variables"
)

// ItemComponent builds an arguments or variables component whose items are
// carried as a YAML properties block. componentType must be "arguments" or
// "variables"; any other value is a validation error naming the value.
//
// An empty item list yields an empty string so callers can fall back to the
// unconverted section text instead of emitting a broken component.
func ItemComponent(items []Item, componentType, component string) (string, error) {
	switch componentType {
	case ItemKindArguments:
		if component == "" {
			component = "UArguments"
		}
	case ItemKindVariables:
		if component == "" {
			component = "UVariables"
		}
	default:
		return "", errors.InvalidComponentType(componentType)
	}

	if len(items) == 0 {
		return "", nil
	}

	props, err := marshalItems(items)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, errors.SeverityError, "serialize component items")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "::%s\n---\n", Normalize(component))
	b.Write(props)
	b.WriteString("---\n::")
	return b.String(), nil
}

// Arguments builds an arguments component. See ItemComponent.
func Arguments(items []Item, component string) (string, error) {
	return ItemComponent(items, ItemKindArguments, component)
}

// Variables builds a variables component. See ItemComponent.
func Variables(items []Item, component string) (string, error) {
	return ItemComponent(items, ItemKindVariables, component)
}

func marshalItems(items []Item) ([]byte, error) {
	wrapper := struct {
		Items []Item `yaml:"items"`
	}{Items: items}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(wrapper); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
