package api

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MessageDesc describes one variant of a message union
type MessageDesc struct {
	// Wire is the snake_case variant name on the JSON wire
	Wire string
	// Handler is the Go-facing name derived from the wire name
	Handler string
}

var titler = cases.Title(language.English)

// HandlerName converts a snake_case wire variant name to its Go-facing
// handler name, e.g. "set_mint_config" becomes "SetMintConfig"
func HandlerName(wire string) string {
	parts := strings.Split(wire, "_")
	for i, p := range parts {
		parts[i] = titler.String(p)
	}
	return strings.Join(parts, "")
}

// Catalog lists the variants of a message union type. A union is a
// struct with one pointer field per variant, each tagged with its wire
// name, like the execute and query message types.
func Catalog(union any) ([]MessageDesc, error) {
	t := reflect.TypeOf(union)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("message union must be a struct, got %s", t.Kind())
	}

	var descs []MessageDesc
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		wire := strings.Split(field.Tag.Get("json"), ",")[0]
		if wire == "" || wire == "-" {
			continue
		}
		descs = append(descs, MessageDesc{Wire: wire, Handler: HandlerName(wire)})
	}
	return descs, nil
}

// OneOf checks that exactly one variant of a decoded message union is
// set and returns its wire name
func OneOf(union any) (string, error) {
	v := reflect.ValueOf(union)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", fmt.Errorf("message union must be a struct, got %s", v.Kind())
	}

	set := ""
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() != reflect.Pointer || field.IsNil() {
			continue
		}
		wire := strings.Split(v.Type().Field(i).Tag.Get("json"), ",")[0]
		if set != "" {
			return "", fmt.Errorf("message sets both %q and %q", set, wire)
		}
		set = wire
	}
	if set == "" {
		return "", fmt.Errorf("message sets no variant")
	}
	return set, nil
}
