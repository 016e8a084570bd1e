// Package schema builds widget trees from OpenAPI documents. Given an
// operation, its request-body object schema is mapped property by property to
// form controls: booleans to checkboxes, enumerations to flydowns, everything
// else to text entries.
package schema

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/cviebrock/swat/pkg/controls"
	"github.com/cviebrock/swat/pkg/ui"
)

// preferred request content types, most specific first.
var contentTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// BuildForm locates an operation by its operationId and builds a form for
// its request body.
func BuildForm(ctx context.Context, document []byte, operationID string) (*ui.Form, error) {
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}

	path, method, operation, err := findOperation(doc, operationID)
	if err != nil {
		return nil, err
	}
	body, err := requestSchema(operation)
	if err != nil {
		return nil, fmt.Errorf("schema: operation %q: %w", operationID, err)
	}

	form := ui.NewForm(formID(operationID))
	form.Action = path
	form.Method = strings.ToLower(method)
	if err := addProperties(form, body); err != nil {
		return nil, fmt.Errorf("schema: operation %q: %w", operationID, err)
	}

	submit := controls.NewButton(form.ID()+"_submit", submitTitle(operation))
	if err := form.Add(submit); err != nil {
		return nil, fmt.Errorf("schema: operation %q: %w", operationID, err)
	}
	return form, nil
}

func findOperation(doc *openapi3.T, operationID string) (string, string, *openapi3.Operation, error) {
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return "", "", nil, fmt.Errorf("schema: document does not contain any paths")
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		candidates := []struct {
			method    string
			operation *openapi3.Operation
		}{
			{"GET", item.Get},
			{"PUT", item.Put},
			{"POST", item.Post},
			{"DELETE", item.Delete},
			{"PATCH", item.Patch},
		}
		for _, candidate := range candidates {
			if candidate.operation != nil && candidate.operation.OperationID == operationID {
				return path, candidate.method, candidate.operation, nil
			}
		}
	}
	return "", "", nil, fmt.Errorf("schema: operation %q not found", operationID)
}

func requestSchema(operation *openapi3.Operation) (*openapi3.Schema, error) {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil, fmt.Errorf("no request body")
	}
	content := operation.RequestBody.Value.Content
	for _, contentType := range contentTypes {
		media, ok := content[contentType]
		if !ok || media.Schema == nil || media.Schema.Value == nil {
			continue
		}
		return media.Schema.Value, nil
	}
	return nil, fmt.Errorf("no supported request content type")
}

func addProperties(form *ui.Form, body *openapi3.Schema) error {
	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		widget, err := widgetForProperty(name, ref.Value, required[name])
		if err != nil {
			return err
		}
		if err := form.Add(widget); err != nil {
			return err
		}
	}
	return nil
}

// widgetForProperty maps one schema property to a control.
func widgetForProperty(name string, schema *openapi3.Schema, required bool) (ui.Widget, error) {
	if len(schema.Enum) > 0 {
		flydown := controls.NewFlydown(name)
		flydown.ShowBlank = !required
		for _, raw := range schema.Enum {
			value := fmt.Sprint(raw)
			flydown.AddOption(controls.NewOption(value, value))
		}
		return flydown, nil
	}

	switch firstType(schema.Type) {
	case "boolean":
		return controls.NewCheckbox(name), nil
	case "string", "integer", "number", "":
		entry := controls.NewEntry(name)
		entry.Required = required
		if schema.MaxLength != nil {
			entry.MaxLength = int(*schema.MaxLength)
		}
		if value, ok := schema.Default.(string); ok {
			entry.Value = value
		}
		return entry, nil
	default:
		return nil, fmt.Errorf("property %q: unsupported type %q", name, firstType(schema.Type))
	}
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	slice := types.Slice()
	if len(slice) == 0 {
		return ""
	}
	return slice[0]
}

func formID(operationID string) string {
	id := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, operationID)
	return "form_" + id
}

func submitTitle(operation *openapi3.Operation) string {
	if operation.Summary != "" {
		return operation.Summary
	}
	return "Submit"
}
