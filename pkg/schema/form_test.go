package schema_test

import (
	"context"
	"testing"

	"github.com/cviebrock/swat/pkg/controls"
	"github.com/cviebrock/swat/pkg/schema"
	"github.com/cviebrock/swat/pkg/ui"
)

const articleDocument = `{
  "openapi": "3.0.0",
  "info": {"title": "articles", "version": "1.0.0"},
  "paths": {
    "/articles": {
      "post": {
        "operationId": "createArticle",
        "summary": "Create article",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["title"],
                "properties": {
                  "title": {"type": "string", "maxLength": 120},
                  "published": {"type": "boolean"},
                  "category": {"type": "string", "enum": ["news", "opinion"]},
                  "summary": {"type": "string", "default": "draft"}
                }
              }
            }
          }
        }
      }
    }
  }
}`

func buildArticleForm(t *testing.T) *ui.Form {
	t.Helper()
	form, err := schema.BuildForm(context.Background(), []byte(articleDocument), "createArticle")
	if err != nil {
		t.Fatalf("BuildForm: %v", err)
	}
	return form
}

func TestBuildFormMapsOperationMetadata(t *testing.T) {
	form := buildArticleForm(t)

	if form.ID() != "form_createArticle" {
		t.Fatalf("form id = %q", form.ID())
	}
	if form.Action != "/articles" {
		t.Fatalf("action = %q, want /articles", form.Action)
	}
	if form.Method != "post" {
		t.Fatalf("method = %q, want post", form.Method)
	}
}

func TestBuildFormMapsPropertiesToControls(t *testing.T) {
	form := buildArticleForm(t)

	widget, ok := form.ChildByID("title")
	if !ok {
		t.Fatal("title control missing")
	}
	title, ok := widget.(*controls.Entry)
	if !ok {
		t.Fatalf("title control type = %T, want entry", widget)
	}
	if !title.Required || title.MaxLength != 120 {
		t.Fatalf("title constraints = required %v, maxlength %d", title.Required, title.MaxLength)
	}

	widget, ok = form.ChildByID("published")
	if !ok {
		t.Fatal("published control missing")
	}
	if _, ok := widget.(*controls.Checkbox); !ok {
		t.Fatalf("published control type = %T, want checkbox", widget)
	}

	widget, ok = form.ChildByID("category")
	if !ok {
		t.Fatal("category control missing")
	}
	category, ok := widget.(*controls.Flydown)
	if !ok {
		t.Fatalf("category control type = %T, want flydown", widget)
	}
	options := category.Options()
	if len(options) != 2 || options[0].Value != "news" || options[1].Value != "opinion" {
		t.Fatalf("category options = %v", options)
	}
	if !category.ShowBlank {
		t.Fatal("an optional enum must keep the blank option")
	}

	widget, ok = form.ChildByID("summary")
	if !ok {
		t.Fatal("summary control missing")
	}
	summary := widget.(*controls.Entry)
	if summary.Value != "draft" {
		t.Fatalf("summary default = %q, want draft", summary.Value)
	}

	widget, ok = form.ChildByID("form_createArticle_submit")
	if !ok {
		t.Fatal("submit button missing")
	}
	button := widget.(*controls.Button)
	if button.Title != "Create article" {
		t.Fatalf("submit title = %q, want the operation summary", button.Title)
	}
}

func TestBuildFormOrdersPropertiesByName(t *testing.T) {
	form := buildArticleForm(t)

	var ids []string
	for _, child := range form.Children() {
		ids = append(ids, child.ID())
	}
	want := []string{"category", "published", "summary", "title", "form_createArticle_submit"}
	if len(ids) != len(want) {
		t.Fatalf("child ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("child ids = %v, want %v", ids, want)
		}
	}
}

func TestBuildFormUnknownOperation(t *testing.T) {
	if _, err := schema.BuildForm(context.Background(), []byte(articleDocument), "missing"); err == nil {
		t.Fatal("expected an error for an unknown operation")
	}
}

func TestBuildFormRequiresRequestBody(t *testing.T) {
	const document = `{
	  "openapi": "3.0.0",
	  "info": {"title": "t", "version": "1"},
	  "paths": {"/things": {"get": {"operationId": "listThings", "responses": {"200": {"description": "ok"}}}}}
	}`
	if _, err := schema.BuildForm(context.Background(), []byte(document), "listThings"); err == nil {
		t.Fatal("expected an error for an operation without a request body")
	}
}
