package markup_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cviebrock/swat/pkg/markup"
)

func TestTagAttributesRenderInFirstSetOrder(t *testing.T) {
	tag := markup.NewTag("input")
	tag.Set("type", "text")
	tag.Set("id", "name")
	tag.Set("value", "draft")
	tag.Set("type", "password")

	var buf bytes.Buffer
	if err := tag.SelfClose(&buf); err != nil {
		t.Fatalf("SelfClose: %v", err)
	}

	want := `<input type="password" id="name" value="draft" />`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("rendered tag mismatch (-want +got):\n%s", diff)
	}
}

func TestTagEscapesAttributeValuesAndContent(t *testing.T) {
	tag := markup.NewTag("span")
	tag.Set("title", `a "quoted" <value>`)

	var buf bytes.Buffer
	if err := tag.Display(&buf, "5 < 6 & 7"); err != nil {
		t.Fatalf("Display: %v", err)
	}

	got := buf.String()
	want := `<span title="a &#34;quoted&#34; &lt;value&gt;">5 &lt; 6 &amp; 7</span>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rendered tag mismatch (-want +got):\n%s", diff)
	}
}

func TestTagSetDataAndRemove(t *testing.T) {
	tag := markup.NewTag("div")
	tag.SetData("confirmation-message", "Sure?")
	tag.Set("class", "box")
	tag.Remove("class")

	if _, ok := tag.Get("class"); ok {
		t.Fatal("class attribute should be removed")
	}
	value, ok := tag.Get("data-confirmation-message")
	if !ok || value != "Sure?" {
		t.Fatalf("data attribute = %q, %v; want %q, true", value, ok, "Sure?")
	}
}

func TestTagWithoutNameFailsToRender(t *testing.T) {
	var buf bytes.Buffer
	if err := markup.NewTag("  ").Open(&buf); err == nil {
		t.Fatal("expected error rendering a nameless tag")
	}
}

func TestSanitizeRichStripsScript(t *testing.T) {
	got := markup.SanitizeRich(`<p>hello <script>alert(1)</script><strong>world</strong></p>`)
	want := `<p>hello <strong>world</strong></p>`
	if got != want {
		t.Fatalf("SanitizeRich = %q, want %q", got, want)
	}
}
