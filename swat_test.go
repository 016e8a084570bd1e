package swat_test

import (
	"io/fs"
	"testing"

	"github.com/cviebrock/swat"
)

func TestStylesFSCarriesStockStylesheets(t *testing.T) {
	for _, name := range []string{"swat.css", "swat-button.css", "swat-table-view.css"} {
		data, err := fs.ReadFile(swat.StylesFS(), name)
		if err != nil {
			t.Fatalf("ReadFile %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
}
