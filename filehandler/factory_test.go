package filehandler

import (
	"errors"
	"strings"
	"testing"
)

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		dataSource string
		extension  string
	}{
		{"csv", "csv"},
		{"parquet", "parquet"},
	}
	for _, tt := range tests {
		t.Run(tt.dataSource, func(t *testing.T) {
			h, err := CreateHandler(tt.dataSource)
			if err != nil {
				t.Fatalf("CreateHandler(%q) error = %v", tt.dataSource, err)
			}
			if got := h.Extension(); got != tt.extension {
				t.Errorf("Extension() = %q, want %q", got, tt.extension)
			}
		})
	}
}

func TestCreateHandler_Unsupported(t *testing.T) {
	_, err := CreateHandler("xml")
	if !errors.Is(err, ErrUnsupportedDataSource) {
		t.Fatalf("CreateHandler(\"xml\") error = %v, want ErrUnsupportedDataSource", err)
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("error %q does not name the requested source", err)
	}
}

func TestCreateHandler_CaseSensitive(t *testing.T) {
	_, err := CreateHandler("CSV")
	if !errors.Is(err, ErrUnsupportedDataSource) {
		t.Errorf("CreateHandler(\"CSV\") error = %v, want ErrUnsupportedDataSource", err)
	}
}
