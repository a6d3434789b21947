package csv

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	input := `label,base,a,b
r0,10,10,20
r1,10,5,40
`
	got, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectedHeader := []string{"label", "base", "a", "b"}
	if !reflect.DeepEqual(got.Header, expectedHeader) {
		t.Errorf("expected header %v, but got %v", expectedHeader, got.Header)
	}
	expectedBody := [][]string{
		{"r0", "10", "10", "20"},
		{"r1", "10", "5", "40"},
	}
	if !reflect.DeepEqual(got.Body, expectedBody) {
		t.Errorf("expected body %v, but got %v", expectedBody, got.Body)
	}
}

func TestLoad_bom(t *testing.T) {
	// BOM付きのCSVデータ
	bom := []byte{0xef, 0xbb, 0xbf}
	csvData := []byte(`header1,header2
value1,value2
`)
	dataWithBom := append(bom, csvData...)

	got, err := Load(bytes.NewReader(dataWithBom))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectedHeader := []string{"header1", "header2"}
	if !reflect.DeepEqual(got.Header, expectedHeader) {
		t.Errorf("expected header %v, but got %v", expectedHeader, got.Header)
	}
	expectedBody := [][]string{{"value1", "value2"}}
	if !reflect.DeepEqual(got.Body, expectedBody) {
		t.Errorf("expected body %v, but got %v", expectedBody, got.Body)
	}
}

func TestLoad_ragged(t *testing.T) {
	input := `label,base,a
r0,10
r1
`
	got, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectedBody := [][]string{
		{"r0", "10"},
		{"r1"},
	}
	if !reflect.DeepEqual(got.Body, expectedBody) {
		t.Errorf("expected body %v, but got %v", expectedBody, got.Body)
	}
}

func TestLoad_empty(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	if err == nil {
		t.Fatal("expected error, but got nil")
	}
}
