package flydent

import (
	"reflect"
	"testing"
)

func TestSplitCSVLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma", `a,"b, c",d`, []string{"a", "b, c", "d"}},
		{"escaped quote", `a,"say ""hi""",b`, []string{"a", `say "hi"`, "b"}},
		{"empty fields", "a,,c", []string{"a", "", "c"}},
		{"trailing empty", "a,b,", []string{"a", "b", ""}},
		{"quoted list", `x,"['T6', 'YA']",y`, []string{"x", "['T6', 'YA']", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitCSVLine(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitCSVLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseListLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"two elements", "['T6', 'YA']", []string{"T6", "YA"}},
		{"one element", "['700']", []string{"700"}},
		{"empty list", "[]", nil},
		{"double quoted", `["AF", "AFG"]`, []string{"AF", "AFG"}},
		{"not a list", "700", nil},
		{"empty string", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseListLiteral(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseListLiteral(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCSVRecords(t *testing.T) {
	data := "h1,h2\r\na,b\r\n\r\nc,d\r\n"
	got := csvRecords(data)
	want := [][]string{{"a", "b"}, {"c", "d"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("csvRecords = %q, want %q", got, want)
	}
}
