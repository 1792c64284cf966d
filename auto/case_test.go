package auto_test

import (
	"testing"

	"github.com/godec-io/godec/auto"
)

func TestCaseStrategy_Convert(t *testing.T) {
	cases := []struct {
		cs   auto.CaseStrategy
		in   string
		want string
	}{
		{auto.PascalCase, "UserName", "UserName"},
		{auto.CamelCase, "UserName", "userName"},
		{auto.CamelCase, "ID", "iD"},
		{auto.SnakeCase, "UserName", "user_name"},
		{auto.SnakeCase, "UserID", "user_id"},
		{auto.SnakeCase, "HTTPServer", "http_server"},
		{auto.SnakeCase, "A", "a"},
	}
	for _, tc := range cases {
		if got := tc.cs.Convert(tc.in); got != tc.want {
			t.Errorf("%v.Convert(%q): got %q, want %q", tc.cs, tc.in, got, tc.want)
		}
	}
}

func TestCaseStrategy_String(t *testing.T) {
	if auto.PascalCase.String() != "pascal" || auto.CamelCase.String() != "camel" || auto.SnakeCase.String() != "snake" {
		t.Fatalf("unexpected strategy names")
	}
}
