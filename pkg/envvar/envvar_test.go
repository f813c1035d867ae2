package envvar_test

import (
	"testing"

	"github.com/JaimeStill/sedam/pkg/envvar"
)

func TestString(t *testing.T) {
	t.Setenv("SEDAM_TEST_STRING", "override")

	v := "default"
	envvar.String(&v, "SEDAM_TEST_STRING")
	if v != "override" {
		t.Errorf("got %q, want override", v)
	}

	envvar.String(&v, "")
	if v != "override" {
		t.Errorf("empty name changed value to %q", v)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "42", 42},
		{"unparseable keeps default", "forty", 7},
		{"unset keeps default", "", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SEDAM_TEST_INT", tt.value)

			v := 7
			envvar.Int(&v, "SEDAM_TEST_INT")
			if v != tt.want {
				t.Errorf("got %d, want %d", v, tt.want)
			}
		})
	}
}

func TestFloatAndBool(t *testing.T) {
	t.Setenv("SEDAM_TEST_FLOAT", "0.3")
	t.Setenv("SEDAM_TEST_BOOL", "true")

	f := 0.7
	envvar.Float(&f, "SEDAM_TEST_FLOAT")
	if f != 0.3 {
		t.Errorf("float: got %v, want 0.3", f)
	}

	b := false
	envvar.Bool(&b, "SEDAM_TEST_BOOL")
	if !b {
		t.Error("bool: expected true")
	}
}

func TestList(t *testing.T) {
	t.Setenv("SEDAM_TEST_LIST", " http://a.test, ,http://b.test ")

	var v []string
	envvar.List(&v, "SEDAM_TEST_LIST")

	if len(v) != 2 || v[0] != "http://a.test" || v[1] != "http://b.test" {
		t.Errorf("got %v", v)
	}
}
