package env

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDotenvWorkingDir(t *testing.T) {
	leaf := testTree(t)
	t.Chdir(leaf)
	e := LoadDotenv()
	if !reflect.DeepEqual(LoadDotenvFrom(leaf), e) {
		t.Fatalf("want %v, have %v", LoadDotenvFrom(leaf), e)
	}

	// one level up the leaf .env is out of sight
	t.Chdir(filepath.Dir(leaf))
	e = LoadDotenv()
	if lang := e["MCALTEST_LANG"]; lang != "es" {
		t.Fatalf("lang: want %q, have %v", "es", lang)
	}
	if _, ok := e["MCALTEST_PADDING"]; ok {
		t.Fatalf("padding should not be set")
	}
}

func TestLoadDotenvMissingDir(t *testing.T) {
	e := LoadDotenvFrom(filepath.Join(t.TempDir(), "does", "not", "exist"))
	for k := range e {
		if len(k) > 9 && k[:9] == "MCALTEST_" {
			t.Fatalf("unexpected key %q", k)
		}
	}
}
