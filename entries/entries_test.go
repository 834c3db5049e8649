package entries

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	render "github.com/cfpwastaken/wplace-hallofshame"
)

func TestRead(t *testing.T) {
	cases := []struct {
		in   string
		want []render.Label
	}{
		{`[]`, []render.Label{}},
		{`[101, null, 205, 0]`, []render.Label{
			{Value: 101, Present: true},
			{},
			{Value: 205, Present: true},
			{},
		}},
		{` [ -3 ]`, []render.Label{{Value: -3, Present: true}}},
	}
	for _, c := range cases {
		got, err := Read(strings.NewReader(c.in))
		if err != nil {
			t.Errorf("Read(%q): %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Read(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestReadErrors(t *testing.T) {
	for _, in := range []string{``, `{}`, `["12"]`, `[1.5]`, `[1,`} {
		if _, err := Read(strings.NewReader(in)); err == nil {
			t.Errorf("Read(%q) succeeded", in)
		}
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hallofshame.json")
	if err := os.WriteFile(path, []byte("[7, null, 9]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	labels, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 3 || labels[0] != render.LabelOf(7) || labels[1].Present || labels[2] != render.LabelOf(9) {
		t.Errorf("ReadFile = %v", labels)
	}

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile error = %v, want fs.ErrNotExist", err)
	}
}
