package cmd_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/eolymp/go-mathml/internal/cmd"
)

const fraction = `
frac:
  num: {number: "1"}
  denom: {letter: x}
`

func TestRender(t *testing.T) {
	tt := []struct {
		name   string
		args   []string
		stdin  string
		files  map[string]string
		stdout string
		output map[string]string
	}{
		{
			name:   "file to stdout",
			args:   []string{"render", "frac.yaml"},
			files:  map[string]string{"frac.yaml": fraction},
			stdout: `<math xmlns="http://www.w3.org/1998/Math/MathML" display="inline"><mfrac><mn>1</mn><mi>x</mi></mfrac></math>` + "\n",
		},
		{
			name:   "stdin without root element",
			args:   []string{"render", "--display", "none"},
			stdin:  fraction,
			stdout: "<mfrac><mn>1</mn><mi>x</mi></mfrac>\n",
		},
		{
			name:   "dash reads stdin",
			args:   []string{"render", "-", "--display", "none"},
			stdin:  `slashed: {operator: "="}`,
			stdout: "<mo>=&#x0338;</mo>\n",
		},
		{
			name:   "block display to file",
			args:   []string{"render", "frac.yaml", "--display", "block", "-o", "frac.mml"},
			files:  map[string]string{"frac.yaml": fraction},
			output: map[string]string{"frac.mml": `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block"><mfrac><mn>1</mn><mi>x</mi></mfrac></math>` + "\n"},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			for name, content := range tc.files {
				if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			stdout := bytes.NewBuffer(nil)

			root := cmd.NewRootCommand(fs)
			root.SetArgs(tc.args)
			root.SetIn(strings.NewReader(tc.stdin))
			root.SetOut(stdout)
			root.SetErr(bytes.NewBuffer(nil))

			if err := root.Execute(); err != nil {
				t.Fatal("unable to render:", err)
			}

			if got := stdout.String(); got != tc.stdout {
				t.Errorf("Stdout does not match:\nWANT:\n  %v\nGOT:\n  %v\n", tc.stdout, got)
			}

			for name, want := range tc.output {
				got, err := afero.ReadFile(fs, name)
				if err != nil {
					t.Fatal(err)
				}

				if string(got) != want {
					t.Errorf("Output %s does not match:\nWANT:\n  %v\nGOT:\n  %v\n", name, want, string(got))
				}
			}
		})
	}
}

func TestRenderDiagnostics(t *testing.T) {
	input := `row: [{letter: a}, {undefined: "\\foo"}, {letter: b}]`
	markup := `<mrow><mi>a</mi><mtext>[PARSE ERROR: Undefined("\\foo")]</mtext><mi>b</mi></mrow>` + "\n"

	for _, strict := range []bool{false, true} {
		args := []string{"render", "--display", "none"}
		if strict {
			args = append(args, "--strict")
		}

		stdout := bytes.NewBuffer(nil)
		stderr := bytes.NewBuffer(nil)

		root := cmd.NewRootCommand(afero.NewMemMapFs())
		root.SetArgs(args)
		root.SetIn(strings.NewReader(input))
		root.SetOut(stdout)
		root.SetErr(stderr)

		err := root.Execute()
		if strict && err == nil {
			t.Error("Strict mode must fail on undefined nodes")
		}

		if !strict && err != nil {
			t.Errorf("Undefined nodes must not fail rendering: %v", err)
		}

		if got := stdout.String(); got != markup {
			t.Errorf("Markup must be written in any mode:\nWANT:\n  %v\nGOT:\n  %v\n", markup, got)
		}

		if !strings.Contains(stderr.String(), `\foo`) {
			t.Errorf("Undefined node must be reported, got %#v", stderr.String())
		}
	}
}

func TestRenderStrictSeparator(t *testing.T) {
	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)

	root := cmd.NewRootCommand(afero.NewMemMapFs())
	root.SetArgs([]string{"render", "--display", "none", "--strict"})
	root.SetIn(strings.NewReader("row: [ampersand]"))
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "1 malformed node(s)") {
		t.Errorf("Separator outside of a matrix must fail strict mode, got %v", err)
	}

	if want := "<mrow><mtext>[PARSE ERROR: Ampersand]</mtext></mrow>\n"; stdout.String() != want {
		t.Errorf("Markup does not match:\nWANT:\n  %v\nGOT:\n  %v\n", want, stdout.String())
	}

	if !strings.Contains(stderr.String(), "Ampersand") {
		t.Errorf("Separator outside of a matrix must be reported, got %#v", stderr.String())
	}
}

// brokenCloseFs creates files which fail to close, like a full disk on flush.
type brokenCloseFs struct {
	afero.Fs
}

type brokenCloseFile struct {
	afero.File
}

func (fs brokenCloseFs) Create(name string) (afero.File, error) {
	f, err := fs.Fs.Create(name)
	if err != nil {
		return nil, err
	}

	return brokenCloseFile{File: f}, nil
}

func (f brokenCloseFile) Close() error {
	f.File.Close()
	return errors.New("no space left on device")
}

func TestRenderOutputCloseError(t *testing.T) {
	fs := brokenCloseFs{Fs: afero.NewMemMapFs()}
	if err := afero.WriteFile(fs.Fs, "frac.yaml", []byte(fraction), 0o644); err != nil {
		t.Fatal(err)
	}

	root := cmd.NewRootCommand(fs)
	root.SetArgs([]string{"render", "frac.yaml", "-o", "frac.mml"})
	root.SetOut(bytes.NewBuffer(nil))
	root.SetErr(bytes.NewBuffer(nil))

	err := root.Execute()
	if err == nil {
		t.Fatal("error expected")
	}

	if want := "unable to close output: no space left on device"; err.Error() != want {
		t.Errorf("Error does not match: want %#v, got %#v", want, err.Error())
	}
}

func TestRenderErrors(t *testing.T) {
	tt := []struct {
		name  string
		args  []string
		stdin string
		error string
	}{
		{name: "missing file", args: []string{"render", "missing.yaml"}, error: "unable to open input"},
		{name: "bad display", args: []string{"render", "--display", "center"}, error: `display "center" is not supported`},
		{name: "bad tree", args: []string{"render"}, stdin: "integral: x", error: "unable to decode stdin"},
		{name: "too many files", args: []string{"render", "a.yaml", "b.yaml"}, error: "accepts at most 1 arg"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			root := cmd.NewRootCommand(afero.NewMemMapFs())
			root.SetArgs(tc.args)
			root.SetIn(strings.NewReader(tc.stdin))
			root.SetOut(bytes.NewBuffer(nil))
			root.SetErr(bytes.NewBuffer(nil))

			err := root.Execute()
			if err == nil {
				t.Fatal("error expected")
			}

			if !strings.Contains(err.Error(), tc.error) {
				t.Errorf("Error does not match: want %#v in %#v", tc.error, err.Error())
			}
		})
	}
}
