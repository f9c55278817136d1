package record

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		command string
		label   string
	}{
		{"label at front", "[label] command", "command", "label"},
		{"no label", "no label here", "no label here", ""},
		{"quoted brackets", `echo "[Not a label]"`, `echo "[Not a label]"`, ""},
		{"label at end", `echo "foo" [Echo It]`, `echo "foo"`, "Echo It"},
		{"label at front with quotes", `[Echo It] echo "foo"`, `echo "foo"`, "Echo It"},
		{"unbalanced", `echo "foo" Echo It]`, `echo "foo" Echo It]`, ""},
		{"only label", "[Echo It]", "", "Echo It"},
		{"empty label", "ls -al []", "ls -al", ""},
		{"trailing wins", "[front] cmd [back]", "[front] cmd", "back"},
		{"nested is not a label", "cmd [a [b]]", "cmd [a [b]]", ""},
		{"padding trimmed", "  [ Spaced ]   top  ", "top", "Spaced"},
		{"command ending in group", "echo [x] []", "echo [x]", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Parse(tt.line)
			if r.Command != tt.command {
				t.Errorf("command: expected %q, got %q", tt.command, r.Command)
			}
			if r.Label != tt.label {
				t.Errorf("label: expected %q, got %q", tt.label, r.Label)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	records := []*Record{
		New("ssh -i ~/.ssh/key.pem me@myhost.com", "My Server"),
		New(`cat /proc/cpuinfo | grep "model name" | sort | uniq -c`, "CPUs"),
		New("ls -al", ""),
		New("echo [x]", ""),
		New("", "Only Label"),
	}
	for _, want := range records {
		got := Parse(want.Encode())
		if !got.Same(want) {
			t.Errorf("round trip of %q: got command %q label %q", want.Encode(), got.Command, got.Label)
		}
	}
}

func TestEncodeFormat(t *testing.T) {
	r := New("top", "Show Processes")
	if got := r.Encode(); got != "top [Show Processes]" {
		t.Errorf("expected %q, got %q", "top [Show Processes]", got)
	}
	if got := r.String(); got != "[Show Processes] top" {
		t.Errorf("expected %q, got %q", "[Show Processes] top", got)
	}
}

func TestSearchKey(t *testing.T) {
	r := Parse("[My Label] Some Command")
	if got := r.SearchKey(); got != "my label some command" {
		t.Errorf("expected %q, got %q", "my label some command", got)
	}
}

func TestTags(t *testing.T) {
	r := Parse("[Foo] bar")
	if len(r.Tags) != 0 {
		t.Errorf("expected no tags, got %v", r.Tags)
	}
	if r.ReadOnly() {
		t.Error("untagged record should be writable")
	}

	r = Parse("[Foo] bar", "footag", "bartag")
	if len(r.Tags) != 2 || !r.HasTag("bartag") {
		t.Errorf("expected footag and bartag, got %v", r.Tags)
	}

	r = Parse("[Foo] bar", TagGlobal)
	if !r.ReadOnly() {
		t.Error("global record should be read-only")
	}
}

func TestSame(t *testing.T) {
	a := New("ls", "list")
	b := New("ls", "list", TagGlobal)
	c := New("ls", "other")
	if !a.Same(b) {
		t.Error("records with equal command and label should be the same")
	}
	if a.Same(c) {
		t.Error("records with different labels should differ")
	}
	var nilRec *Record
	if a.Same(nilRec) || !nilRec.Same(nil) {
		t.Error("nil handling is wrong")
	}
}
