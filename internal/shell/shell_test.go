package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	texts []string
	err   error
}

func (r *recorder) SendText(session int, text string) error {
	if r.err != nil {
		return r.err
	}
	r.texts = append(r.texts, text)
	return nil
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "''"},
		{"/tmp", "/tmp"},
		{"--flag=1", "--flag=1"},
		{"my dir", "'my dir'"},
		{"it's", `'it'\''s'`},
		{`say "hi"`, `'say "hi"'`},
		{"$HOME", "'$HOME'"},
		{"~/src", "'~/src'"},
		{"a;b", "'a;b'"},
		{"^foo", "'^foo'"},
		{"a^b", "'a^b'"},
		{"=ls", "'=ls'"},
		{"a=b", "a=b"},
		{"import x\nx.run()", `$'import x\nx.run()'`},
		{"it's\r\n", `$'it\'s\r\n'`},
		{"tab\tonly", "'tab\tonly'"},
		{"bell\x07", `$'bell\x07'`},
		{"héllo\n", `$'héllo\n'`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.in), "Quote(%q)", tt.in)
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "vim notes.md", Join([]string{"vim", "notes.md"}))
	assert.Equal(t, "ssh -t host 'tmux attach'", Join([]string{"ssh", "-t", "host", "tmux attach"}))
	assert.Equal(t, `grep 'it'\''s' ''`, Join([]string{"grep", "it's", ""}))
}

func TestChangeDir(t *testing.T) {
	assert.Equal(t, "take /tmp", ChangeDir("", "/tmp"))
	assert.Equal(t, "cd /srv/app", ChangeDir("cd", "/srv/app"))
	assert.Equal(t, "take '/home/me/My Projects'", ChangeDir("take", "/home/me/My Projects"))
}

func TestExport(t *testing.T) {
	line, err := Export("FOO", "bar")
	require.NoError(t, err)
	assert.Equal(t, "export FOO='bar'", line)

	line, err = Export("GREETING", "it's a \"test\" $x")
	require.NoError(t, err)
	assert.Equal(t, `export GREETING='it'\''s a "test" $x'`, line)

	line, err = Export("EMPTY", "")
	require.NoError(t, err)
	assert.Equal(t, "export EMPTY=''", line)
}

func TestExport_Rejects(t *testing.T) {
	for _, key := range []string{"", "1ABC", "A-B", "A B", "A=B"} {
		_, err := Export(key, "v")
		assert.Error(t, err, "key %q", key)
	}
}

func TestExport_MultiLineValue(t *testing.T) {
	line, err := Export("MULTI", "a\nit's")
	require.NoError(t, err)
	assert.Equal(t, `export MULTI=$'a\nit\'s'`, line)
	assert.NotContains(t, line, "\n")
}

func TestJoin_MultiLineArgumentStaysOnOneLine(t *testing.T) {
	line := Join([]string{"python3", "-c", "import x\nx.run()"})
	assert.Equal(t, `python3 -c $'import x\nx.run()'`, line)
	r := &recorder{}
	require.NoError(t, Apply(r, 1, line))
	assert.Equal(t, []string{line + "\n"}, r.texts)
}

func TestApply(t *testing.T) {
	r := &recorder{}
	require.NoError(t, Apply(r, 3, "export A='1'"))
	assert.Equal(t, []string{"export A='1'\n"}, r.texts)
}

func TestApply_MultiLineRejected(t *testing.T) {
	r := &recorder{}
	assert.Error(t, Apply(r, 3, "echo a\nrm -rf x"))
	assert.Empty(t, r.texts)
}

func TestApply_PropagatesError(t *testing.T) {
	boom := errors.New("no reply")
	err := Apply(&recorder{err: boom}, 1, "clear")
	assert.ErrorIs(t, err, boom)
}
