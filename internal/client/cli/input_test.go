package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	require.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func stubTerminal(t *testing.T, terminal bool, pw string, pwErr error) {
	t.Helper()
	oldRead, oldIs := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = oldRead, oldIs })

	isTerminal = func(int) bool { return terminal }
	readPassword = func(int) ([]byte, error) { return []byte(pw), pwErr }
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, "s3cret", nil)

	var out bytes.Buffer
	got, err := GetPassword(rdr("ignored\n"), "Password", &out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", got)
	require.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true, "", errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), "Password", &out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetPassword_TerminalUsesBufferedLineFirst(t *testing.T) {
	stubTerminal(t, true, "", errors.New("must not be called"))

	r := rdr("alice\npasted\n")
	var out bytes.Buffer
	user, err := GetSimpleText(r, "Username", &out)
	require.NoError(t, err)
	require.Equal(t, "alice", user)

	got, err := GetPassword(r, "Password", &out)
	require.NoError(t, err)
	require.Equal(t, "pasted", got)
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, "", errors.New("must not be called"))

	var out bytes.Buffer
	got, err := GetPassword(rdr("piped\n"), "Password", &out)
	require.NoError(t, err)
	require.Equal(t, "piped", got)
}

func TestGetOptionalInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "blank", input: "\n", want: 0},
		{name: "number", input: "120000\n", want: 120000},
		{name: "spaces", input: "  42  \n", want: 42},
		{name: "negative", input: "-5\n", wantErr: true},
		{name: "text", input: "lots\n", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetOptionalInt(rdr(tc.input), "Salary", &out)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestGetYesNo(t *testing.T) {
	for input, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "maybe\n": false} {
		var out bytes.Buffer
		got, err := GetYesNo(rdr(input), "Equity?", &out)
		require.NoError(t, err)
		require.Equal(t, want, got, "input %q", input)
	}
}
