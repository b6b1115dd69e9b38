package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, terminal bool, pw []byte, err error) {
	t.Helper()
	origTerm, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return terminal }
	readPassword = func(int) ([]byte, error) { return pw, err }
	t.Cleanup(func() {
		isTerminal, readPassword = origTerm, origRead
	})
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("s3cret"), nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr("ignored\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(pw))
	assert.Contains(t, out.String(), "Enter password: ")
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), &out)
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	var out bytes.Buffer
	pw, err := GetPassword(rdr("piped\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "piped", string(pw))
}

func TestAskHelpers(t *testing.T) {
	var out bytes.Buffer
	a := &App{reader: rdr("12,5\n\nabc\n2026-02-30\n\nY\n"), out: &out, now: fixedNow}

	f, err := a.askFloat("Liters", "liters", 0)
	require.NoError(t, err)
	assert.Equal(t, 12.5, f)

	n, err := a.askInt("Repeat", "repeatDays", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = a.askInt("Year", "year", 0)
	require.Error(t, err)

	_, err = a.askDate("Date", "date")
	require.Error(t, err)

	d, err := a.askDate("Date", "date")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-20", d.String())

	ok, err := a.confirm("Sure?")
	require.NoError(t, err)
	assert.True(t, ok)
}
